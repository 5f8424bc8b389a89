package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"asmir/internal/programs"
	"asmir/internal/symbol"
	"asmir/internal/ui"
)

type symbolsOptions struct {
	format   string
	explicit bool
}

type symbolPayload struct {
	Logical string `json:"logical"`
	Symbol  string `json:"symbol,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

func newSymbolsCmd() *cobra.Command {
	opts := &symbolsOptions{}
	cmd := &cobra.Command{
		Use:   "symbols [NAME...]",
		Short: "Show the assembler symbols derived from logical names",
		Long: `Print the derived symbol for each logical name. Without arguments the
names used by the hello-world program are listed. With --explicit the names
are checked as explicit symbols instead of being hashed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymbols(cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "pretty", "output format (pretty|json)")
	cmd.Flags().BoolVar(&opts.explicit, "explicit", false, "validate names as explicit symbols")
	return cmd
}

func runSymbols(cmd *cobra.Command, opts *symbolsOptions, names []string) error {
	switch opts.format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", opts.format)
	}
	if len(names) == 0 {
		names = programs.HelloSymbolNames()
	}

	rows, failed := collectSymbols(names, opts.explicit)
	out := cmd.OutOrStdout()
	if opts.format == "json" {
		if err := renderSymbolsJSON(out, rows); err != nil {
			return err
		}
	} else {
		table := ui.RenderSymbols(toTableRows(rows), ui.TableOptions{Color: !color.NoColor})
		if _, err := io.WriteString(out, table); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d names rejected", failed, len(rows))
	}
	return nil
}

// collectSymbols resolves each name through one registry so collisions
// between arguments are reported. It returns the number of failed rows.
func collectSymbols(names []string, explicit bool) ([]symbolPayload, int) {
	reg := symbol.NewRegistry()
	rows := make([]symbolPayload, 0, len(names))
	failed := 0
	for _, name := range names {
		var (
			sym symbol.Symbol
			err error
		)
		if explicit {
			sym, err = symbol.Explicit(name)
		} else {
			sym, err = reg.Derive(name)
		}
		row := symbolPayload{Logical: name, Symbol: sym.Name(), Status: ui.StatusOK}
		if err != nil {
			failed++
			row.Error = err.Error()
			row.Status = ui.StatusInvalid
			var collision *symbol.CollisionError
			if errors.As(err, &collision) {
				row.Status = ui.StatusCollision
				row.Symbol = collision.Symbol.Name()
			}
		}
		rows = append(rows, row)
	}
	return rows, failed
}

func toTableRows(rows []symbolPayload) []ui.SymbolRow {
	out := make([]ui.SymbolRow, len(rows))
	for i, r := range rows {
		out[i] = ui.SymbolRow{Logical: r.Logical, Symbol: r.Symbol, Status: r.Status}
	}
	return out
}

func renderSymbolsJSON(out io.Writer, rows []symbolPayload) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
