package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Listing is rendered source kept as data: export lines plus the header and
// body lines of every section, in emission order. Lines carry their
// indentation but no trailing newline.
type Listing struct {
	Dialect  string           `json:"dialect" msgpack:"dialect"`
	Exports  []string         `json:"exports,omitempty" msgpack:"exports,omitempty"`
	Sections []SectionListing `json:"sections" msgpack:"sections"`
}

// SectionListing is one rendered section.
type SectionListing struct {
	Name   string   `json:"name" msgpack:"name"`
	Header string   `json:"header" msgpack:"header"`
	Lines  []string `json:"lines" msgpack:"lines"`
}

// Text joins the listing into newline-terminated source. Exports come
// first; a blank line separates the export block and each section.
func (l *Listing) Text() string {
	if l == nil {
		return ""
	}
	var sb strings.Builder
	for _, line := range l.Exports {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	for i := range l.Sections {
		if i > 0 || len(l.Exports) > 0 {
			sb.WriteByte('\n')
		}
		l.Sections[i].writeTo(&sb)
	}
	return sb.String()
}

func (s *SectionListing) writeTo(sb *strings.Builder) {
	sb.WriteString(s.Header)
	sb.WriteByte('\n')
	for _, line := range s.Lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

// LineCount is the number of source lines Text produces.
func (l *Listing) LineCount() int {
	if l == nil {
		return 0
	}
	n := len(l.Exports)
	for i, s := range l.Sections {
		if i > 0 || len(l.Exports) > 0 {
			n++
		}
		n += 1 + len(s.Lines)
	}
	return n
}

// Encoding selects how WriteTo serializes a listing.
type Encoding uint8

const (
	EncodingText Encoding = iota + 1
	EncodingJSON
	EncodingMsgpack
)

func (enc Encoding) String() string {
	switch enc {
	case EncodingText:
		return "text"
	case EncodingJSON:
		return "json"
	case EncodingMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// ParseEncoding converts a flag value to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "asm":
		return EncodingText, nil
	case "json":
		return EncodingJSON, nil
	case "msgpack", "mp":
		return EncodingMsgpack, nil
	default:
		return 0, fmt.Errorf("invalid format: %q (expected: text|json|msgpack)", s)
	}
}

// Encode writes l to w in the given encoding.
func (l *Listing) Encode(w io.Writer, enc Encoding) error {
	switch enc {
	case EncodingText:
		_, err := io.WriteString(w, l.Text())
		return err
	case EncodingJSON:
		je := json.NewEncoder(w)
		je.SetIndent("", "  ")
		return je.Encode(l)
	case EncodingMsgpack:
		return msgpack.NewEncoder(w).Encode(l)
	default:
		return fmt.Errorf("unsupported encoding %s", enc)
	}
}

// DecodeListing reads a msgpack-encoded listing.
func DecodeListing(r io.Reader) (*Listing, error) {
	var l Listing
	if err := msgpack.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}
	return &l, nil
}
