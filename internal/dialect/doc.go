// Package dialect names the concrete assembler syntaxes the emitter can
// produce. A Kind is only a selector; every syntax difference lives in
// internal/emit.
package dialect
