// Package roup parses OpenMP and OpenACC compiler directives from C, C++
// and Fortran source into a structured AST and re-emits them. The heavy
// lifting lives in the pragma package; this package wires the dialect
// registries in and exposes the one-call surface embedders use.
package roup

import (
	"unicode/utf8"

	"github.com/ouankou/roup/pragma"
	"github.com/ouankou/roup/pragma/openacc"
	"github.com/ouankou/roup/pragma/openmp"
)

// Re-exported so embedders rarely need to import pragma directly.
const (
	OpenMP  = pragma.OpenMP
	OpenACC = pragma.OpenACC

	LangDetect       = pragma.LangDetect
	LangC            = pragma.LangC
	LangFortranFree  = pragma.LangFortranFree
	LangFortranFixed = pragma.LangFortranFixed

	Canonical       = pragma.Canonical
	PreserveAliases = pragma.PreserveAliases
)

type (
	Directive  = pragma.Directive
	Clause     = pragma.Clause
	ParseError = pragma.Error
)

// Registries returns the directive and clause tables for a dialect. They
// are immutable after construction and safe to share across goroutines.
func Registries(dialect pragma.Dialect) (*pragma.DirectiveRegistry, *pragma.ClauseRegistry) {
	if dialect == pragma.OpenACC {
		return openacc.Directives, openacc.Clauses
	}
	return openmp.Directives, openmp.Clauses
}

// Parse parses one directive. lang may be LangDetect to infer the base
// language from the sentinel. The dialect argument selects the registries
// regardless of the sentinel family: an omp pragma parsed with the OpenACC
// dialect is matched against the OpenACC tables, so it fails with an
// unknown-directive error only when its directive name is missing there.
// The sentinel family is not compared with the dialect argument.
func Parse(input string, dialect pragma.Dialect, lang pragma.BaseLang) (*pragma.Directive, error) {
	line, err := pragma.Normalize(input, lang, "")
	if err != nil {
		return nil, err
	}
	dirs, clauses := Registries(dialect)
	d, err := pragma.Parse(line, dialect, dirs, clauses)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ParseDetect parses one directive, inferring both the base language and
// the dialect from the sentinel.
func ParseDetect(input string) (*pragma.Directive, error) {
	line, err := pragma.Normalize(input, pragma.LangDetect, "")
	if err != nil {
		return nil, err
	}
	dirs, clauses := Registries(line.Dialect)
	d, err := pragma.Parse(line, line.Dialect, dirs, clauses)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ParseBytes is the byte-oriented entry point; input that does not decode
// as UTF-8 fails with an InvalidUTF8 parse error.
func ParseBytes(input []byte, dialect pragma.Dialect, lang pragma.BaseLang) (*pragma.Directive, error) {
	if !utf8.Valid(input) {
		return nil, &pragma.Error{Kind: pragma.InvalidUTF8}
	}
	return Parse(string(input), dialect, lang)
}

// Unparse reproduces a pragma string for a parsed directive.
func Unparse(d *pragma.Directive, mode pragma.UnparseMode) string {
	dirs, clauses := Registries(d.Dialect)
	return pragma.Unparse(d, mode, dirs, clauses)
}
