package roup

import "github.com/ouankou/roup/pragma"

// Convert re-expresses a directive in another base language: parse with
// the source language's sentinel and continuation rules, then unparse
// with the target language's sentinel and canonical spellings. The
// spelling flips between languages (OpenMP for/do) are driven by the
// per-language canonical names in the registry, so clause arguments pass
// through untouched.
func Convert(input string, from, to pragma.BaseLang) (string, error) {
	line, err := pragma.Normalize(input, from, "")
	if err != nil {
		return "", err
	}
	dirs, clauses := Registries(line.Dialect)
	d, perr := pragma.Parse(line, line.Dialect, dirs, clauses)
	if perr != nil {
		return "", perr
	}
	d.Lang = to
	return pragma.Unparse(d, pragma.Canonical, dirs, clauses), nil
}
