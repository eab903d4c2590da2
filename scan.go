package roup

import "github.com/ouankou/roup/pragma"

// ScanSource extracts every directive from full source text and parses
// each one with the dialect its sentinel names. Parsed directives are
// returned in source order; if any directive fails, the error is a
// ScanErrors carrying every failure with file positions filled in.
func ScanSource(src string, lang pragma.BaseLang, file pragma.FileRef) ([]*pragma.Directive, error) {
	var result []*pragma.Directive
	var failures []*pragma.Error

	for _, ext := range pragma.ExtractDirectives(src, lang) {
		line, err := pragma.Normalize(ext.Raw, lang, file)
		if err != nil {
			err.Pos.Line += ext.Line - 1
			failures = append(failures, err)
			continue
		}
		dirs, clauses := Registries(line.Dialect)
		d, err := pragma.Parse(line, line.Dialect, dirs, clauses)
		if err != nil {
			err.Pos.Line += ext.Line - 1
			failures = append(failures, err)
			continue
		}
		d.Head.Line += ext.Line - 1
		result = append(result, d)
	}

	if len(failures) > 0 {
		return result, ScanErrors{Errors: failures}
	}
	return result, nil
}
