package roup

import (
	"strings"

	"github.com/ouankou/roup/pragma"
)

// ScanErrors aggregates the per-directive failures from scanning a whole
// source file; successfully parsed directives are reported separately.
type ScanErrors struct {
	Errors []*pragma.Error
}

func (e ScanErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("directive syntax errors:\n\n")
	for _, pe := range e.Errors {
		msg.WriteString(pe.Error())
		msg.WriteString("\n")
	}
	return msg.String()
}
