// Package spinerr formats the five short diagnostic codes spec.md §7
// defines (flm, lxr, ppr, syx, evl) the way the driver prints them:
// "file[line]: code: message", with no source line or caret.
package spinerr

import (
	"fmt"
	"strings"
)

// Code is one of the five fixed diagnostic short codes.
type Code string

const (
	FileManagement Code = "flm"
	Lexical        Code = "lxr"
	Preprocessor   Code = "ppr"
	Syntax         Code = "syx"
	Evaluation     Code = "evl"
)

// Error is a single Spin diagnostic: its code, the offending file, the
// 1-based line resolved from a byte offset, and a human message.
type Error struct {
	Code    Code
	File    string
	Line    int
	Column  int
	Message string
}

func New(code Code, file string, line, column int, format string, args ...any) *Error {
	return &Error{Code: code, File: file, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s[%d]: %s: %s", e.File, e.Line, e.Code, e.Message)
}

// List is the multi-error bundle the parser throws once per unit (§4.3,
// §7: "bundles them into one ParserErrorException per unit").
type List struct {
	Errors []*Error
}

func (l *List) Add(err *Error) { l.Errors = append(l.Errors, err) }

func (l *List) HasErrors() bool { return len(l.Errors) > 0 }

func (l *List) Error() string {
	var sb strings.Builder
	for i, e := range l.Errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// ResolveLine converts a byte offset into 1-based (line, column) against
// the given source buffer, used wherever a Token only carries a byte
// offset and a diagnostic needs to report a human position (§3, §7).
func ResolveLine(source string, offset uint32) (line, column int) {
	line, column = 1, 1
	limit := int(offset)
	if limit > len(source) {
		limit = len(source)
	}
	for i := 0; i < limit; i++ {
		if source[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
