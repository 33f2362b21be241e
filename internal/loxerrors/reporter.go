package loxerrors

import (
	"errors"
	"fmt"
	"io"
)

type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	DefaultReportPanic(e.w, err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	DefaultReportError(e.w, err)
}

// DefaultReportPanic is the default implementation of ErrReporter.ReportPanic.
func DefaultReportPanic(w io.Writer, err error) {
	fmt.Fprintf(w, "FATAL %v\n", err)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
func DefaultReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%v\n", err)
}

// IsSyntaxError reports whether err wraps a scanner or parser error,
// as opposed to e.g. an I/O failure while reading the script.
func IsSyntaxError(err error) bool {
	var scanErr *ScannerError
	var parseErr *ParserError
	return errors.As(err, &scanErr) || errors.As(err, &parseErr)
}

var _ ErrReporter = (*errReporter)(nil)
