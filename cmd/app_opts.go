package cmd

import (
	"io"
	"os"

	"github.com/goloxlang/golox/internal/loxerrors"
)

type appOpts struct {
	stdin    io.ReadCloser
	stdout   io.Writer
	stderr   io.Writer
	reporter loxerrors.ErrReporter
}

var defaultAppOpts = appOpts{
	stdin:  os.Stdin,
	stdout: os.Stdout,
	stderr: os.Stderr,
}

type AppOption func(*appOpts)

func WithStdin(stdin io.ReadCloser) AppOption {
	return func(opts *appOpts) {
		opts.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r loxerrors.ErrReporter) AppOption {
	return func(opts *appOpts) {
		opts.reporter = r
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := defaultAppOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.reporter == nil {
		opts.reporter = loxerrors.NewErrReporter(opts.stderr)
	}

	return &opts
}
