package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/goloxlang/golox/internal/loxerrors"
	"github.com/goloxlang/golox/internal/parser"
	"github.com/goloxlang/golox/internal/scanner"
)

// Exit statuses follow the sysexits convention the original interpreters
// use: 64 for command line misuse, 65 for malformed input, 74 for I/O.
const (
	exOK      = 0
	exUsage   = 64
	exDataErr = 65
	exIOErr   = 74
)

type LoxApp struct {
	err  error
	opts *appOpts
}

func NewLoxApp(options ...AppOption) *LoxApp {
	return &LoxApp{opts: newAppOpts(options...)}
}

func (app *LoxApp) Main(args []string) int {
	var err error
	switch len(args) {
	case 1:
		err = app.runFile(args[0])
	case 0:
		err = app.runPrompt()
	default:
		app.reportError(errors.New("Usage: golox [script]"))
		return exUsage
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err == nil {
		return exOK
	}
	if loxerrors.IsSyntaxError(app.err) {
		return exDataErr
	}
	return exIOErr
}

func (app *LoxApp) reportError(err error) {
	app.opts.reporter.ReportError(err)
	app.err = err
}

func (app *LoxApp) resetError() {
	app.err = nil
}

func (app *LoxApp) runPrompt() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "> ",
		AutoComplete: keywordCompleter(),
		Stdin:        app.opts.stdin,
		Stdout:       app.opts.stdout,
		Stderr:       app.opts.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		// Each prompt line is an independent input: report, forget, go on.
		if err := app.run(line); err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

func (app *LoxApp) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	return app.run(string(bytes))
}

func (app *LoxApp) run(input string) error {
	s := scanner.NewScanner(input)

	tokens, err := s.Scan()
	if err != nil {
		return err
	}

	p := parser.NewParser(tokens)
	expr, err := p.Parse()
	if err != nil {
		return err
	}

	return app.print(expr)
}

func (app *LoxApp) print(expr parser.Expr) error {
	_, err := fmt.Fprintln(app.opts.stdout, parser.NewAstPrinter().Print(expr))
	return err
}

func keywordCompleter() readline.AutoCompleter {
	keywords := scanner.Keywords()
	items := make([]readline.PrefixCompleterInterface, 0, len(keywords))
	for _, keyword := range keywords {
		items = append(items, readline.PcItem(keyword))
	}
	return readline.NewPrefixCompleter(items...)
}
