package parser_test

import (
	"testing"

	"github.com/goloxlang/golox/internal/parser"
	"github.com/goloxlang/golox/internal/scanner"
	"github.com/goloxlang/golox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) (parser.Expr, error) {
	t.Helper()
	tokens, err := scanner.NewScanner(input).Scan()
	require.NoError(t, err)
	return parser.NewParser(tokens).Parse()
}

func TestParseExpression(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected string
	}{
		{`number`, `1`, `1`},
		{`decimal number`, `12.34`, `12.34`},
		{`string`, `"abc"`, `abc`},
		{`true`, `true`, `true`},
		{`false`, `false`, `false`},
		{`nil`, `nil`, `nil`},
		{`unary bang`, `!true`, `(! true)`},
		{`unary minus`, `-1`, `(- 1)`},
		{`unary nested`, `!!-1`, `(! (! (- 1)))`},
		{`term`, `1 + 2`, `(+ 1 2)`},
		{`star binds tighter than plus`, `1 + 2 * 3`, `(+ 1 (* 2 3))`},
		{`slash binds tighter than minus`, `1 - 6 / 3`, `(- 1 (/ 6 3))`},
		{`term left associative`, `1 - 2 - 3`, `(- (- 1 2) 3)`},
		{`factor left associative`, `8 / 4 / 2`, `(/ (/ 8 4) 2)`},
		{`grouping overrides precedence`, `(1 + 2) * 3`, `(* (group (+ 1 2)) 3)`},
		{`nested grouping`, `((1))`, `(group (group 1))`},
		{`comparison`, `1 < 2`, `(< 1 2)`},
		{`comparison chain`, `1 < 2 <= 3`, `(<= (< 1 2) 3)`},
		{`equality`, `1 == 2`, `(== 1 2)`},
		{`inequality`, `1 != 2`, `(!= 1 2)`},
		{`equality binds loosest`, `1 + 2 == 3 < 4`, `(== (+ 1 2) (< 3 4))`},
		{`unary binds tightest`, `-1 * -2`, `(* (- 1) (- 2))`},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(tt *testing.T) {
			tt.Parallel()
			expr, err := parse(tt, tc.input)
			require.NoError(tt, err)
			require.NotNil(tt, expr)
			assert.Equal(tt, tc.expected, parser.NewAstPrinter().Print(expr))
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name  string
		input string
		errs  []string
	}{
		{
			`missing right paren at end`,
			`(1 + 2`,
			[]string{`[line 1] Error at end: expected ')' after expression.`},
		},
		{
			`missing right paren at token`,
			`(1 + 2 3`,
			[]string{`[line 1] Error at '3': expected ')' after expression.`},
		},
		{
			`dangling operator`,
			`1 +`,
			[]string{`[line 1] Error at end: expected expression.`},
		},
		{
			`no primary alternative`,
			`+ 1`,
			[]string{`[line 1] Error at '+': expected expression.`},
		},
		{
			`keyword is not an expression`,
			`var`,
			[]string{`[line 1] Error at 'var': expected expression.`},
		},
		{
			`multiple errors across boundaries`,
			"1 + ;\n2 + ;",
			[]string{
				`[line 1] Error at ';': expected expression.`,
				`[line 2] Error at ';': expected expression.`,
			},
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(tt *testing.T) {
			tt.Parallel()
			expr, err := parse(tt, tc.input)
			assert.Nil(tt, expr)
			assert.Error(tt, err)
			for _, want := range tc.errs {
				assert.ErrorContainsf(tt, err, want, "expected error %v, got %v", want, err)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()

	input := `(1 + 2) * 3 == 9 != !false`
	first, err1 := parse(t, input)
	second, err2 := parse(t, input)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t,
		parser.NewAstPrinter().Print(first),
		parser.NewAstPrinter().Print(second))
}

func TestNewParserContract(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { parser.NewParser(nil) })
	assert.Panics(t, func() {
		parser.NewParser([]token.Token{token.NewToken(token.NUMBER, "1", float64(1), 1)})
	})
}
