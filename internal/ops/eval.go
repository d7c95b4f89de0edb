package ops

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"
	"github.com/tabula-cli/tabula/internal/frame"
	"go.starlark.net/starlark"
)

// Eval evaluates an assignment of the form "col = expression" once per row,
// with the row's column values bound as Starlark variables (column names are
// slugified to valid identifiers first). The target column is replaced or
// appended.
func Eval(t *frame.Table, expr string) (*frame.Table, error) {
	eq := strings.Index(expr, "=")
	if eq < 0 || (eq+1 < len(expr) && expr[eq+1] == '=') {
		return nil, frame.Errorf("Eval expects an assignment like \"x = x**2\", got %q", expr)
	}
	target := strings.TrimSpace(expr[:eq])
	body := strings.TrimSpace(expr[eq+1:])
	if target == "" || body == "" {
		return nil, frame.Errorf("Eval expects an assignment like \"x = x**2\", got %q", expr)
	}
	body = rewritePow(body)

	names := t.Names()
	records := t.Records()
	idents := make([]string, len(names))
	for i, n := range names {
		idents[i] = SlugifyName(n)
	}

	thread := &starlark.Thread{Name: "eval"}
	out := make([]string, t.Nrow())
	for r, rec := range records[1:] {
		env := starlark.StringDict{}
		for c, name := range names {
			env[idents[c]] = cellValue(t, name, rec[c])
		}
		env["pow"] = powBuiltin
		v, err := starlark.Eval(thread, "<eval>", body, env)
		if err != nil {
			return nil, frame.Errorf("Eval failed: %v", evalMessage(err))
		}
		out[r] = renderValue(v)
	}

	col := series.New(out, series.String, target)
	df := t.Frame().Mutate(col)
	t2, err := frame.New(df)
	if err != nil {
		return nil, err
	}
	// Round-trip through records so the mutated column gets its type
	// re-detected (Mutate keeps it as string).
	return frame.FromRecords(t2.Records())
}

// Starlark has no ** operator, so power expressions are rewritten onto a
// pow builtin before evaluation: "x ** 2" becomes "pow(x, 2)". Operands are
// identifiers, numbers or parenthesized groups; chains reduce left to right.
var powExpr = regexp.MustCompile(
	`([A-Za-z_][A-Za-z0-9_]*|\d+(?:\.\d+)?|\([^()]*\))\s*\*\*\s*(-?(?:[A-Za-z_][A-Za-z0-9_]*|\d+(?:\.\d+)?|\([^()]*\)))`)

func rewritePow(body string) string {
	for strings.Contains(body, "**") {
		next := powExpr.ReplaceAllString(body, "pow($1, $2)")
		if next == body {
			break
		}
		body = next
	}
	return body
}

var powBuiltin = starlark.NewBuiltin("pow",
	func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y starlark.Value
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
			return nil, err
		}
		xf, ok := starlark.AsFloat(x)
		if !ok {
			return nil, frame.Errorf("pow: got %s, want number", x.Type())
		}
		yf, ok := starlark.AsFloat(y)
		if !ok {
			return nil, frame.Errorf("pow: got %s, want number", y.Type())
		}
		return starlark.Float(math.Pow(xf, yf)), nil
	})

func cellValue(t *frame.Table, name, raw string) starlark.Value {
	if frame.IsNA(raw) {
		return starlark.None
	}
	switch t.Col(name).Type() {
	case series.Int:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return starlark.MakeInt64(n)
		}
	case series.Float:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return starlark.Float(f)
		}
	case series.Bool:
		return starlark.Bool(raw == "true")
	}
	return starlark.String(raw)
}

func renderValue(v starlark.Value) string {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Float:
		return formatFloat(float64(val))
	case starlark.NoneType:
		return ""
	}
	return v.String()
}

// evalMessage strips the Starlark backtrace down to its final message line.
func evalMessage(err error) string {
	if evalErr, ok := err.(*starlark.EvalError); ok {
		return evalErr.Msg
	}
	return err.Error()
}
