// Package query evaluates expressions against object trees.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/dynjson/go-dynjson/debug"
	"github.com/dynjson/go-dynjson/govar"
	"github.com/dynjson/go-dynjson/value"
)

// Eval compiles and runs expression with the members of root bound as
// variables, returning the result as a Var. Expressions see native Go
// shapes (map[string]any, []any, scalars), so nested access like
// "spec.replicas > 1" works directly.
func Eval(expression string, root *value.Object) (value.Var, error) {
	env, _ := govar.To(value.FromObject(root)).(map[string]any)
	if env == nil {
		env = map[string]any{}
	}
	prg, err := expr.Compile(expression, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return value.Var{}, fmt.Errorf("compiling %q: %w", expression, err)
	}
	if debug.Query() {
		debug.Logf("query: compiled %q\n", expression)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return value.Var{}, fmt.Errorf("running %q: %w", expression, err)
	}
	return govar.From(res)
}
