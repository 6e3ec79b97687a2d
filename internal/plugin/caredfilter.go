package plugin

import (
	"strings"
	"time"

	"github.com/google/cel-go/cel"
)

// caredFilter wraps a compiled CEL program deciding whether a bus message is
// cared about. When disabled, Eval always returns true.
type caredFilter struct {
	prog    cel.Program
	enabled bool
}

func newCaredFilter(expr string) (caredFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return caredFilter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("category", cel.StringType),
		cel.Variable("url", cel.StringType),
		cel.Variable("size", cel.IntType),
		cel.Variable("ts_ms", cel.IntType),
		cel.Variable("now_ms", cel.IntType),
	)
	if err != nil {
		return caredFilter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return caredFilter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return caredFilter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return caredFilter{}, err
	}
	return caredFilter{prog: prog, enabled: true}, nil
}

// Eval evaluates the expression against a message. Evaluation errors reject
// the message.
func (f caredFilter) Eval(m Message) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"category": m.Category,
		"url":      m.URL,
		"size":     int64(len(m.Data)),
		"ts_ms":    m.TsMs,
		"now_ms":   time.Now().UnixMilli(),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
