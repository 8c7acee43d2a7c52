package pgsql

import (
	"fmt"
	"strings"
)

// whereClause accumulates AND-ed conditions with positional arguments.
// The first argument is always the tenant's company ID.
type whereClause struct {
	conditions []string
	args       []any
}

func newWhereClause(tenantCondition, companyID string) *whereClause {
	return &whereClause{
		conditions: []string{tenantCondition + " = $1"},
		args:       []any{companyID},
	}
}

// add appends a condition whose single placeholder is written as %d, or
// %[1]d when it is referenced more than once.
func (w *whereClause) add(condition string, arg any) {
	w.args = append(w.args, arg)
	w.conditions = append(w.conditions, fmt.Sprintf(condition, len(w.args)))
}

// addIf is add guarded by ok.
func (w *whereClause) addIf(ok bool, condition string, arg any) {
	if ok {
		w.add(condition, arg)
	}
}

// addRaw appends a condition without an argument.
func (w *whereClause) addRaw(condition string) {
	w.conditions = append(w.conditions, condition)
}

func (w *whereClause) String() string {
	return " WHERE " + strings.Join(w.conditions, " AND ")
}

// page returns a LIMIT/OFFSET suffix and the arguments it binds.
func (w *whereClause) page(limit, offset int) (string, []any) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	n := len(w.args)
	args := append(append([]any{}, w.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), args
}

// likePattern escapes LIKE metacharacters and wraps term for a contains match.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
