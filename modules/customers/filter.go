package customers

import (
	"fmt"
	"strings"
)

// Sortable columns, allow-listed so filter input can never reach the query
// as raw SQL.
var sortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"city":       "city",
}

const selectColumns = "id, name, email, phone, city, channel, active, created_at, updated_at"

// Filter narrows and orders a customer listing. Zero-valued fields are
// ignored.
type Filter struct {
	Search  string // matches name or email, case-insensitive
	Channel string
	Active  *bool
	SortBy  string // one of name, created_at, city; default name
	Desc    bool
	Limit   int
}

// SQL builds the parameterized listing query.
func (f Filter) SQL() (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}
	if f.Channel != "" {
		args = append(args, f.Channel)
		conds = append(conds, fmt.Sprintf("channel = $%d", len(args)))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		conds = append(conds, fmt.Sprintf("active = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT " + selectColumns + " FROM customers")
	if len(conds) > 0 {
		b.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = "name"
	}
	b.WriteString(" ORDER BY " + col)
	if f.Desc {
		b.WriteString(" DESC")
	}

	if f.Limit > 0 {
		args = append(args, f.Limit)
		b.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	return b.String(), args
}
