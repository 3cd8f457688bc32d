// Package querybuilder turns optional-field filters and patches into
// parameterized SQL using squirrel.
package querybuilder

import (
	"math"

	sq "github.com/Masterminds/squirrel"
)

// Predicates is an ordered list of conditions ANDed onto a base select.
// Append order is the order the conditions appear in the WHERE clause.
type Predicates []sq.Sqlizer

// Eq appends "column = ?" when v is set.
func (p Predicates) Eq(column string, v *string) Predicates {
	if v == nil {
		return p
	}
	return append(p, sq.Eq{column: *v})
}

// GtOrEq appends "column >= ?" when v is set.
func (p Predicates) GtOrEq(column string, v *int64) Predicates {
	if v == nil {
		return p
	}
	return append(p, sq.GtOrEq{column: *v})
}

// LtOrEq appends "column <= ?" when v is set.
func (p Predicates) LtOrEq(column string, v *int64) Predicates {
	if v == nil {
		return p
	}
	return append(p, sq.LtOrEq{column: *v})
}

// Page truncates a list. Nil fields impose no bound.
type Page struct {
	Limit  *uint64
	Offset *uint64
}

// Assignment is one "column = ?" entry of an UPDATE's SET clause.
type Assignment struct {
	Column string
	Value  any
}

// Assignments is an ordered SET clause.
type Assignments []Assignment

// String appends column when v is set.
func (a Assignments) String(column string, v *string) Assignments {
	if v == nil {
		return a
	}
	return append(a, Assignment{Column: column, Value: *v})
}

// ListQuery describes a filtered, ordered and paged select over one table.
type ListQuery struct {
	Table   string
	Columns []string
	Where   Predicates
	OrderBy string
	Page    Page
}

// Builder renders statements for one SQL dialect.
type Builder struct {
	stmt sq.StatementBuilderType
	// limitBeforeOffset is set for dialects whose grammar rejects OFFSET without LIMIT.
	limitBeforeOffset bool
}

func New(format sq.PlaceholderFormat, limitBeforeOffset bool) Builder {
	return Builder{
		stmt:              sq.StatementBuilder.PlaceholderFormat(format),
		limitBeforeOffset: limitBeforeOffset,
	}
}

func (b Builder) List(q ListQuery) (string, []any, error) {
	sel := b.stmt.Select(q.Columns...).From(q.Table)
	for _, pred := range q.Where {
		sel = sel.Where(pred)
	}
	if q.OrderBy != "" {
		sel = sel.OrderBy(q.OrderBy)
	}
	switch {
	case q.Page.Limit != nil:
		sel = sel.Limit(*q.Page.Limit)
	case q.Page.Offset != nil && b.limitBeforeOffset:
		sel = sel.Limit(math.MaxInt64)
	}
	if q.Page.Offset != nil {
		sel = sel.Offset(*q.Page.Offset)
	}
	return sel.ToSql()
}

func (b Builder) GetByID(table string, columns []string, id string) (string, []any, error) {
	return b.stmt.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
}

func (b Builder) Insert(table string, columns []string, values ...any) (string, []any, error) {
	return b.stmt.Insert(table).Columns(columns...).Values(values...).ToSql()
}

func (b Builder) UpdateByID(table string, set Assignments, id string) (string, []any, error) {
	upd := b.stmt.Update(table)
	for _, a := range set {
		upd = upd.Set(a.Column, a.Value)
	}
	return upd.Where(sq.Eq{"id": id}).ToSql()
}
