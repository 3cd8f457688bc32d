package querybuilder

import (
	"math"
	"strconv"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "status"}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }
func u64Ptr(v uint64) *uint64 { return &v }

func TestPredicatesSkipAbsentFields(t *testing.T) {
	var p Predicates
	p = p.Eq("status", nil).GtOrEq("collection_time", nil).LtOrEq("collection_time", nil)
	assert.Empty(t, p)

	p = p.Eq("status", strPtr("pending")).LtOrEq("collection_time", i64Ptr(10))
	assert.Len(t, p, 2)
}

func TestListWithoutFilters(t *testing.T) {
	b := New(sq.Dollar, false)

	query, args, err := b.List(ListQuery{Table: "materials", Columns: cols, OrderBy: "collection_time DESC"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM materials ORDER BY collection_time DESC", query)
	assert.Empty(t, args)
}

func TestListKeepsPredicateOrder(t *testing.T) {
	b := New(sq.Dollar, false)
	where := Predicates{}.
		Eq("status", strPtr("processed")).
		GtOrEq("collection_time", i64Ptr(100)).
		LtOrEq("collection_time", i64Ptr(200))

	query, args, err := b.List(ListQuery{
		Table:   "materials",
		Columns: cols,
		Where:   where,
		OrderBy: "collection_time DESC",
		Page:    Page{Limit: u64Ptr(5), Offset: u64Ptr(10)},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, status FROM materials WHERE status = $1 AND collection_time >= $2 AND collection_time <= $3 ORDER BY collection_time DESC LIMIT 5 OFFSET 10",
		query)
	assert.Equal(t, []any{"processed", int64(100), int64(200)}, args)
}

func TestListQuestionPlaceholders(t *testing.T) {
	b := New(sq.Question, true)
	where := Predicates{}.Eq("review_status", strPtr("pending")).Eq("platform", strPtr("wechat"))

	query, args, err := b.List(ListQuery{Table: "to_publish", Columns: cols, Where: where, OrderBy: "created_at DESC"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM to_publish WHERE review_status = ? AND platform = ? ORDER BY created_at DESC", query)
	assert.Equal(t, []any{"pending", "wechat"}, args)
}

func TestListOffsetWithoutLimit(t *testing.T) {
	page := Page{Offset: u64Ptr(3)}

	query, _, err := New(sq.Dollar, false).List(ListQuery{Table: "t", Columns: cols, Page: page})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM t OFFSET 3", query)

	query, _, err = New(sq.Question, true).List(ListQuery{Table: "t", Columns: cols, Page: page})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM t LIMIT "+strconv.FormatInt(math.MaxInt64, 10)+" OFFSET 3", query)
}

func TestUpdateByID(t *testing.T) {
	b := New(sq.Dollar, false)
	set := Assignments{}.String("title", nil).String("status", strPtr("processed"))
	set = append(set, Assignment{Column: "updated_at", Value: int64(42)})

	query, args, err := b.UpdateByID("materials", set, "abc")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE materials SET status = $1, updated_at = $2 WHERE id = $3", query)
	assert.Equal(t, []any{"processed", int64(42), "abc"}, args)
}

func TestGetByID(t *testing.T) {
	query, args, err := New(sq.Question, true).GetByID("materials", cols, "abc")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM materials WHERE id = ?", query)
	assert.Equal(t, []any{"abc"}, args)
}
