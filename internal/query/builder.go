// Package query assembles the parameterized SQL statements behind partial
// updates, filtered lists and vote counting. Statements carry `?`
// placeholders and are executed through gorm's Raw API, which rewrites
// them for the active dialect.
package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyUpdate is returned when a partial update has nothing to set.
var ErrEmptyUpdate = errors.New("no fields to update")

// Assignment is one SET column = value pair. Assignments are built from
// typed change structs by the store layer, so the key column can never
// show up here.
type Assignment struct {
	Column string
	Value  interface{}
}

// BuildPartialUpdate generates an UPDATE that touches only the given
// columns and returns the post-update row in the same round trip.
//
//	UPDATE blogs SET title = ? WHERE id = ? RETURNING *
//
// Values are bound positionally, key value last.
func BuildPartialUpdate(table string, sets []Assignment, keyColumn string, keyValue interface{}) (string, []interface{}, error) {
	if len(sets) == 0 {
		return "", nil, ErrEmptyUpdate
	}

	cols := make([]string, 0, len(sets))
	args := make([]interface{}, 0, len(sets)+1)
	for _, set := range sets {
		cols = append(cols, set.Column+" = ?")
		args = append(args, set.Value)
	}
	args = append(args, keyValue)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? RETURNING *",
		table, strings.Join(cols, ", "), keyColumn)
	return sql, args, nil
}

// ListSpec describes one list endpoint: its base SELECT (joins included),
// which column a search term matches, which column an owner filter
// matches, and an explicit ordering.
type ListSpec struct {
	Base         string
	SearchColumn string
	OwnerColumn  string
	OrderBy      string
}

// BuildList appends at most one predicate to the base query. Terms are
// wildcard-wrapped and bound, matched case-insensitively.
func BuildList(spec ListSpec, f Filter) (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString(spec.Base)

	if term, ok := f.Term(); ok {
		col := spec.SearchColumn
		if f.kind == filterOwner {
			col = spec.OwnerColumn
		}
		sb.WriteString(" WHERE LOWER(" + col + ") LIKE LOWER(?)")
		args = append(args, "%"+term+"%")
	}

	sb.WriteString(" ORDER BY " + spec.OrderBy)
	return sb.String(), args
}

// BuildVote generates the clamped vote update as a single statement, so
// concurrent decrements can never drive the count below zero:
//
//	UPDATE posts SET votes = CASE WHEN votes + ? < 0 THEN 0 ELSE votes + ? END
//	WHERE id = ? RETURNING votes
func BuildVote(table, keyColumn string, delta int, keyValue interface{}) (string, []interface{}) {
	sql := fmt.Sprintf(
		"UPDATE %s SET votes = CASE WHEN votes + ? < 0 THEN 0 ELSE votes + ? END WHERE %s = ? RETURNING votes",
		table, keyColumn)
	return sql, []interface{}{delta, delta, keyValue}
}
