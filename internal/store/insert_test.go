package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInsert_Empty(t *testing.T) {
	stmt := BuildInsert(nil, nil)
	assert.Empty(t, stmt.Columns)
	assert.Empty(t, stmt.Params)
	assert.Empty(t, stmt.Values)

	stmt = BuildInsert([]Field{}, []OptionalField{})
	assert.Empty(t, stmt.Columns)
	assert.Empty(t, stmt.Params)
	assert.Empty(t, stmt.Values)
}

func TestBuildInsert_ParallelSequences(t *testing.T) {
	stmt := BuildInsert(
		[]Field{{Name: "name", Value: "john"}, {Name: "age", Value: 23}},
		[]OptionalField{Optional("test", "hi")},
	)
	assert.Len(t, stmt.Columns, 3)
	assert.Len(t, stmt.Params, 3)
	assert.Len(t, stmt.Values, 3)
}

func TestBuildInsert_RequiredOrderThenOptional(t *testing.T) {
	stmt := BuildInsert(
		[]Field{{Name: "name", Value: "john"}},
		[]OptionalField{Optional("age", 23)},
	)
	assert.Equal(t, []string{"name", "age"}, stmt.Columns)
	assert.Equal(t, []string{"$1", "$2"}, stmt.Params)
	assert.Equal(t, []any{"john", 23}, stmt.Values)
}

func TestBuildInsert_OptionalOverridesRequiredValue(t *testing.T) {
	stmt := BuildInsert(
		[]Field{{Name: "name", Value: "john"}},
		[]OptionalField{Optional("name", "mark")},
	)
	assert.Equal(t, []string{"name"}, stmt.Columns)
	assert.Equal(t, []any{"mark"}, stmt.Values)

	// A set nil still counts as a provided value.
	stmt = BuildInsert(
		[]Field{{Name: "age", Value: 23}},
		[]OptionalField{Optional("age", nil)},
	)
	assert.Equal(t, []any{nil}, stmt.Values)
}

func TestBuildInsert_OverrideKeepsRequiredPosition(t *testing.T) {
	stmt := BuildInsert(
		[]Field{{Name: "name", Value: "john"}, {Name: "age", Value: 30}},
		[]OptionalField{Optional("email", "john@john.co.uk"), Optional("name", "mark")},
	)
	assert.Equal(t, []string{"name", "age", "email"}, stmt.Columns)
	assert.Equal(t, []string{"$1", "$2", "$3"}, stmt.Params)
	assert.Equal(t, []any{"mark", 30, "john@john.co.uk"}, stmt.Values)
}

func TestBuildInsert_UnsetOptionalDropped(t *testing.T) {
	stmt := BuildInsert(nil, []OptionalField{Unset("name"), Unset("age"), Optional("test", "Hello!")})
	assert.Equal(t, []string{"test"}, stmt.Columns)
	assert.Equal(t, []string{"$1"}, stmt.Params)
	assert.Equal(t, []any{"Hello!"}, stmt.Values)
}

func TestBuildInsert_UnsetOptionalDropsRequiredToo(t *testing.T) {
	stmt := BuildInsert(
		[]Field{{Name: "name", Value: "john"}, {Name: "age", Value: 23}, {Name: "test", Value: "Hello!"}},
		[]OptionalField{Unset("name"), Unset("age")},
	)
	assert.Equal(t, []string{"test"}, stmt.Columns)
	assert.Equal(t, []string{"$1"}, stmt.Params)
	assert.Equal(t, []any{"Hello!"}, stmt.Values)
}

func TestBuildInsert_DoesNotMutateInputs(t *testing.T) {
	required := []Field{{Name: "name", Value: "john"}, {Name: "age", Value: 23}}
	optional := []OptionalField{Optional("name", "mark"), Unset("phone")}

	BuildInsert(required, optional)

	assert.Equal(t, []Field{{Name: "name", Value: "john"}, {Name: "age", Value: 23}}, required)
	assert.Equal(t, []OptionalField{Optional("name", "mark"), Unset("phone")}, optional)
}

func TestInsertStatement_SQL(t *testing.T) {
	stmt := BuildInsert(
		[]Field{{Name: "slug", Value: "mitch"}},
		[]OptionalField{Optional("description", "the man")},
	)
	assert.Equal(t,
		"INSERT INTO topics (slug, description) VALUES ($1, $2) RETURNING slug, description",
		stmt.SQL("topics", "slug, description"),
	)
}
