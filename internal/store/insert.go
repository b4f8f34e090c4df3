package store

import (
	"fmt"
	"strings"
)

// Field is a required insert column with its value.
type Field struct {
	Name  string
	Value any
}

// OptionalField is an insert column that may be left unset. An unset field is
// omitted from the statement entirely, even when a required field of the same
// name exists.
type OptionalField struct {
	Name  string
	Value any
	Set   bool
}

// Optional returns a set optional field.
func Optional(name string, value any) OptionalField {
	return OptionalField{Name: name, Value: value, Set: true}
}

// Unset returns an optional field whose value was not provided.
func Unset(name string) OptionalField {
	return OptionalField{Name: name}
}

// InsertStatement holds the parallel column/placeholder/value sequences for a
// variable-shape insert. Placeholders are 1-indexed positional markers in
// emission order, ready for a parameterized execution API.
type InsertStatement struct {
	Columns []string
	Params  []string
	Values  []any
}

// BuildInsert merges required and optional field sets into an
// InsertStatement. Required fields come first in their given order, then set
// optional fields in theirs. When an optional field shares a name with a
// required one its value wins but the required position is kept. Unset
// optional fields are dropped everywhere. Neither input is mutated.
func BuildInsert(required []Field, optional []OptionalField) InsertStatement {
	override := make(map[string]any, len(optional))
	dropped := make(map[string]struct{}, len(optional))
	for _, f := range optional {
		if !f.Set {
			dropped[f.Name] = struct{}{}
			continue
		}
		override[f.Name] = f.Value
	}

	stmt := InsertStatement{
		Columns: []string{},
		Params:  []string{},
		Values:  []any{},
	}
	emitted := make(map[string]struct{}, len(required)+len(optional))
	emit := func(name string, value any) {
		stmt.Columns = append(stmt.Columns, name)
		stmt.Params = append(stmt.Params, fmt.Sprintf("$%d", len(stmt.Values)+1))
		stmt.Values = append(stmt.Values, value)
	}

	for _, f := range required {
		if _, skip := dropped[f.Name]; skip {
			continue
		}
		if _, dup := emitted[f.Name]; dup {
			continue
		}
		emitted[f.Name] = struct{}{}
		value := f.Value
		if v, ok := override[f.Name]; ok {
			value = v
		}
		emit(f.Name, value)
	}

	for _, f := range optional {
		if !f.Set {
			continue
		}
		if _, dup := emitted[f.Name]; dup {
			continue
		}
		emitted[f.Name] = struct{}{}
		emit(f.Name, f.Value)
	}

	return stmt
}

// SQL renders the statement as an INSERT against table with a RETURNING
// clause. Column names never come from request input; callers pass literals.
func (s InsertStatement) SQL(table string, returning string) string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table,
		strings.Join(s.Columns, ", "),
		strings.Join(s.Params, ", "),
		returning,
	)
}
