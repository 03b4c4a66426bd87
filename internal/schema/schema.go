// Package schema performs structural validation of stage payloads: required
// fields, value types, enum membership and numeric bounds. It never makes
// network calls and never judges business correctness.
package schema

import (
	"fmt"
	"strings"
)

type Kind int

const (
	String Kind = iota
	Int
	Float
	Bool
	Enum
	List
	Object
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Enum:
		return "enum"
	case List:
		return "list"
	case Object:
		return "object"
	}
	return "unknown"
}

// Field describes one expectation on a payload. Path segments are separated
// by dots; the segment "*" fans out over every element of a list, e.g.
// "days.*.day_number".
type Field struct {
	Path     string
	Kind     Kind
	Required bool
	Enum     []string // allowed values when Kind == Enum
	Min      *float64 // inclusive lower bound for Int/Float
	Max      *float64 // inclusive upper bound for Int/Float
	MinLen   int      // minimum length for List
}

type Schema struct {
	Fields []Field
}

// Bound is a convenience for Field.Min / Field.Max literals.
func Bound(v float64) *float64 { return &v }

// Error reports which required fields were absent and which present fields
// carried the wrong type or an out-of-range value. The two lists are distinct
// on purpose: a missing field is not the same defect as a mistyped one.
type Error struct {
	Stage   string   `json:"stage"`
	Missing []string `json:"missing_fields,omitempty"`
	Invalid []string `json:"invalid_fields,omitempty"`
}

func (e *Error) Error() string {
	parts := []string{fmt.Sprintf("schema validation failed at stage %q", e.Stage)}
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// Validate checks payload against s. A nil return means the payload is
// structurally complete for the given stage boundary.
func Validate(stage string, payload map[string]any, s Schema) *Error {
	verr := &Error{Stage: stage}

	for _, field := range s.Fields {
		values, found := lookup(payload, strings.Split(field.Path, "."))
		if !found {
			if field.Required {
				verr.Missing = append(verr.Missing, field.Path)
			}
			continue
		}
		for _, value := range values {
			if field.Required && field.Kind == String && value == "" {
				verr.Missing = append(verr.Missing, field.Path)
				continue
			}
			if reason := checkValue(value, field); reason != "" {
				verr.Invalid = append(verr.Invalid, fmt.Sprintf("%s (%s)", field.Path, reason))
			}
		}
	}

	if len(verr.Missing) == 0 && len(verr.Invalid) == 0 {
		return nil
	}
	return verr
}

// lookup resolves a dotted path inside nested maps/lists. It returns every
// matched value; found is false only when no branch reached a value at all.
func lookup(node any, segments []string) ([]any, bool) {
	if len(segments) == 0 {
		return []any{node}, true
	}

	seg := segments[0]
	rest := segments[1:]

	if seg == "*" {
		list, ok := node.([]any)
		if !ok {
			return nil, false
		}
		var out []any
		for _, elem := range list {
			values, ok := lookup(elem, rest)
			if !ok {
				return nil, false
			}
			out = append(out, values...)
		}
		return out, true
	}

	obj, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}
	child, ok := obj[seg]
	if !ok || child == nil {
		return nil, false
	}
	return lookup(child, rest)
}

func checkValue(value any, field Field) string {
	switch field.Kind {
	case String:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("want string, got %T", value)
		}
	case Enum:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("want string enum, got %T", value)
		}
		for _, allowed := range field.Enum {
			if s == allowed {
				return ""
			}
		}
		return fmt.Sprintf("value %q not in {%s}", s, strings.Join(field.Enum, ", "))
	case Int:
		f, ok := value.(float64)
		if !ok {
			return fmt.Sprintf("want int, got %T", value)
		}
		if f != float64(int64(f)) {
			return fmt.Sprintf("want int, got fractional %v", f)
		}
		return checkBounds(f, field)
	case Float:
		f, ok := value.(float64)
		if !ok {
			return fmt.Sprintf("want number, got %T", value)
		}
		return checkBounds(f, field)
	case Bool:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("want bool, got %T", value)
		}
	case List:
		list, ok := value.([]any)
		if !ok {
			return fmt.Sprintf("want list, got %T", value)
		}
		if len(list) < field.MinLen {
			return fmt.Sprintf("want at least %d elements, got %d", field.MinLen, len(list))
		}
	case Object:
		if _, ok := value.(map[string]any); !ok {
			return fmt.Sprintf("want object, got %T", value)
		}
	}
	return ""
}

func checkBounds(f float64, field Field) string {
	if field.Min != nil && f < *field.Min {
		return fmt.Sprintf("value %v below minimum %v", f, *field.Min)
	}
	if field.Max != nil && f > *field.Max {
		return fmt.Sprintf("value %v above maximum %v", f, *field.Max)
	}
	return ""
}
