package validation

import (
	"fmt"
	"slices"
)

// Kind is the constraint a FieldRule enforces.
type Kind int

const (
	// Presence fails for missing, empty or whitespace-only values.
	Presence Kind = iota + 1
	// Length bounds the character count. A zero Max means unbounded.
	Length
	// Numeric requires a decimal number literal.
	Numeric
	// Email requires a well-formed email address whose domain has a
	// top-level label.
	Email
)

func (k Kind) String() string {
	switch k {
	case Presence:
		return "presence"
	case Length:
		return "length"
	case Numeric:
		return "numeric"
	case Email:
		return "email"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// FieldRule is one constraint on one field.
//
// Trim means the value is whitespace-trimmed before the check and handed
// downstream trimmed. Presence always looks at the trimmed value.
type FieldRule struct {
	Field   string
	Kind    Kind
	Min     int
	Max     int
	Trim    bool
	Message string
}

// tag renders the rule as a go-playground/validator tag.
func (r FieldRule) tag() string {
	switch r.Kind {
	case Presence:
		return "required"
	case Length:
		if r.Max > 0 {
			return fmt.Sprintf("min=%d,max=%d", r.Min, r.Max)
		}
		return fmt.Sprintf("min=%d", r.Min)
	case Numeric:
		return "numeric"
	case Email:
		return "email,email_tld"
	}
	return ""
}

// RuleSet is a named, ordered list of field rules for one request category.
// Its rules cannot be changed after construction.
type RuleSet struct {
	name  string
	rules []FieldRule
}

func newRuleSet(name string, rules ...FieldRule) RuleSet {
	return RuleSet{name: name, rules: rules}
}

// Name is the wire name of the set, e.g. "blog-post".
func (rs RuleSet) Name() string { return rs.name }

// Rules returns a copy of the rules in declaration order.
func (rs RuleSet) Rules() []FieldRule { return slices.Clone(rs.rules) }

// Fields lists the distinct field names in first-seen order.
func (rs RuleSet) Fields() []string {
	var fields []string
	for _, r := range rs.rules {
		if !slices.Contains(fields, r.Field) {
			fields = append(fields, r.Field)
		}
	}
	return fields
}

// Sanitize returns a copy of record restricted to the set's fields, with
// trimmed fields trimmed. The input record is left untouched.
func (rs RuleSet) Sanitize(record Record) Record {
	out := make(Record, len(rs.rules))
	for _, r := range rs.rules {
		raw, ok := record[r.Field]
		if !ok {
			continue
		}
		if r.Trim {
			out[r.Field] = trim(raw)
		} else if _, seen := out[r.Field]; !seen {
			out[r.Field] = raw
		}
	}
	return out
}

// RuleDescription is the client-facing view of a FieldRule.
type RuleDescription struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Min     int    `json:"min,omitempty"`
	Max     int    `json:"max,omitempty"`
	Trim    bool   `json:"trim"`
	Message string `json:"message"`
}

// Description is the client-facing view of a RuleSet, so forms can mirror
// the server-side constraints.
type Description struct {
	Name  string            `json:"name"`
	Rules []RuleDescription `json:"rules"`
}

func (rs RuleSet) Describe() Description {
	d := Description{Name: rs.name, Rules: make([]RuleDescription, 0, len(rs.rules))}
	for _, r := range rs.rules {
		d.Rules = append(d.Rules, RuleDescription{
			Field:   r.Field,
			Kind:    r.Kind.String(),
			Min:     r.Min,
			Max:     r.Max,
			Trim:    r.Trim,
			Message: r.Message,
		})
	}
	return d
}
