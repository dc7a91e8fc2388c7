package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/deppfellow/estate-api/internal/errs"
)

// validate is shared by all requests; validator.Validate is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("email_tld", emailHasTLD); err != nil {
		panic(err)
	}
	return v
}

// emailHasTLD requires the domain of an address to end in a top-level
// label of at least two letters (or a punycode label), so jo@localhost and
// jo@10.0.0.1 are rejected.
func emailHasTLD(fl validator.FieldLevel) bool {
	address := fl.Field().String()

	at := strings.LastIndexByte(address, '@')
	if at < 0 {
		return false
	}
	domain := strings.TrimSuffix(address[at+1:], ".")

	dot := strings.LastIndexByte(domain, '.')
	if dot < 0 {
		return false
	}
	tld := strings.ToLower(domain[dot+1:])

	if strings.HasPrefix(tld, "xn--") && len(tld) > 4 {
		return true
	}
	if len([]rune(tld)) < 2 {
		return false
	}
	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Outcome is the result of evaluating one RuleSet against one record.
// It is valid if and only if Errors is empty.
type Outcome struct {
	Errors []errs.FieldError
}

// Valid reports whether no rule failed.
func (o Outcome) Valid() bool { return len(o.Errors) == 0 }

// Err returns nil for a valid outcome and a 400 *errs.HTTPError otherwise.
func (o Outcome) Err() error {
	if o.Valid() {
		return nil
	}
	return errs.NewValidationError(o.Errors)
}

// Evaluate applies every rule of rs to record in declaration order and
// collects each failure. It never stops early and never modifies record.
// Missing fields are checked as empty strings.
func Evaluate(rs RuleSet, record Record) Outcome {
	var out Outcome
	for _, r := range rs.rules {
		if !check(r, record[r.Field]) {
			out.Errors = append(out.Errors, errs.FieldError{
				Field:   r.Field,
				Message: r.Message,
			})
		}
	}
	return out
}

func check(r FieldRule, raw string) bool {
	value := raw
	if r.Trim || r.Kind == Presence {
		value = trim(raw)
	}

	tag := r.tag()
	if tag == "" {
		return false
	}
	return validate.Var(value, tag) == nil
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
