package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/estate-api/internal/validation"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"registration", "login", "property", "blog-post", "inquiry"} {
		rs, ok := validation.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, rs.Name())
	}

	_, ok := validation.Lookup("profile")
	assert.False(t, ok)
}

func TestRuleSetsOrder(t *testing.T) {
	var names []string
	for _, rs := range validation.RuleSets() {
		names = append(names, rs.Name())
	}
	assert.Equal(t, []string{"registration", "login", "property", "blog-post", "inquiry"}, names)
}

func TestRulesReturnsCopy(t *testing.T) {
	rules := validation.Registration.Rules()
	rules[0].Message = "changed"

	assert.Equal(t, "Name is required", validation.Registration.Rules()[0].Message)
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"title", "description", "type", "status", "location", "price"}, validation.Property.Fields())
	assert.Equal(t, []string{"email", "password"}, validation.Login.Fields())
}

func TestSanitize(t *testing.T) {
	record := validation.Record{
		"title":       "  Nice House ",
		"description": " Three bedrooms close to the park. ",
		"type":        "Villa",
		"status":      "active ",
		"location":    "Salem",
		"price":       "250000",
		"internal":    "dropped",
	}

	got := validation.Property.Sanitize(record)

	assert.Equal(t, "Nice House", got["title"])
	assert.Equal(t, "Three bedrooms close to the park.", got["description"])
	assert.Equal(t, "active", got["status"])
	assert.Equal(t, "250000", got["price"])
	assert.NotContains(t, got, "internal")
	assert.Equal(t, "  Nice House ", record["title"])
}

func TestSanitizeKeepsPriceUntrimmed(t *testing.T) {
	got := validation.Property.Sanitize(validation.Record{"price": " 10 "})
	assert.Equal(t, " 10 ", got["price"])
}

func TestDescribe(t *testing.T) {
	d := validation.Login.Describe()

	assert.Equal(t, "login", d.Name)
	assert.Equal(t, []validation.RuleDescription{
		{Field: "email", Kind: "presence", Trim: true, Message: "Email is required"},
		{Field: "email", Kind: "email", Trim: true, Message: "Please provide a valid email"},
		{Field: "password", Kind: "presence", Trim: true, Message: "Password is required"},
	}, d.Rules)

	title := validation.BlogPost.Describe().Rules[1]
	assert.Equal(t, "length", title.Kind)
	assert.Equal(t, 5, title.Min)
	assert.Equal(t, 200, title.Max)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "presence", validation.Presence.String())
	assert.Equal(t, "numeric", validation.Numeric.String())
	assert.Equal(t, "kind(42)", validation.Kind(42).String())
}
