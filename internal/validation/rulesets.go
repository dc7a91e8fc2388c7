package validation

// Registration covers account sign-up.
var Registration = newRuleSet("registration",
	FieldRule{Field: "name", Kind: Presence, Trim: true, Message: "Name is required"},
	FieldRule{Field: "name", Kind: Length, Min: 2, Max: 50, Trim: true, Message: "Name must be between 2 and 50 characters"},
	FieldRule{Field: "email", Kind: Presence, Trim: true, Message: "Email is required"},
	FieldRule{Field: "email", Kind: Email, Trim: true, Message: "Please provide a valid email"},
	FieldRule{Field: "password", Kind: Presence, Trim: true, Message: "Password is required"},
	FieldRule{Field: "password", Kind: Length, Min: 6, Trim: true, Message: "Password must be at least 6 characters long"},
)

// Login covers the sign-in form.
var Login = newRuleSet("login",
	FieldRule{Field: "email", Kind: Presence, Trim: true, Message: "Email is required"},
	FieldRule{Field: "email", Kind: Email, Trim: true, Message: "Please provide a valid email"},
	FieldRule{Field: "password", Kind: Presence, Trim: true, Message: "Password is required"},
)

// Property covers listing create and update in the back office.
// Price is not trimmed and stays a string.
var Property = newRuleSet("property",
	FieldRule{Field: "title", Kind: Presence, Trim: true, Message: "Title is required"},
	FieldRule{Field: "title", Kind: Length, Min: 5, Max: 100, Trim: true, Message: "Title must be between 5 and 100 characters"},
	FieldRule{Field: "description", Kind: Presence, Trim: true, Message: "Description is required"},
	FieldRule{Field: "description", Kind: Length, Min: 20, Trim: true, Message: "Description must be at least 20 characters long"},
	FieldRule{Field: "type", Kind: Presence, Trim: true, Message: "Property type is required"},
	FieldRule{Field: "status", Kind: Presence, Trim: true, Message: "Property status is required"},
	FieldRule{Field: "location", Kind: Presence, Trim: true, Message: "Location is required"},
	FieldRule{Field: "price", Kind: Presence, Message: "Price is required"},
	FieldRule{Field: "price", Kind: Numeric, Message: "Price must be a number"},
)

// BlogPost covers blog post create and update.
var BlogPost = newRuleSet("blog-post",
	FieldRule{Field: "title", Kind: Presence, Trim: true, Message: "Title is required"},
	FieldRule{Field: "title", Kind: Length, Min: 5, Max: 200, Trim: true, Message: "Title must be between 5 and 200 characters"},
	FieldRule{Field: "content", Kind: Presence, Trim: true, Message: "Content is required"},
	FieldRule{Field: "content", Kind: Length, Min: 50, Trim: true, Message: "Content must be at least 50 characters long"},
	FieldRule{Field: "status", Kind: Presence, Trim: true, Message: "Status is required"},
)

// Inquiry covers the public contact form.
var Inquiry = newRuleSet("inquiry",
	FieldRule{Field: "name", Kind: Presence, Trim: true, Message: "Name is required"},
	FieldRule{Field: "name", Kind: Length, Min: 2, Max: 50, Trim: true, Message: "Name must be between 2 and 50 characters"},
	FieldRule{Field: "email", Kind: Presence, Trim: true, Message: "Email is required"},
	FieldRule{Field: "email", Kind: Email, Trim: true, Message: "Please provide a valid email"},
	FieldRule{Field: "message", Kind: Presence, Trim: true, Message: "Message is required"},
	FieldRule{Field: "message", Kind: Length, Min: 10, Trim: true, Message: "Message must be at least 10 characters long"},
)

var ruleSets = []RuleSet{Registration, Login, Property, BlogPost, Inquiry}

// RuleSets returns every declared set in declaration order.
func RuleSets() []RuleSet {
	out := make([]RuleSet, len(ruleSets))
	copy(out, ruleSets)
	return out
}

// Lookup finds a rule set by its wire name.
func Lookup(name string) (RuleSet, bool) {
	for _, rs := range ruleSets {
		if rs.name == name {
			return rs, true
		}
	}
	return RuleSet{}, false
}
