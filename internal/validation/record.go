package validation

import (
	"bytes"
	"encoding/json"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// Record is the raw field set of one request. Absent keys are allowed.
type Record map[string]string

// Get returns the raw value of field and whether it was sent at all.
func (r Record) Get(field string) (string, bool) {
	v, ok := r[field]
	return v, ok
}

// ExtractRecord reads the submitted fields of the request.
//
// JSON objects and url-encoded or multipart forms are supported. Values that
// are not scalars (null, arrays, objects) are left out, so they fail
// presence like a missing field. A body that cannot be parsed yields an empty
// record. The request body stays readable for later handlers.
func ExtractRecord(c echo.Context) Record {
	ctype := c.Request().Header.Get(echo.HeaderContentType)

	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
		return recordFromJSON(c)
	case strings.HasPrefix(ctype, echo.MIMEApplicationForm), strings.HasPrefix(ctype, echo.MIMEMultipartForm):
		params, err := c.FormParams()
		if err != nil {
			return Record{}
		}
		record := make(Record, len(params))
		for key, values := range params {
			if len(values) > 0 {
				record[key] = values[0]
			}
		}
		return record
	default:
		return Record{}
	}
}

func recordFromJSON(c echo.Context) Record {
	req := c.Request()
	if req.Body == nil {
		return Record{}
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return Record{}
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	return RecordFromJSON(body)
}

// RecordFromJSON converts a JSON object into a Record. Numbers keep their
// literal text and booleans become "true" or "false".
func RecordFromJSON(body []byte) Record {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return Record{}
	}

	record := make(Record, len(fields))
	for key, value := range fields {
		switch v := value.(type) {
		case string:
			record[key] = v
		case json.Number:
			record[key] = numberText(v)
		case bool:
			if v {
				record[key] = "true"
			} else {
				record[key] = "false"
			}
		}
	}
	return record
}

var decimalLiteral = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?$`)

// numberText keeps plain decimal literals as sent and rewrites exponent
// forms such as 2.5e5 in positional notation. Literals that overflow a
// float64 are kept as is.
func numberText(n json.Number) string {
	text := n.String()
	if decimalLiteral.MatchString(text) {
		return text
	}

	f, err := n.Float64()
	if err != nil {
		return text
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
