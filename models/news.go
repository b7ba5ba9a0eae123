package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NewsResponse is the upstream API envelope.
type NewsResponse struct {
	Data []Article `json:"data"` // article list, nil when the field is missing
}

// ArticleID is the upstream id kept in its raw JSON form: `"5"` when the API
// sent a string, `5` when it sent a number.
type ArticleID string

func (id *ArticleID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
	}
	*id = ArticleID(s)
	return nil
}

// MarshalJSON writes the id back the way it was received.
func (id ArticleID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if json.Valid([]byte(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ArticleID) quoted() bool {
	return strings.HasPrefix(string(id), `"`)
}

// String returns the id as text, without JSON quoting.
func (id ArticleID) String() string {
	if id.quoted() {
		var s string
		if err := json.Unmarshal([]byte(id), &s); err == nil {
			return s
		}
	}
	return string(id)
}

// Int reads the id like parseInt does, 0 when it does not start with a number.
func (id ArticleID) Int() int64 {
	if !id.quoted() {
		if f, err := strconv.ParseFloat(string(id), 64); err == nil {
			return int64(f)
		}
	}
	n, ok := ParseIntPrefix(id.String())
	if !ok {
		return 0
	}
	return n
}

// Matches compares the id with a route parameter. String ids must match
// exactly; numeric ids match any parameter with the same numeric value.
func (id ArticleID) Matches(param string) bool {
	if id == "" {
		return false
	}
	if id.quoted() {
		return id.String() == param
	}
	a, err := strconv.ParseFloat(string(id), 64)
	if err != nil {
		return id.String() == param
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(param), 64)
	return err == nil && a == b
}

// ParseIntPrefix reads an optionally signed run of leading digits, so
// "2abc" and "2.5" both give 2. It reports false when there are no digits.
func ParseIntPrefix(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
