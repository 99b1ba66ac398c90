package schemas

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/json-iterator/go"
)

// TokenPrefix marks a string as a reference into the design token table.
const TokenPrefix = "tokens."

// ValueKind discriminates the variants of Value.
type ValueKind int

const (
	// ValueNumber is a numeric literal.
	ValueNumber ValueKind = iota
	// ValueString is a string literal ("#fff", "50%", "auto", ...).
	ValueString
	// ValueToken is a symbolic reference resolved against DesignTokens.
	ValueToken
)

// Value is a style or layout field: either a literal or a token reference.
// On the wire a token reference is the string "tokens.<path>".
type Value struct {
	kind ValueKind
	num  float64
	str  string
}

// Num returns a numeric literal.
func Num(f float64) *Value { return &Value{kind: ValueNumber, num: f} }

// Str returns a string value. A string carrying the token prefix becomes a
// token reference, exactly as it would when decoded from JSON; the wire form
// cannot express a literal that starts with "tokens.".
func Str(s string) *Value { return ParseValue(s) }

// Token returns a reference to the token at path (without the "tokens." prefix).
func Token(path string) *Value { return &Value{kind: ValueToken, str: path} }

// ParseValue classifies a raw string the same way the JSON decoder does.
func ParseValue(s string) *Value {
	if strings.HasPrefix(s, TokenPrefix) {
		return Token(strings.TrimPrefix(s, TokenPrefix))
	}
	return &Value{kind: ValueString, str: s}
}

// Kind returns the variant.
func (v Value) Kind() ValueKind { return v.kind }

// Number returns the literal number, if this is a numeric literal.
func (v Value) Number() (float64, bool) { return v.num, v.kind == ValueNumber }

// Text returns the literal string, if this is a string literal.
func (v Value) Text() (string, bool) { return v.str, v.kind == ValueString }

// TokenPath returns the dot path of a token reference.
func (v Value) TokenPath() (string, bool) { return v.str, v.kind == ValueToken }

// Equal is used by go-cmp and by tests for structural comparison.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.num == o.num && v.str == o.str
}

// String renders the value in its wire form.
func (v Value) String() string {
	switch v.kind {
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueToken:
		return TokenPrefix + v.str
	default:
		return v.str
	}
}

// MarshalJSON encodes numbers as JSON numbers and everything else as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == ValueNumber {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts a JSON number or string.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case float64:
		*v = Value{kind: ValueNumber, num: t}
	case string:
		*v = *ParseValue(t)
	default:
		return fmt.Errorf("value must be a number or string, got %s", string(data))
	}
	return nil
}
