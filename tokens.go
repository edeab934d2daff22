package glob

import (
	"encoding/json"
	"fmt"
)

// Token is one compiled unit of a pattern.
type Token struct {
	Type TokenType
	// Value is the literal code point of a TokenUnicode token. Other token
	// types carry a placeholder.
	Value rune
	// Group holds the members of a TokenGroup token in the order they appear
	// in the pattern. Duplicates are kept.
	Group []rune
}

type TokenType uint8

const (
	// TokenEmpty marks the end of the pattern.
	TokenEmpty TokenType = iota
	// TokenUnicode matches exactly one literal code point.
	TokenUnicode
	// TokenSingle represents a U+003F (?) code point and matches any single code point.
	TokenSingle
	// TokenAny represents a U+002A (*) code point and matches any run of code points.
	TokenAny
	// TokenGroup matches one code point belonging to a "[...]" enumeration or a "[x-y]" range.
	TokenGroup
)

var tokenTypeNames = [...]string{
	TokenEmpty:   "empty",
	TokenUnicode: "unicode",
	TokenSingle:  "single",
	TokenAny:     "any",
	TokenGroup:   "group",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}

	return fmt.Sprintf("TokenType(%d)", uint8(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// MarshalJSON encodes the token with its code points as strings.
func (t Token) MarshalJSON() ([]byte, error) {
	v := struct {
		Type  TokenType `json:"type"`
		Value string    `json:"value"`
		Group string    `json:"group,omitempty"`
	}{
		Type:  t.Type,
		Value: string(t.Value),
		Group: string(t.Group),
	}

	return json.Marshal(v)
}

func emptyToken() Token {
	return Token{Type: TokenEmpty, Value: '-'}
}
