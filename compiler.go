package glob

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/exp/utf8string"
)

var (
	UnterminatedGroupError      = errors.New("group opened with no closing")
	ExpectedAlphanumericError   = errors.New("expected alphanumeric code point")
	UnterminatedRangeError      = errors.New("group range with no end")
	ExpectedClosingBracketError = errors.New(`expected "]" after group range`)
	InvalidRangeError           = errors.New("group range start is greater than its end")
)

// Compiler turns a pattern into tokens, one per call to Next.
type Compiler struct {
	input *utf8string.String
	index int
}

func NewCompiler(pattern string) *Compiler {
	return &Compiler{input: utf8string.NewString(pattern)}
}

// Index returns the rune offset of the next code point to be read.
func (c *Compiler) Index() int {
	return c.index
}

// Next returns the token starting at the current index and moves past it.
// Once the pattern is exhausted every call returns a TokenEmpty token.
func (c *Compiler) Next() (Token, error) {
	len := c.input.RuneCount()
	if c.index == len {
		return emptyToken(), nil
	}

	switch codePoint := c.input.At(c.index); codePoint {
	case '*':
		c.index++

		return Token{Type: TokenAny, Value: '*'}, nil

	case '?':
		c.index++

		return Token{Type: TokenSingle, Value: '?'}, nil

	case '[':
		return c.group()

	default:
		if !isAlphanumeric(codePoint) {
			return Token{}, c.errorf(ExpectedAlphanumericError, c.index)
		}
		c.index++

		return Token{Type: TokenUnicode, Value: codePoint}, nil
	}
}

// group parses "[x-y]" and "[...]". c.index points at the opening bracket.
func (c *Compiler) group() (Token, error) {
	len := c.input.RuneCount()
	start := c.index

	if start+2 >= len {
		return Token{}, c.errorf(UnterminatedGroupError, start)
	}

	first := c.input.At(start + 1)
	if !isAlphanumeric(first) {
		return Token{}, c.errorf(ExpectedAlphanumericError, start+1)
	}

	if c.input.At(start+2) == '-' {
		if start+3 >= len {
			return Token{}, c.errorf(UnterminatedRangeError, start+2)
		}

		last := c.input.At(start + 3)
		if !isAlphanumeric(last) {
			return Token{}, c.errorf(ExpectedAlphanumericError, start+3)
		}

		if start+4 >= len || c.input.At(start+4) != ']' {
			return Token{}, c.errorf(ExpectedClosingBracketError, start+4)
		}

		if first > last {
			return Token{}, c.errorf(InvalidRangeError, start+1)
		}

		values := make([]rune, 0, last-first+1)
		for r := first; r <= last; r++ {
			values = append(values, r)
		}
		c.index = start + 5

		return Token{Type: TokenGroup, Value: '-', Group: values}, nil
	}

	values := []rune{first}
	for i := start + 2; i < len; i++ {
		codePoint := c.input.At(i)
		if codePoint == ']' {
			c.index = i + 1

			return Token{Type: TokenGroup, Value: '-', Group: values}, nil
		}

		values = append(values, codePoint)
	}

	return Token{}, c.errorf(UnterminatedGroupError, start)
}

func (c *Compiler) errorf(err error, index int) error {
	return fmt.Errorf("%w: at index %d of %q", err, index, c.input.String())
}

// Tokenize compiles the whole pattern. The returned list always ends with
// exactly one TokenEmpty token.
func Tokenize(pattern string) ([]Token, error) {
	c := NewCompiler(pattern)
	tokenList := make([]Token, 0, c.input.RuneCount()+1)

	for {
		t, err := c.Next()
		if err != nil {
			return nil, err
		}

		tokenList = append(tokenList, t)
		if t.Type == TokenEmpty {
			return tokenList, nil
		}
	}
}

func isAlphanumeric(codePoint rune) bool {
	return unicode.IsLetter(codePoint) || unicode.IsNumber(codePoint)
}
