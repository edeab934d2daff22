package glob

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/slices"
)

var InvalidTokenListError = errors.New("token list must end with exactly one empty token")

// Matcher reports whether candidates match a compiled token list.
// A Matcher is immutable and may be used from multiple goroutines.
type Matcher struct {
	tokens  []Token
	options Options
}

// NewMatcher builds a Matcher from a token list such as the one returned by
// Tokenize. The list is copied.
func NewMatcher(tokens []Token, options Options) (*Matcher, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: got no tokens", InvalidTokenListError)
	}

	for i, t := range tokens {
		if (t.Type == TokenEmpty) != (i == len(tokens)-1) {
			return nil, fmt.Errorf("%w: unexpected %s token at index %d", InvalidTokenListError, t.Type, i)
		}
	}

	tokenList := make([]Token, len(tokens))
	for i, t := range tokens {
		t.Group = slices.Clone(t.Group)
		tokenList[i] = t
	}

	return &Matcher{tokens: tokenList, options: options}, nil
}

// Compile tokenizes pattern and returns a Matcher for it.
func Compile(pattern string, options Options) (*Matcher, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}

	return &Matcher{tokens: tokens, options: options}, nil
}

// MustCompile is like Compile with the default options but panics if the
// pattern is invalid.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern, Options{})
	if err != nil {
		panic(`glob: Compile(` + strconv.Quote(pattern) + `): ` + err.Error())
	}

	return m
}

// Tokens returns a copy of the token list, end token included.
func (m *Matcher) Tokens() []Token {
	tokens := make([]Token, len(m.tokens))
	for i, t := range m.tokens {
		t.Group = slices.Clone(t.Group)
		tokens[i] = t
	}

	return tokens
}

// Policy returns the policy Match uses.
func (m *Matcher) Policy() MatchPolicy {
	return m.options.Policy
}

// cursor is one hypothesis: the candidate has been consumed up to position
// and tokens[index] is the next token to satisfy.
type cursor struct {
	position int
	index    int
}

// cursorQueue is a FIFO work-list that enqueues each cursor at most once.
type cursorQueue struct {
	cursors []cursor
	visited *bitset.BitSet
	width   uint
}

func newCursorQueue(candidateLen, tokenCount int) *cursorQueue {
	width := uint(tokenCount)

	return &cursorQueue{
		cursors: make([]cursor, 0, tokenCount),
		visited: bitset.New(uint(candidateLen+1) * width),
		width:   width,
	}
}

func (q *cursorQueue) push(position, index int) {
	id := uint(position)*q.width + uint(index)
	if q.visited.Test(id) {
		return
	}

	q.visited.Set(id)
	q.cursors = append(q.cursors, cursor{position: position, index: index})
}

func (q *cursorQueue) pop() (cursor, bool) {
	if len(q.cursors) == 0 {
		return cursor{}, false
	}

	c := q.cursors[0]
	q.cursors = q.cursors[1:]

	return c, true
}

// Match reports whether candidate matches the whole pattern.
func (m *Matcher) Match(candidate string) bool {
	input := []rune(candidate)

	if m.options.Policy == MatchPolicyLegacy {
		return m.matchLegacy(input)
	}

	return m.matchStrict(input)
}

func (m *Matcher) matchStrict(input []rune) bool {
	q := newCursorQueue(len(input), len(m.tokens))
	q.push(0, 0)

	for c, ok := q.pop(); ok; c, ok = q.pop() {
		t := &m.tokens[c.index]
		end := c.position == len(input)

		switch t.Type {
		case TokenEmpty:
			if end {
				return true
			}

		case TokenAny:
			q.push(c.position, c.index+1)
			if !end {
				q.push(c.position+1, c.index)
			}

		case TokenSingle:
			if !end {
				q.push(c.position+1, c.index+1)
			}

		case TokenUnicode:
			if !end && input[c.position] == t.Value {
				q.push(c.position+1, c.index+1)
			}

		case TokenGroup:
			if !end && slices.Contains(t.Group, input[c.position]) {
				q.push(c.position+1, c.index+1)
			}
		}
	}

	return false
}

func (m *Matcher) matchLegacy(input []rune) bool {
	q := newCursorQueue(len(input), len(m.tokens))
	q.push(0, 0)

	for c, ok := q.pop(); ok; c, ok = q.pop() {
		t := &m.tokens[c.index]

		if c.position == len(input) {
			if t.Type == TokenEmpty || c.index+1 == len(m.tokens)-1 {
				return true
			}

			continue
		}

		switch t.Type {
		case TokenEmpty:
			return false

		case TokenAny:
			q.push(c.position+1, c.index)
			q.push(c.position+1, c.index+1)

		case TokenSingle:
			q.push(c.position+1, c.index+1)

		case TokenUnicode:
			if input[c.position] == t.Value {
				q.push(c.position+1, c.index+1)
			}

		case TokenGroup:
			if slices.Contains(t.Group, input[c.position]) {
				q.push(c.position+1, c.index+1)
			}
		}
	}

	return false
}
