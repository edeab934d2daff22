package glob

import (
	"strings"
)

// String returns a pattern for the tokens of m. Ranges are written as "[x-y]".
// For a Matcher returned by Compile the pattern compiles to tokens accepting
// the same candidates. Token lists given to NewMatcher may hold code points the
// pattern syntax cannot express, and then the result does not compile.
func (m *Matcher) String() string {
	var result strings.Builder

	for _, t := range m.tokens {
		switch t.Type {
		case TokenUnicode:
			result.WriteRune(t.Value)
		case TokenSingle:
			result.WriteByte('?')
		case TokenAny:
			result.WriteByte('*')
		case TokenGroup:
			writeGroupPattern(&result, t.Group)
		}
	}

	return result.String()
}

func writeGroupPattern(result *strings.Builder, group []rune) {
	result.WriteByte('[')
	defer result.WriteByte(']')

	if len(group) == 0 {
		return
	}

	if isRange(group) {
		result.WriteRune(group[0])
		result.WriteByte('-')
		result.WriteRune(group[len(group)-1])

		return
	}

	result.WriteRune(group[0])
	// "[a-" would start a range: repeat the first member so "-" is enumerated.
	if len(group) > 1 && group[1] == '-' {
		result.WriteRune(group[0])
	}
	for _, r := range group[1:] {
		result.WriteRune(r)
	}
}

// isRange reports whether group lists at least two consecutive code points
// with alphanumeric bounds.
func isRange(group []rune) bool {
	if len(group) < 2 || !isAlphanumeric(group[0]) || !isAlphanumeric(group[len(group)-1]) {
		return false
	}

	for i := 1; i < len(group); i++ {
		if group[i] != group[i-1]+1 {
			return false
		}
	}

	return true
}

// RegexpString returns a regular expression, in the syntax accepted by the
// regexp package, matching the candidates m accepts under MatchPolicyStrict.
func (m *Matcher) RegexpString() string {
	var result strings.Builder

	result.WriteString(`(?s)\A(?:`)

	for _, t := range m.tokens {
		switch t.Type {
		case TokenUnicode:
			result.WriteString(escapeRegexpString(string(t.Value)))
		case TokenSingle:
			result.WriteByte('.')
		case TokenAny:
			result.WriteString(".*")
		case TokenGroup:
			if len(t.Group) == 0 {
				// Matches nothing.
				result.WriteString(`[^\x00-\x{10FFFF}]`)

				continue
			}

			writeClass(&result, t.Group)
		}
	}

	result.WriteString(`)\z`)

	return result.String()
}

// writeClass writes group as a character class, folding runs of consecutive
// code points into ranges.
func writeClass(result *strings.Builder, group []rune) {
	result.WriteByte('[')

	for i := 0; i < len(group); {
		j := i
		for j+1 < len(group) && group[j+1] == group[j]+1 {
			j++
		}

		result.WriteString(escapeClassString(string(group[i])))
		if j-i >= 2 {
			result.WriteByte('-')
			result.WriteString(escapeClassString(string(group[j])))
			i = j + 1

			continue
		}

		i++
	}

	result.WriteByte(']')
}
