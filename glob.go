// Package glob implements glob-style pattern matching.
//
// A pattern is made of alphanumeric literals, the "?" wildcard matching any
// single code point, the "*" wildcard matching any run of code points, and
// groups matching one code point: either an enumeration such as "[xyz]" or
// an inclusive range such as "[a-z]". There is no escaping and a pattern
// always has to match the whole candidate.
//
// Patterns are compiled into a list of tokens by a Compiler, and a Matcher
// tests candidates against that list:
//
//	m, err := glob.Compile("s*me", glob.Options{})
//	if err != nil {
//		// handle the error
//	}
//	m.Match("sooooome") // true
package glob
