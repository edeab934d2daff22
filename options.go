package glob

// MatchPolicy selects how a Matcher treats "*" and the end of the pattern.
type MatchPolicy uint8

const (
	// MatchPolicyStrict lets "*" match zero code points and accepts only
	// when the whole pattern and the whole candidate are consumed together.
	MatchPolicyStrict MatchPolicy = iota
	// MatchPolicyLegacy reproduces the historical matcher: "*" always
	// consumes at least one code point, a candidate is also accepted when a
	// single token remains at its end, and reaching the end of the pattern
	// before the end of the candidate stops the whole search.
	MatchPolicyLegacy
)

func (p MatchPolicy) String() string {
	switch p {
	case MatchPolicyStrict:
		return "strict"
	case MatchPolicyLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

type Options struct {
	Policy MatchPolicy
}
