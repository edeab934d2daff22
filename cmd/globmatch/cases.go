package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dunglas/go-glob"
	"gopkg.in/yaml.v3"
)

// CasesFile is the structure of a YAML cases file.
type CasesFile struct {
	Cases []Case `yaml:"cases"`
}

// Case is one pattern and the candidates to test against it.
// Matches and Rejects also state the expected verdict.
type Case struct {
	Pattern    string   `yaml:"pattern"`
	Policy     string   `yaml:"policy,omitempty"`
	Candidates []string `yaml:"candidates,omitempty"`
	Matches    []string `yaml:"matches,omitempty"`
	Rejects    []string `yaml:"rejects,omitempty"`
}

// Result is written as one JSON line per candidate.
type Result struct {
	Pattern   string `json:"pattern"`
	Policy    string `json:"policy"`
	Candidate string `json:"candidate"`
	Match     bool   `json:"match"`
	Expected  *bool  `json:"expected,omitempty"`
}

func LoadCasesFile(filename string) (*CasesFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases file '%s': %w", filename, err)
	}

	var cases CasesFile
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in cases file '%s': %w", filename, err)
	}

	return &cases, nil
}

func parsePolicy(name string) (glob.MatchPolicy, error) {
	switch name {
	case "", "strict":
		return glob.MatchPolicyStrict, nil
	case "legacy":
		return glob.MatchPolicyLegacy, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", name)
	}
}

// runCase writes a Result for every candidate of c and returns how many
// verdicts differ from the expected ones.
func runCase(w io.Writer, c Case) (int, error) {
	policy, err := parsePolicy(c.Policy)
	if err != nil {
		return 0, err
	}

	m, err := glob.Compile(c.Pattern, glob.Options{Policy: policy})
	if err != nil {
		return 0, err
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	failures := 0
	check := func(candidate string, expected *bool) error {
		r := Result{
			Pattern:   c.Pattern,
			Policy:    policy.String(),
			Candidate: candidate,
			Match:     m.Match(candidate),
			Expected:  expected,
		}
		if expected != nil && *expected != r.Match {
			failures++
		}

		return encoder.Encode(r)
	}

	for _, candidate := range c.Candidates {
		if err := check(candidate, nil); err != nil {
			return failures, err
		}
	}

	yes, no := true, false
	for _, candidate := range c.Matches {
		if err := check(candidate, &yes); err != nil {
			return failures, err
		}
	}
	for _, candidate := range c.Rejects {
		if err := check(candidate, &no); err != nil {
			return failures, err
		}
	}

	return failures, nil
}

// runCases runs every case, stopping at the first invalid one.
func runCases(w io.Writer, cases *CasesFile) (int, error) {
	failures := 0
	for i, c := range cases.Cases {
		f, err := runCase(w, c)
		failures += f
		if err != nil {
			return failures, fmt.Errorf("case %d (%q): %w", i, c.Pattern, err)
		}
	}

	return failures, nil
}

// writeTokens writes the tokens of pattern, one JSON object per line.
func writeTokens(w io.Writer, pattern string) error {
	tokens, err := glob.Tokenize(pattern)
	if err != nil {
		return err
	}

	for _, t := range tokens {
		jsonBytes, err := json.Marshal(t)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, string(jsonBytes)); err != nil {
			return err
		}
	}

	return nil
}
