package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dunglas/go-glob"
	"gopkg.in/yaml.v3"
)

func decodeResults(t *testing.T, output string) []Result {
	t.Helper()

	var results []Result
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		var r Result
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		results = append(results, r)
	}

	return results
}

func TestRunCasesFile(t *testing.T) {
	cases, err := LoadCasesFile("testdata/cases.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if len(cases.Cases) != 3 {
		t.Fatalf("want 3 cases; got %d", len(cases.Cases))
	}

	var out bytes.Buffer
	failures, err := runCases(&out, cases)
	if err != nil {
		t.Fatal(err)
	}

	if failures != 0 {
		t.Errorf("want no failure; got %d\n%s", failures, out.String())
	}

	results := decodeResults(t, out.String())
	if len(results) != 10 {
		t.Fatalf("want 10 results; got %d", len(results))
	}

	if r := results[5]; r.Candidate != "x" || !r.Match || r.Expected != nil {
		t.Errorf("unexpected result %#v", r)
	}

	if r := results[8]; r.Policy != "legacy" || r.Candidate != "a" || !r.Match {
		t.Errorf("unexpected result %#v", r)
	}
}

func TestRunCaseReportsFailures(t *testing.T) {
	var out bytes.Buffer
	failures, err := runCase(&out, Case{Pattern: "s*me", Matches: []string{"soma"}, Rejects: []string{"same"}})
	if err != nil {
		t.Fatal(err)
	}

	if failures != 2 {
		t.Errorf("want 2 failures; got %d", failures)
	}
}

func TestRunCaseErrors(t *testing.T) {
	var out bytes.Buffer

	if _, err := runCase(&out, Case{Pattern: "[a-"}); !errors.Is(err, glob.UnterminatedRangeError) {
		t.Errorf("want %v; got %v", glob.UnterminatedRangeError, err)
	}

	if _, err := runCase(&out, Case{Pattern: "a", Policy: "lenient"}); err == nil {
		t.Error("want an error for an unknown policy")
	}

	cases := &CasesFile{Cases: []Case{{Pattern: "a", Matches: []string{"a"}}, {Pattern: "[!]"}}}
	if _, err := runCases(&out, cases); !errors.Is(err, glob.ExpectedAlphanumericError) {
		t.Errorf("want %v; got %v", glob.ExpectedAlphanumericError, err)
	}
}

func TestLoadCasesFileErrors(t *testing.T) {
	if _, err := LoadCasesFile("testdata/missing.yaml"); err == nil {
		t.Error("want an error for a missing file")
	}
}

func TestWriteTokens(t *testing.T) {
	var out bytes.Buffer
	if err := writeTokens(&out, "a[x-z]"); err != nil {
		t.Fatal(err)
	}

	want := `{"type":"unicode","value":"a"}
{"type":"group","value":"-","group":"xyz"}
{"type":"empty","value":"-"}
`
	if out.String() != want {
		t.Errorf("want %q; got %q", want, out.String())
	}
}

func TestGenerateExampleCases(t *testing.T) {
	var out bytes.Buffer
	if err := generateExampleCases(&out); err != nil {
		t.Fatal(err)
	}

	var cases CasesFile
	if err := yaml.Unmarshal(out.Bytes(), &cases); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	failures, err := runCases(&buf, &cases)
	if err != nil || failures != 0 {
		t.Errorf("example cases must pass: %d failures, %v\n%s", failures, err, buf.String())
	}
}

func TestReadLines(t *testing.T) {
	got, err := readLines(strings.NewReader("same\nsme\n\nx"))
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"same", "sme", "", "x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("want %q; got %q", want, got)
	}
}

func TestCheckCasesFlags(t *testing.T) {
	tests := []struct {
		passed  []string
		wantErr bool
	}{
		{[]string{"cases"}, false},
		{[]string{"cases", "pattern"}, true},
		{[]string{"cases", "legacy"}, true},
		{[]string{"tokens", "cases"}, true},
	}

	for _, tt := range tests {
		err := checkCasesFlags(func(name string) bool {
			for _, p := range tt.passed {
				if p == name {
					return true
				}
			}

			return false
		})

		if (err != nil) != tt.wantErr {
			t.Errorf("%v: want error %v; got %v", tt.passed, tt.wantErr, err)
		}
	}
}
