package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	version = "0.1.0"
	usage   = `globmatch - Match strings against glob patterns

Usage:
  globmatch [options] [candidate ...]

Options:
  -h, --help            Show this help message
  -v, --version         Show version information
  --pattern <pattern>   Pattern to match candidates against
  --legacy              Use the legacy matching policy
  --tokens              Print the tokens of --pattern instead of matching
  --cases <file>        YAML file listing patterns and candidates
                        (cannot be combined with --pattern, --legacy or --tokens)
  --make-cases          Generate an example cases YAML to stdout

Examples:
  globmatch --pattern 's*me' sooooome soma     # Match two candidates
  printf 'same\nsme\n' | globmatch --pattern 's*me'   # Read candidates from stdin, one per line
  globmatch --pattern '[a-c]?' --tokens        # Print the compiled tokens
  globmatch --cases cases.yaml                 # Run every case of a file

Verdicts are written as one JSON object per line. The exit code is 1 if the
pattern is invalid or if a verdict differs from the one expected by a cases file.
`
)

func main() {
	var showHelp, showVersion, legacy, showTokens, makeCases bool
	var pattern, casesFile string

	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&legacy, "legacy", false, "Use the legacy matching policy")
	flag.BoolVar(&showTokens, "tokens", false, "Print tokens")
	flag.BoolVar(&makeCases, "make-cases", false, "Generate an example cases YAML")
	flag.StringVar(&pattern, "pattern", "", "Pattern")
	flag.StringVar(&casesFile, "cases", "", "YAML cases file")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("globmatch version %s\n", version)
		os.Exit(0)
	}

	if makeCases {
		if err := generateExampleCases(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating example cases: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if casesFile != "" {
		if err := checkCasesFlags(isFlagPassed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			flag.Usage()
			os.Exit(1)
		}

		cases, err := LoadCasesFile(casesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		exit(runCases(os.Stdout, cases))
	}

	if !isFlagPassed("pattern") {
		fmt.Fprintf(os.Stderr, "Error: --pattern or --cases is required.\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if showTokens {
		if err := writeTokens(os.Stdout, pattern); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	c := Case{Pattern: pattern, Candidates: flag.Args()}
	if legacy {
		c.Policy = "legacy"
	}

	if len(c.Candidates) == 0 {
		candidates, err := readLines(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
			os.Exit(1)
		}
		c.Candidates = candidates
	}

	exit(runCase(os.Stdout, c))
}

func exit(failures int, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d unexpected verdict(s)\n", failures)
		os.Exit(1)
	}

	os.Exit(0)
}

// checkCasesFlags rejects the flags that a cases file replaces.
func checkCasesFlags(passed func(name string) bool) error {
	for _, name := range []string{"pattern", "legacy", "tokens"} {
		if passed(name) {
			return fmt.Errorf("--%s cannot be combined with --cases", name)
		}
	}

	return nil
}

func isFlagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})

	return passed
}

// readLines reads one candidate per line.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

// generateExampleCases writes an example cases file in YAML format.
func generateExampleCases(w io.Writer) error {
	cases := &CasesFile{
		Cases: []Case{
			{Pattern: "s*me", Matches: []string{"sme", "same", "sooooome"}, Rejects: []string{"soma", "sm"}},
			{Pattern: "[a-c]?", Candidates: []string{"a1", "d1"}},
			{Pattern: "s*me", Policy: "legacy", Matches: []string{"same"}, Rejects: []string{"sme"}},
		},
	}

	yamlBytes, err := yaml.Marshal(cases)
	if err != nil {
		return fmt.Errorf("failed to marshal cases to YAML: %w", err)
	}

	_, err = w.Write(yamlBytes)

	return err
}
