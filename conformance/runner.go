package conformance

import (
	"errors"
	"fmt"
	"strings"

	"pylua/lua"
	"pylua/parser"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Output     string
	Error      error
}

// Runner translates conformance fixtures and checks the output
type Runner struct {
	base lua.Config
}

// NewRunner creates a runner using the default config without a header
func NewRunner() *Runner {
	cfg := lua.DefaultConfig()
	cfg.Header = false
	return &Runner{base: cfg}
}

// configFor applies the suite's config overrides
func (r *Runner) configFor(suite TestSuite) (lua.Config, error) {
	cfg := r.base
	if suite.Config.Kind == 0 {
		return cfg, nil
	}
	if err := suite.Config.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("suite config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	fail := func(err error) TestResult {
		return TestResult{Test: test, Passed: false, Error: err}
	}

	cfg, err := r.configFor(test.Suite)
	if err != nil {
		return fail(err)
	}
	if test.Test.Tree.Kind == 0 {
		return fail(fmt.Errorf("test has no tree"))
	}
	mod, err := parser.DecodeNode(&test.Test.Tree)
	if err != nil {
		return fail(fmt.Errorf("decode error: %w", err))
	}

	block := mod.Body
	if test.Test.Entry != "" {
		if block, err = parser.EntryBlock(mod, test.Test.Entry); err != nil {
			return fail(err)
		}
	}

	out, err := lua.New(cfg).Translate(block)
	result := TestResult{Test: test}
	if out != nil {
		result.Output = out.String()
	}
	result.Passed, result.Error = checkExpectation(test.Test.Expect, result.Output, err)
	return result
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation compares a translation outcome with the expected one
func checkExpectation(expect Expectation, output string, err error) (bool, error) {
	if expect.Error != "" {
		var uc *lua.UnsupportedConstruct
		if !errors.As(err, &uc) {
			if err != nil {
				return false, fmt.Errorf("expected unsupported %s, got error: %w", expect.Error, err)
			}
			return false, fmt.Errorf("expected unsupported %s, got output:\n%s", expect.Error, output)
		}
		if uc.Kind != expect.Error {
			return false, fmt.Errorf("expected unsupported %s, got %s (%v)", expect.Error, uc.Kind, err)
		}
		return true, nil
	}

	if err != nil {
		return false, err
	}

	if expect.Lua != "" && output != expect.Lua {
		return false, fmt.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", output, expect.Lua)
	}
	for _, frag := range expect.Contains {
		if !strings.Contains(output, frag) {
			return false, fmt.Errorf("output does not contain %q:\n%s", frag, output)
		}
	}
	return true, nil
}
