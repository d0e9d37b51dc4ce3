package conformance

import "gopkg.in/yaml.v3"

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Config      yaml.Node  `yaml:"config,omitempty"` // overrides applied to the default translator config
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"`  // bool or string
	Entry       string      `yaml:"entry,omitempty"` // translate only this function's body
	Tree        yaml.Node   `yaml:"tree"`            // Module mapping or statement list
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test
type Expectation struct {
	Lua      string   `yaml:"lua,omitempty"`      // exact output
	Error    string   `yaml:"error,omitempty"`    // node kind of the unsupported construct
	Contains []string `yaml:"contains,omitempty"` // output fragments
}

// IsEmpty reports whether the expectation checks nothing
func (e Expectation) IsEmpty() bool {
	return e.Lua == "" && e.Error == "" && len(e.Contains) == 0
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
