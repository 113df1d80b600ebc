// Package guard scans text for credentials before it leaves the process.
package guard

import (
	"fmt"
	"strings"
)

// Finding is one rule match.
type Finding struct {
	RuleID      string
	Description string
	Line        int
}

// SecretsError is returned by Check when credentials are found and
// copying them is not allowed.
type SecretsError struct {
	Findings []Finding
}

func (e *SecretsError) Error() string {
	parts := make([]string, 0, len(e.Findings))
	for _, f := range e.Findings {
		parts = append(parts, fmt.Sprintf("%s (line %d)", f.Description, f.Line))
	}
	return fmt.Sprintf("output looks like it contains secrets: %s (use --force to copy anyway)", strings.Join(parts, ", "))
}

// Scanner matches text against a set of rules.
type Scanner struct {
	rules []Rule
}

// New creates a Scanner with DefaultRules.
func New() *Scanner {
	return &Scanner{rules: DefaultRules}
}

// Scan returns every rule that matches, once per line.
func (s *Scanner) Scan(text string) []Finding {
	var findings []Finding
	for i, line := range strings.Split(text, "\n") {
		for _, r := range s.rules {
			if r.Pattern.MatchString(line) {
				findings = append(findings, Finding{
					RuleID:      r.ID,
					Description: r.Description,
					Line:        i + 1,
				})
			}
		}
	}
	return findings
}

// Check scans text and returns a *SecretsError when block is set and
// anything was found. Findings are returned either way.
func (s *Scanner) Check(text string, block bool) ([]Finding, error) {
	findings := s.Scan(text)
	if block && len(findings) > 0 {
		return findings, &SecretsError{Findings: findings}
	}
	return findings, nil
}
