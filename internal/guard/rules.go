package guard

import "regexp"

// Rule is a credential pattern. IDs follow gitleaks naming.
type Rule struct {
	ID          string
	Description string
	Pattern     *regexp.Regexp
}

// DefaultRules covers credentials commonly pasted into prompts by accident.
var DefaultRules = []Rule{
	{
		ID:          "aws-access-key",
		Description: "AWS Access Key",
		Pattern:     regexp.MustCompile(`\b((?:A3T[A-Z0-9]|AKIA|ASIA|ABIA|ACCA)[A-Z2-7]{16})\b`),
	},
	{
		ID:          "anthropic-api-key",
		Description: "Anthropic API Key",
		Pattern:     regexp.MustCompile(`\bsk-ant-(?:api|admin)\d{2}-[A-Za-z0-9_\-]{80,}`),
	},
	{
		ID:          "openai-api-key",
		Description: "OpenAI API Key",
		Pattern:     regexp.MustCompile(`\bsk-(?:proj-|svcacct-|admin-)?[A-Za-z0-9_\-]{20,}T3BlbkFJ[A-Za-z0-9_\-]{20,}`),
	},
	{
		ID:          "github-token",
		Description: "GitHub Token",
		Pattern:     regexp.MustCompile(`\b(?:gh[pousr]_[0-9A-Za-z]{36}|github_pat_\w{82})\b`),
	},
	{
		ID:          "gitlab-pat",
		Description: "GitLab Personal Access Token",
		Pattern:     regexp.MustCompile(`glpat-[0-9A-Za-z\-_]{20}`),
	},
	{
		ID:          "slack-token",
		Description: "Slack Token",
		Pattern:     regexp.MustCompile(`\bxox[abposr]-[0-9A-Za-z\-]{10,}`),
	},
	{
		ID:          "private-key",
		Description: "Private Key",
		Pattern:     regexp.MustCompile(`(?i)-----BEGIN[ A-Z0-9_-]{0,100}PRIVATE KEY-----`),
	},
	{
		ID:          "jwt",
		Description: "JSON Web Token",
		Pattern:     regexp.MustCompile(`\bey[A-Za-z0-9]{17,}\.ey[A-Za-z0-9/\\_-]{17,}\.[A-Za-z0-9/\\_-]{10,}={0,2}`),
	},
	{
		ID:          "password-in-url",
		Description: "Password in URL",
		Pattern:     regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.-]*://[^/\s:@]+:[^/\s@]+@`),
	},
}
