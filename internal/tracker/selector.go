package tracker

import "strings"

// DefaultEnvironmentName is the production environment name used when no
// override is configured.
const DefaultEnvironmentName = "production"

// SelectExact returns the first environment whose lower-cased name equals
// name, or nil when none matches. name is compared case-insensitively.
func SelectExact(envs []Environment, name string) *Environment {
	want := strings.ToLower(name)
	for i := range envs {
		if strings.ToLower(envs[i].Name) == want {
			return &envs[i]
		}
	}
	return nil
}

// SelectMatching returns every environment whose lower-cased name contains
// substr, preserving input order. Used by the report mode so variants like
// "production-eu" or "old-production" are included.
func SelectMatching(envs []Environment, substr string) []Environment {
	want := strings.ToLower(substr)
	var matched []Environment
	for _, env := range envs {
		if strings.Contains(strings.ToLower(env.Name), want) {
			matched = append(matched, env)
		}
	}
	return matched
}
