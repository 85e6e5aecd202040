package ratelimit

import (
	"strings"
	"time"
)

// Rule budgets one route. A Path ending in "/" matches as a prefix, so
// "/intake/" covers "/intake/{id}/messages". Limit <= 0 means unlimited
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

func (r *Rule) matchesExact(path, method string) bool {
	return r.Method == method && r.Path == path
}

func (r *Rule) matchesPrefix(path, method string) bool {
	return r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path)
}

// findRule resolves path+method to a rule, preferring exact matches over
// prefix matches so "/intake" and "/intake/" can carry separate budgets
func findRule(rules []Rule, path, method string) *Rule {
	for i := range rules {
		if rules[i].matchesExact(path, method) {
			return &rules[i]
		}
	}
	for i := range rules {
		if rules[i].matchesPrefix(path, method) {
			return &rules[i]
		}
	}
	return nil
}

// defaultRules is the route budget table. Gemini calls behind /chat are
// the costly tier; intake, profile, and favorites writes share a
// moderate tier; health probes are never limited. Reads use the
// limiter's default
func defaultRules() []Rule {
	return []Rule{
		{Path: "/health", Method: "GET", Limit: 0},

		{Path: "/chat", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		{Path: "/intake", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/intake/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/intake/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/profile", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/favorites/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
	}
}
