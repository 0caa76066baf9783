package httpx

import (
	"fmt"
	"net/http"
	"path"
	"strings"
)

// Access is the requirement a rule places on the caller.
type Access int

const (
	PermitAll Access = iota
	Authenticated
	AnyRole
	DenyAll
)

func (a Access) String() string {
	switch a {
	case PermitAll:
		return "permitAll"
	case Authenticated:
		return "authenticated"
	case AnyRole:
		return "hasAnyRole"
	case DenyAll:
		return "denyAll"
	default:
		return fmt.Sprintf("Access(%d)", int(a))
	}
}

// ParseAccess accepts the names produced by Access.String, case-insensitively.
// "permit" and "deny" are accepted as short forms.
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "permitall", "permit", "":
		return PermitAll, nil
	case "authenticated":
		return Authenticated, nil
	case "hasanyrole", "roles":
		return AnyRole, nil
	case "denyall", "deny":
		return DenyAll, nil
	default:
		return 0, fmt.Errorf("unknown access %q", s)
	}
}

// Rule binds a path pattern to an access requirement. Patterns use Ant
// style wildcards: "*" matches within one segment, "**" matches any number
// of segments.
type Rule struct {
	Pattern string
	Access  Access
	Roles   []string
}

// Policy is an ordered rule list. The first matching rule decides; paths
// matched by no rule fall back to Default.
type Policy struct {
	Rules   []Rule
	Default Access
}

// Validate reports rules that can never be satisfied or parsed.
func (p Policy) Validate() error {
	for i, rule := range p.Rules {
		if rule.Pattern == "" || !strings.HasPrefix(rule.Pattern, "/") {
			return fmt.Errorf("rule %d: pattern %q must start with /", i, rule.Pattern)
		}
		if rule.Access == AnyRole && len(rule.Roles) == 0 {
			return fmt.Errorf("rule %d: %s requires at least one role", i, rule.Access)
		}
	}
	if p.Default == AnyRole {
		return fmt.Errorf("default access cannot be %s", p.Default)
	}
	return nil
}

// Match returns the rule deciding access to urlPath.
func (p Policy) Match(urlPath string) Rule {
	if i := p.index(urlPath); i >= 0 {
		return p.Rules[i]
	}
	return Rule{Pattern: "/**", Access: p.Default}
}

func (p Policy) index(urlPath string) int {
	for i, rule := range p.Rules {
		if MatchPattern(rule.Pattern, urlPath) {
			return i
		}
	}
	return -1
}

// Gate resolves the caller and enforces p before calling next.
func Gate(p Policy, resolve SubjectResolver) Middleware {
	guards := make([]Middleware, len(p.Rules))
	for i, rule := range p.Rules {
		guards[i] = guardFor(rule)
	}
	fallback := guardFor(Rule{Access: p.Default})

	return func(next http.Handler) http.Handler {
		check := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			guard := fallback
			if i := p.index(r.URL.Path); i >= 0 {
				guard = guards[i]
			}
			guard(next).ServeHTTP(w, r)
		})
		return AttachSubject(resolve)(check)
	}
}

func guardFor(rule Rule) Middleware {
	switch rule.Access {
	case Authenticated:
		return RequireAuthenticated()
	case AnyRole:
		return RequireAnyRole(rule.Roles...)
	case DenyAll:
		return RejectAll()
	default:
		return func(next http.Handler) http.Handler { return next }
	}
}

// MatchPattern reports whether urlPath matches an Ant style pattern.
func MatchPattern(pattern, urlPath string) bool {
	return matchSegments(splitPath(pattern), splitPath(urlPath))
}

func matchSegments(pat, segs []string) bool {
	for len(pat) > 0 {
		if pat[0] == "**" {
			rest := pat[1:]
			if len(rest) == 0 {
				return true
			}
			for i := 0; i <= len(segs); i++ {
				if matchSegments(rest, segs[i:]) {
					return true
				}
			}
			return false
		}
		if len(segs) == 0 {
			return false
		}
		ok, err := path.Match(pat[0], segs[0])
		if err != nil || !ok {
			return false
		}
		pat, segs = pat[1:], segs[1:]
	}
	return len(segs) == 0
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
