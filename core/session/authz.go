package session

// Verdict is the outcome of an authorization check.
type Verdict int

const (
	Allow Verdict = iota
	// DenyUnauthenticated means no authenticated session exists; the caller
	// redirects to login, preserving the originally requested location.
	DenyUnauthenticated
	// DenyWrongRole means the user is authenticated but lacks a required
	// role; Decision.RedirectTarget points at their own landing page.
	DenyWrongRole
)

func (v Verdict) String() string {
	switch v {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny:unauthenticated"
	default:
		return "deny:wrong-role"
	}
}

type Decision struct {
	Verdict        Verdict
	RedirectTarget string
}

func (d Decision) Allowed() bool { return d.Verdict == Allow }

// Authorize decides whether the session may access content gated by the
// required roles. An empty required set admits any authenticated user.
// Pure and total: deterministic, no side effects, never panics; safe to
// call on every navigation.
//
// A session carrying a role outside the closed set is a data-integrity
// case: it is denied with no redirect target and the caller is expected to
// send the user down the unauthenticated path.
func Authorize(s Session, required ...Role) Decision {
	if !s.Authenticated() {
		return Decision{Verdict: DenyUnauthenticated}
	}
	if len(required) == 0 {
		return Decision{Verdict: Allow}
	}
	for _, role := range required {
		if s.User.Role == role {
			return Decision{Verdict: Allow}
		}
	}
	return Decision{Verdict: DenyWrongRole, RedirectTarget: s.User.Role.LandingPath()}
}
