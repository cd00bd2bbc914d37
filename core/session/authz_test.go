package session

import "testing"

func authedSession(role Role) Session {
	return Session{
		Token:  "tok123",
		User:   User{ID: "1", Name: "Amina", Email: "a@b.com", Role: role},
		Status: Authenticated,
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name         string
		session      Session
		required     []Role
		wantVerdict  Verdict
		wantRedirect string
	}{
		{name: "unauthenticated, no roles", session: Session{}, wantVerdict: DenyUnauthenticated},
		{name: "unauthenticated, roles", session: Session{}, required: []Role{RoleAdmin}, wantVerdict: DenyUnauthenticated},
		{name: "authenticating is not authenticated", session: Session{Status: Authenticating}, wantVerdict: DenyUnauthenticated},
		{name: "empty required set admits any user", session: authedSession(RoleStudent), wantVerdict: Allow},
		{name: "student allowed on student", session: authedSession(RoleStudent), required: []Role{RoleStudent}, wantVerdict: Allow},
		{name: "student allowed on student+admin", session: authedSession(RoleStudent), required: []Role{RoleStudent, RoleAdmin}, wantVerdict: Allow},
		{name: "student denied on instructor", session: authedSession(RoleStudent), required: []Role{RoleInstructor}, wantVerdict: DenyWrongRole, wantRedirect: "/dashboard/student"},
		{name: "instructor denied on admin", session: authedSession(RoleInstructor), required: []Role{RoleAdmin}, wantVerdict: DenyWrongRole, wantRedirect: "/dashboard/instructor"},
		{name: "admin denied on student", session: authedSession(RoleAdmin), required: []Role{RoleStudent}, wantVerdict: DenyWrongRole, wantRedirect: "/dashboard/admin"},
		{name: "unknown role denied with no redirect", session: authedSession(Role("superuser")), required: []Role{RoleStudent}, wantVerdict: DenyWrongRole, wantRedirect: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.session, tt.required...)
			if d.Verdict != tt.wantVerdict {
				t.Errorf("Authorize() verdict = %v, want %v", d.Verdict, tt.wantVerdict)
			}
			if d.RedirectTarget != tt.wantRedirect {
				t.Errorf("Authorize() redirect = %q, want %q", d.RedirectTarget, tt.wantRedirect)
			}
		})
	}
}

// every role/required-set combination yields exactly one of the three
// verdicts and an in-set redirect target, with no panics.
func TestAuthorizeTotality(t *testing.T) {
	roles := append([]Role{}, AllRoles...)
	roles = append(roles, Role(""), Role("owner"))

	sets := [][]Role{
		nil,
		{},
		{RoleStudent},
		{RoleInstructor},
		{RoleAdmin},
		{RoleStudent, RoleInstructor},
		{RoleStudent, RoleAdmin},
		{RoleInstructor, RoleAdmin},
		{RoleStudent, RoleInstructor, RoleAdmin},
		{Role("owner")},
	}

	for _, role := range roles {
		for _, required := range sets {
			for _, sess := range []Session{{}, {Status: Authenticating}, authedSession(role)} {
				d := Authorize(sess, required...)
				switch d.Verdict {
				case Allow, DenyUnauthenticated, DenyWrongRole: // pass
				default:
					t.Fatalf("Authorize(%v, %v) returned impossible verdict %d", sess, required, d.Verdict)
				}
				if d.Verdict != DenyWrongRole && d.RedirectTarget != "" {
					t.Errorf("Authorize(%v, %v) set a redirect on %v", sess, required, d.Verdict)
				}
			}
		}
	}
}

func TestRoleLandingPath(t *testing.T) {
	for _, role := range AllRoles {
		if role.LandingPath() == "" {
			t.Errorf("role %q has no landing path", role)
		}
	}
	if got := Role("owner").LandingPath(); got != "" {
		t.Errorf("unknown role landing = %q, want empty", got)
	}
}
