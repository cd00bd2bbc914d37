package session

// Roles form a closed set assigned by the backend at registration;
// the client never infers or defaults one.
const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

var (
	AllRoles = []Role{RoleStudent, RoleInstructor, RoleAdmin}

	// landing page per role, mirrored by the web front-end's dashboards
	roleLandings = map[Role]string{
		RoleStudent:    "/dashboard/student",
		RoleInstructor: "/dashboard/instructor",
		RoleAdmin:      "/dashboard/admin",
	}
)

type Role string

func (r Role) Valid() bool {
	_, ok := roleLandings[r]
	return ok
}

// LandingPath returns the role's default dashboard path, or "" for a role
// outside the closed set.
func (r Role) LandingPath() string {
	return roleLandings[r]
}

// User is the session subject as served by GET /api/users/me/.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

func (u User) IsZero() bool { return u == User{} }

type Status int

const (
	Unauthenticated Status = iota
	Authenticating
	Authenticated
)

func (s Status) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Session is an immutable snapshot of the auth state. Token and User are set
// and cleared together: a session is Authenticated exactly when it carries
// both a token and a user.
type Session struct {
	Token  string
	User   User
	Status Status
}

func (s Session) Authenticated() bool { return s.Status == Authenticated }
