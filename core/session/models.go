package session

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sujalpowar2903-sys/studenthub123/core"
)

type Role string

// Roles
const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

var (
	AllRoles = []Role{RoleStudent, RoleFaculty, RoleAdmin}

	landingPaths = map[Role]string{
		RoleStudent: core.RouteDashboard,
		RoleFaculty: core.RouteFaculty,
		RoleAdmin:   core.RouteAdmin,
	}

	roleLabels = map[Role]string{
		RoleStudent: "Student",
		RoleFaculty: "Faculty",
		RoleAdmin:   "Admin",
	}
)

func (r Role) IsValid() bool {
	_, ok := landingPaths[r]
	return ok
}

func (r Role) Label() string { return roleLabels[r] }

// LandingPath is the route a Role lands on right after login.
func (r Role) LandingPath() string { return landingPaths[r] }

// RoleTab describes one tab of the login screen.
type RoleTab struct {
	Value  Role   `json:"value"`
	Label  string `json:"label"`
	SignIn string `json:"sign_in"`
}

// Roles returns the login tabs in display order.
func Roles() []RoleTab {
	tabs := make([]RoleTab, 0, len(AllRoles))
	for _, r := range AllRoles {
		tabs = append(tabs, RoleTab{Value: r, Label: r.Label(), SignIn: "Sign In as " + r.Label()})
	}
	return tabs
}

// Session is the role marker recorded at login. It lives until logout.
type Session struct {
	ID        string    `json:"id" db:"id"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
}

// LoginRequest holds what the login form sends.
// Email and Password are accepted but never checked.
type LoginRequest struct {
	Role     Role   `json:"role" validate:"required,role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Role = Role(core.CleanString(string(lr.Role), true /* lower */))
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return validate.Struct(lr)
}

type QueryFilter struct {
	Role Role
}
