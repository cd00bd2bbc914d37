package session

import (
	"github.com/go-playground/validator/v10"

	"github.com/hausasoft/hausasoft-go/core"
)

var (
	regRoleTag  = "regrole"
	regRoleText = "invalid role selected"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(regRoleTag, regRoleValidation)
	core.RegisterCustomTranslation(regRoleTag, regRoleText)
}

// Credentials is the login input. The password floor mirrors the backend's
// policy so obviously bad input never leaves the client.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (c *Credentials) Validate() error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return core.Validate.Struct(c)
}

// NewAccount is the registration input. The confirmPassword JSON key is what
// the backend's register endpoint reads.
type NewAccount struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Role            Role   `json:"role" validate:"required,regrole"`
}

func (na *NewAccount) Validate() error {
	na.Name = core.CleanString(na.Name)
	na.Email = core.CleanString(na.Email, true /* lower */)
	return core.Validate.Struct(na)
}

// regRoleValidation checks that the requested role is one a user may
// self-select at registration. Admins are provisioned by the backend, never
// self-escalated from the client.
func regRoleValidation(fl validator.FieldLevel) bool {
	role := Role(fl.Field().String())
	return role.Valid() && role != RoleAdmin
}
