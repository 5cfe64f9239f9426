package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Role is the closed set of account roles
type Role string

const (
	RoleBrand      Role = "brand"
	RoleInfluencer Role = "influencer"
)

// ParseRole validates a role coming from outside the process
func ParseRole(s string) (Role, bool) {
	switch Role(strings.TrimSpace(s)) {
	case RoleBrand:
		return RoleBrand, true
	case RoleInfluencer:
		return RoleInfluencer, true
	default:
		return "", false
	}
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// User represents a user entity
type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Tag          null.String `json:"tag"`
	Location     null.String `json:"location"`
	Role         Role        `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// SignupInput represents input for creating a user
type SignupInput struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required,max=72"`
	Tag      string `json:"tag" binding:"max=50"`
	Location string `json:"location" binding:"max=100"`
	Role     string `json:"role" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UserChanges carries the user columns a profile update may overwrite.
// Fields that are not Valid are left untouched.
type UserChanges struct {
	Name     null.String
	Email    null.String
	Tag      null.String
	Location null.String
}

// Empty reports whether no field is present
func (c UserChanges) Empty() bool {
	return !c.Name.Valid && !c.Email.Valid && !c.Tag.Valid && !c.Location.Valid
}

// ApplyTo copies present fields onto u and reports whether anything changed
func (c UserChanges) ApplyTo(u *User) bool {
	changed := false
	if c.Name.Valid && u.Name != c.Name.String {
		u.Name = c.Name.String
		changed = true
	}
	if c.Email.Valid && u.Email != c.Email.String {
		u.Email = c.Email.String
		changed = true
	}
	if c.Tag.Valid && u.Tag != cleared(c.Tag) {
		u.Tag = cleared(c.Tag)
		changed = true
	}
	if c.Location.Valid && u.Location != cleared(c.Location) {
		u.Location = cleared(c.Location)
		changed = true
	}
	return changed
}

// UserSummary is the public projection of a user joined onto profile listings
type UserSummary struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Tag      null.String `json:"tag"`
	Location null.String `json:"location"`
	Role     Role        `json:"role"`
}
