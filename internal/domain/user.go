package domain

import "time"

// UserRole enumerates dashboard access levels.
type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleManager UserRole = "Manager"
	RoleUser    UserRole = "User"
)

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

// User is the domain model for dashboard-managed accounts.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// RecordID returns the unique identifier.
func (u User) RecordID() string { return u.ID }

// UserPatch is a partial update; nil fields leave the record untouched.
type UserPatch struct {
	Name      *string
	Email     *string
	Role      *UserRole
	Status    *UserStatus
	LastLogin *time.Time
}

// Apply merges the patch onto the user field by field.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.LastLogin != nil {
		u.LastLogin = p.LastLogin
	}
}
