package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full administrative access
	RoleHR       Role = "hr"       // Employee record management
	RoleManager  Role = "manager"  // Read access to team payroll data
	RoleFinance  Role = "finance"  // Payroll processing
	RoleEmployee Role = "employee" // Regular staff
)

// Roles lists every role the system recognizes.
var Roles = []Role{RoleAdmin, RoleHR, RoleManager, RoleFinance, RoleEmployee}

// IsValid reports whether r is one of the recognized roles.
func (r Role) IsValid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User is an authenticated identity. PasswordHash stays inside the
// credential store boundary; it is never serialized in responses.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
