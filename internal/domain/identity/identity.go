// Package identity models the caller of a use case. Values are built by the
// transport layer from identity-provider tokens and passed explicitly to
// every operation that needs them.
package identity

import "strings"

// AuthContext identifies the caller. The zero value is an anonymous caller.
type AuthContext struct {
	UserID string
	Email  string
}

// Anonymous returns an AuthContext with no identity.
func Anonymous() AuthContext { return AuthContext{} }

// IsAuthenticated reports whether the caller carries a user id.
func (a AuthContext) IsAuthenticated() bool {
	return strings.TrimSpace(a.UserID) != ""
}

// AdminPolicy grants the admin role to exactly one email address.
type AdminPolicy struct {
	adminEmail string
}

// NewAdminPolicy creates an AdminPolicy for the given email.
func NewAdminPolicy(adminEmail string) AdminPolicy {
	return AdminPolicy{adminEmail: adminEmail}
}

// AdminEmail returns the configured admin address.
func (p AdminPolicy) AdminEmail() string { return p.adminEmail }

// IsAdmin reports whether the caller is authenticated and its email equals
// the configured admin email exactly.
func (p AdminPolicy) IsAdmin(a AuthContext) bool {
	return p.adminEmail != "" && a.IsAuthenticated() && a.Email == p.adminEmail
}
