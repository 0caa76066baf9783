package domain

// Principal is the identity produced by a successful credential check.
type Principal struct {
	UserID       string
	UserName     string
	Roles        string
	PasswordHash string `json:"-"` // only read by the authenticator
}

// RoleList returns the principal's roles as individual tokens.
func (p Principal) RoleList() []string {
	return ParseRoles(p.Roles)
}
