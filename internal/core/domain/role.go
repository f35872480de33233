package domain

import "strings"

// RoleSet is the authorization decision for one request. It is recomputed from
// persisted state on every request and never cached or embedded in a token.
type RoleSet struct {
	IsAdmin    bool `json:"isAdmin"`
	IsEmployee bool `json:"isEmployee"`
}

// Identity is an authenticated principal plus its freshly derived roles.
type Identity struct {
	User *User
	RoleSet
}

// DeriveRole combines the three independent role signals:
//   - membership in the configured admin email allow-list (case-insensitive),
//   - the User's stored role marker,
//   - existence of an Employee record for the User.
//
// Admins are implicitly employees for access purposes.
func DeriveRole(u *User, employeeRecordExists bool, adminAllowList []string) RoleSet {
	var rs RoleSet

	email := strings.ToLower(strings.TrimSpace(u.Email))
	for _, allowed := range adminAllowList {
		if email != "" && email == strings.ToLower(strings.TrimSpace(allowed)) {
			rs.IsAdmin = true
			break
		}
	}
	if u.Role == RoleAdmin {
		rs.IsAdmin = true
	}

	rs.IsEmployee = employeeRecordExists || u.Role == RoleEmployee || rs.IsAdmin

	return rs
}
