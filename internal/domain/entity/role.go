// Package entity contains the core business objects of the project.
package entity

// Role is the discriminant of the User tagged variant. Every account has exactly one.
type Role string

const (
	RoleClient Role = "client"
	RoleLawyer Role = "lawyer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleLawyer
}

// LoginIDField names the credential a role signs in with: clients use their
// username, lawyers their bar council registration id.
func (r Role) LoginIDField() string {
	if r == RoleLawyer {
		return "barCouncilId"
	}

	return "username"
}

// Claims encodes the role for an access token's roles claim.
func (r Role) Claims() []string {
	return []string{string(r)}
}

// RoleFromClaims returns the first known role in a token's roles claim.
func RoleFromClaims(claims []string) (Role, bool) {
	for _, c := range claims {
		if role := Role(c); role.IsValid() {
			return role, true
		}
	}

	return "", false
}
