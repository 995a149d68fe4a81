package models

// Role is the internal role vocabulary stored in the users table.
// The API boundary speaks a public vocabulary ("user", "owner", "admin")
// that maps onto these values via RoleFromPublic / PublicName.
type Role string

const (
	RoleUser       Role = "user"
	RoleStoreOwner Role = "store_owner"
	RoleAdmin      Role = "admin"
)

// PublicRoles is the closed set accepted at signup and admin user creation.
// Anything else is rejected at ingress before RoleFromPublic is applied.
var PublicRoles = map[string]bool{
	"user":        true,
	"owner":       true,
	"admin":       true,
	"store_owner": true,
}

// RoleFromPublic maps a public role name to its internal value. The function
// is total: unknown inputs map to RoleUser. Callers that accept role strings
// from the outside must validate against PublicRoles first, so the default
// only ever applies to values already drawn from the closed set.
func RoleFromPublic(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "owner", "store_owner":
		return RoleStoreOwner
	default:
		return RoleUser
	}
}

// PublicName maps an internal role to the name exposed by the API.
func (r Role) PublicName() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleStoreOwner:
		return "owner"
	default:
		return "user"
	}
}

// Valid reports whether r is one of the three internal roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleStoreOwner || r == RoleAdmin
}
