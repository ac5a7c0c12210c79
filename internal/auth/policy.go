package auth

import "jobify/internal/models"

// Requirement names what a route demands of the caller.
type Requirement int

const (
	AnyUser Requirement = iota
	AdminOnly
	NonAdmin
)

func (r Requirement) String() string {
	switch r {
	case AdminOnly:
		return "admin"
	case NonAdmin:
		return "non-admin"
	default:
		return "user"
	}
}

type Decision int

const (
	Allowed Decision = iota
	Unauthenticated
	Forbidden
)

// Authorize is the single place role rules live.
func Authorize(id *Identity, req Requirement) Decision {
	if id == nil || id.ID == 0 {
		return Unauthenticated
	}
	switch req {
	case AdminOnly:
		if id.Role != models.RoleAdmin {
			return Forbidden
		}
	case NonAdmin:
		if id.Role == models.RoleAdmin {
			return Forbidden
		}
	}
	return Allowed
}

// CanAccessOwned reports whether id may read a record owned by ownerID.
// Admins read everything, users only their own records.
func CanAccessOwned(id *Identity, ownerID uint) bool {
	if Authorize(id, AnyUser) != Allowed {
		return false
	}
	return id.Role == models.RoleAdmin || id.ID == ownerID
}
