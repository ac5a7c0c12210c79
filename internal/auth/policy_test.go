package auth

import (
	"testing"

	"jobify/internal/models"
)

func TestAuthorize(t *testing.T) {
	admin := &Identity{ID: 1, Role: models.RoleAdmin}
	user := &Identity{ID: 2, Role: models.RoleUser}

	tests := []struct {
		name string
		id   *Identity
		req  Requirement
		want Decision
	}{
		{"anonymous any", nil, AnyUser, Unauthenticated},
		{"anonymous admin", nil, AdminOnly, Unauthenticated},
		{"zero id", &Identity{Role: models.RoleAdmin}, AnyUser, Unauthenticated},
		{"user any", user, AnyUser, Allowed},
		{"admin any", admin, AnyUser, Allowed},
		{"user admin-only", user, AdminOnly, Forbidden},
		{"admin admin-only", admin, AdminOnly, Allowed},
		{"user non-admin", user, NonAdmin, Allowed},
		{"admin non-admin", admin, NonAdmin, Forbidden},
	}
	for _, tt := range tests {
		if got := Authorize(tt.id, tt.req); got != tt.want {
			t.Errorf("%s: Authorize() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCanAccessOwned(t *testing.T) {
	admin := &Identity{ID: 1, Role: models.RoleAdmin}
	bob := &Identity{ID: 2, Role: models.RoleUser}

	tests := []struct {
		name  string
		id    *Identity
		owner uint
		want  bool
	}{
		{"anonymous", nil, 2, false},
		{"owner", bob, 2, true},
		{"other user", bob, 3, false},
		{"admin", admin, 3, true},
	}
	for _, tt := range tests {
		if got := CanAccessOwned(tt.id, tt.owner); got != tt.want {
			t.Errorf("%s: CanAccessOwned() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
