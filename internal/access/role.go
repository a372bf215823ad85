package access

import (
	"net/http"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var ErrUnknownRole = apperror.New(http.StatusForbidden, "unknown role")

// Role is the canonical role enumeration. The stored data may still carry the
// legacy "admin" tag, which ParseRole folds into RoleSuperAdmin so every code
// path resolves scope through one enumeration.
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleBranchAdmin Role = "branch_admin"
	RoleSuperAdmin  Role = "super_admin"

	// legacyAdmin predates the branch/super split and behaves as a full admin.
	legacyAdmin = "admin"
)

// ParseRole maps a stored role string onto the canonical enumeration.
func ParseRole(s string) (Role, error) {
	switch s {
	case string(RoleCustomer):
		return RoleCustomer, nil
	case string(RoleBranchAdmin):
		return RoleBranchAdmin, nil
	case string(RoleSuperAdmin), legacyAdmin:
		return RoleSuperAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

// IsAdmin reports whether the role carries any administrative scope.
func (r Role) IsAdmin() bool {
	return r == RoleBranchAdmin || r == RoleSuperAdmin
}
