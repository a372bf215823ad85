package access

import (
	"net/http"
	"slices"

	"github.com/Masterminds/squirrel"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrAccessDenied = apperror.New(http.StatusForbidden, "access denied")
	ErrNotYourOwn   = apperror.New(http.StatusForbidden, "you may only act on your own resources")
)

// Principal is the authenticated caller. AssignedHotelIDs is embedded in the
// access token at issuance so scope resolution never queries the store.
type Principal struct {
	UserID           string
	Role             Role
	AssignedHotelIDs []string
}

// CanAccessHotel reports whether the principal's administrative scope covers
// the given hotel. Customers have no administrative hotel scope.
func (p Principal) CanAccessHotel(hotelID string) bool {
	switch p.Role {
	case RoleSuperAdmin:
		return true
	case RoleBranchAdmin:
		return slices.Contains(p.AssignedHotelIDs, hotelID)
	default:
		return false
	}
}

// RequireHotelAccess returns ErrAccessDenied when the principal's scope does
// not cover hotelID. Hotel-scoped checks run before existence checks, so an
// out-of-scope caller sees 403 rather than learning whether the row exists.
func (p Principal) RequireHotelAccess(hotelID string) error {
	if !p.CanAccessHotel(hotelID) {
		return ErrAccessDenied
	}
	return nil
}

// HotelPredicate maps the principal onto a query predicate over the given
// hotel-id column. A nil predicate with restricted=false means unrestricted
// scope. A branch_admin with no assignments gets restricted=true and a nil
// predicate: list endpoints short-circuit to an empty page with a message.
func (p Principal) HotelPredicate(column string) (pred squirrel.Sqlizer, restricted bool) {
	switch p.Role {
	case RoleSuperAdmin:
		return nil, false
	case RoleBranchAdmin:
		if len(p.AssignedHotelIDs) == 0 {
			return nil, true
		}
		return squirrel.Eq{column: p.AssignedHotelIDs}, true
	default:
		// Customers never query by administrative hotel scope.
		return nil, true
	}
}

// EmptyScope reports whether the principal is a branch admin with no hotels
// assigned, in which case scoped lists have nothing to show.
func (p Principal) EmptyScope() bool {
	return p.Role == RoleBranchAdmin && len(p.AssignedHotelIDs) == 0
}

// RequireBookingAccess authorizes access to a booking identified by its owner
// and hotel. Owners always qualify; admins qualify through hotel scope.
// Booking-scoped resources are looked up first, so this yields 404 then 403.
func (p Principal) RequireBookingAccess(ownerUserID, hotelID string) error {
	if p.UserID == ownerUserID {
		return nil
	}
	if p.Role.IsAdmin() && p.CanAccessHotel(hotelID) {
		return nil
	}
	return ErrAccessDenied
}

// RequireSelf ensures a customer acts only on their own resources.
func (p Principal) RequireSelf(ownerUserID string) error {
	if p.UserID != ownerUserID {
		return ErrNotYourOwn
	}
	return nil
}
