package hotel

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking-backend/internal/access"
)

type fakeRepo struct {
	hotels      map[string]*Hotel
	assignments map[string][]string // hotelID -> userIDs
	nextID      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{hotels: map[string]*Hotel{}, assignments: map[string][]string{}}
}

func (r *fakeRepo) Create(_ context.Context, h *Hotel) error {
	r.nextID++
	h.ID = fmt.Sprintf("h%d", r.nextID)
	r.hotels[h.ID] = h
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Hotel, error) {
	h, ok := r.hotels[id]
	if !ok {
		return nil, ErrNotFound
	}
	return h, nil
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Hotel, int, error) {
	out := make([]*Hotel, 0, len(r.hotels))
	for _, h := range r.hotels {
		out = append(out, h)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, h *Hotel) error {
	if _, ok := r.hotels[h.ID]; !ok {
		return ErrNotFound
	}
	r.hotels[h.ID] = h
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.hotels[id]; !ok {
		return ErrNotFound
	}
	delete(r.hotels, id)
	return nil
}

func (r *fakeRepo) AssignAdmin(_ context.Context, hotelID, userID string) error {
	for _, existing := range r.assignments[hotelID] {
		if existing == userID {
			return ErrAlreadyAssigned
		}
	}
	r.assignments[hotelID] = append(r.assignments[hotelID], userID)
	return nil
}

func (r *fakeRepo) UnassignAdmin(_ context.Context, hotelID, userID string) error {
	ids := r.assignments[hotelID]
	for i, existing := range ids {
		if existing == userID {
			r.assignments[hotelID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return ErrAssignmentNotFound
}

func (r *fakeRepo) ListAdmins(_ context.Context, hotelID string) ([]AdminRef, error) {
	refs := make([]AdminRef, 0, len(r.assignments[hotelID]))
	for _, id := range r.assignments[hotelID] {
		refs = append(refs, AdminRef{UserID: id})
	}
	return refs, nil
}

func (r *fakeRepo) AssignedHotelIDs(_ context.Context, userID string) ([]string, error) {
	var out []string
	for hotelID, userIDs := range r.assignments {
		for _, id := range userIDs {
			if id == userID {
				out = append(out, hotelID)
			}
		}
	}
	return out, nil
}

type fakeDirectory struct {
	roles map[string]access.Role
}

func (d *fakeDirectory) RoleOf(_ context.Context, userID string) (access.Role, error) {
	role, ok := d.roles[userID]
	if !ok {
		return "", access.ErrUnknownRole
	}
	return role, nil
}

func fixture() (*fakeRepo, *fakeDirectory, Service) {
	repo := newFakeRepo()
	dir := &fakeDirectory{roles: map[string]access.Role{}}
	return repo, dir, NewService(repo, dir)
}

var (
	super    = access.Principal{UserID: "root", Role: access.RoleSuperAdmin}
	customer = access.Principal{UserID: "c1", Role: access.RoleCustomer}
)

func seedHotel(t *testing.T, svc Service) *Hotel {
	t.Helper()
	stars := 4
	h, err := svc.Create(context.Background(), super, CreateRequest{
		Name: "Harbour View", Address: "1 Quay St", City: "Auckland", Country: "NZ",
		StarRating: &stars, Amenities: []string{"wifi", "pool"},
	})
	require.NoError(t, err)
	return h
}

func TestHotelCreate(t *testing.T) {
	t.Run("super admin creates", func(t *testing.T) {
		_, _, svc := fixture()
		h := seedHotel(t, svc)
		assert.NotEmpty(t, h.ID)
		assert.Equal(t, []string{"wifi", "pool"}, h.Amenities)
	})

	t.Run("nil amenities stored as empty list", func(t *testing.T) {
		_, _, svc := fixture()
		h, err := svc.Create(context.Background(), super, CreateRequest{Name: "Plain", City: "X", Country: "Y"})
		require.NoError(t, err)
		assert.NotNil(t, h.Amenities)
		assert.Empty(t, h.Amenities)
	})

	t.Run("branch admin may not create", func(t *testing.T) {
		_, _, svc := fixture()
		p := access.Principal{UserID: "a1", Role: access.RoleBranchAdmin, AssignedHotelIDs: []string{"h1"}}
		_, err := svc.Create(context.Background(), p, CreateRequest{Name: "Rogue"})
		assert.ErrorIs(t, err, access.ErrAccessDenied)
	})

	t.Run("star rating out of range", func(t *testing.T) {
		_, _, svc := fixture()
		stars := 6
		_, err := svc.Create(context.Background(), super, CreateRequest{Name: "X", StarRating: &stars})
		assert.ErrorIs(t, err, ErrInvalidStarRating)
	})
}

func TestHotelUpdate(t *testing.T) {
	t.Run("scoped branch admin updates", func(t *testing.T) {
		_, _, svc := fixture()
		h := seedHotel(t, svc)
		name := "Harbour View Deluxe"

		p := access.Principal{UserID: "a1", Role: access.RoleBranchAdmin, AssignedHotelIDs: []string{h.ID}}
		got, err := svc.Update(context.Background(), p, h.ID, UpdateRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
	})

	t.Run("out-of-scope admin sees denied before existence", func(t *testing.T) {
		_, _, svc := fixture()
		seedHotel(t, svc)

		p := access.Principal{UserID: "a1", Role: access.RoleBranchAdmin, AssignedHotelIDs: []string{"other"}}
		name := "X"
		_, err := svc.Update(context.Background(), p, "h-missing", UpdateRequest{Name: &name})
		// Denied, not not-found: scope checks come first for hotel-scoped ops.
		assert.ErrorIs(t, err, access.ErrAccessDenied)
	})

	t.Run("customer denied", func(t *testing.T) {
		_, _, svc := fixture()
		h := seedHotel(t, svc)
		name := "X"
		_, err := svc.Update(context.Background(), customer, h.ID, UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, access.ErrAccessDenied)
	})
}

func TestAssignAdmin(t *testing.T) {
	t.Run("assigns a branch admin", func(t *testing.T) {
		repo, dir, svc := fixture()
		h := seedHotel(t, svc)
		dir.roles["ba1"] = access.RoleBranchAdmin

		require.NoError(t, svc.AssignAdmin(context.Background(), super, h.ID, "ba1"))

		ids, err := repo.AssignedHotelIDs(context.Background(), "ba1")
		require.NoError(t, err)
		assert.Equal(t, []string{h.ID}, ids)
	})

	t.Run("target must hold the branch admin role", func(t *testing.T) {
		_, dir, svc := fixture()
		h := seedHotel(t, svc)
		dir.roles["c1"] = access.RoleCustomer

		err := svc.AssignAdmin(context.Background(), super, h.ID, "c1")
		assert.ErrorIs(t, err, ErrNotBranchAdmin)
	})

	t.Run("double assignment rejected", func(t *testing.T) {
		_, dir, svc := fixture()
		h := seedHotel(t, svc)
		dir.roles["ba1"] = access.RoleBranchAdmin

		require.NoError(t, svc.AssignAdmin(context.Background(), super, h.ID, "ba1"))
		err := svc.AssignAdmin(context.Background(), super, h.ID, "ba1")
		assert.ErrorIs(t, err, ErrAlreadyAssigned)
	})

	t.Run("only super admins assign", func(t *testing.T) {
		_, dir, svc := fixture()
		h := seedHotel(t, svc)
		dir.roles["ba1"] = access.RoleBranchAdmin

		p := access.Principal{UserID: "a1", Role: access.RoleBranchAdmin, AssignedHotelIDs: []string{h.ID}}
		err := svc.AssignAdmin(context.Background(), p, h.ID, "ba1")
		assert.ErrorIs(t, err, access.ErrAccessDenied)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		_, dir, svc := fixture()
		dir.roles["ba1"] = access.RoleBranchAdmin

		err := svc.AssignAdmin(context.Background(), super, "h-missing", "ba1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUnassignAdmin(t *testing.T) {
	repo, dir, svc := fixture()
	h := seedHotel(t, svc)
	dir.roles["ba1"] = access.RoleBranchAdmin
	require.NoError(t, svc.AssignAdmin(context.Background(), super, h.ID, "ba1"))

	require.NoError(t, svc.UnassignAdmin(context.Background(), super, h.ID, "ba1"))
	ids, err := repo.AssignedHotelIDs(context.Background(), "ba1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.ErrorIs(t, svc.UnassignAdmin(context.Background(), super, h.ID, "ba1"), ErrAssignmentNotFound)
}

func TestHotelDelete(t *testing.T) {
	_, _, svc := fixture()
	h := seedHotel(t, svc)

	assert.ErrorIs(t, svc.Delete(context.Background(), customer, h.ID), access.ErrAccessDenied)
	require.NoError(t, svc.Delete(context.Background(), super, h.ID))
	_, err := svc.GetByID(context.Background(), h.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
