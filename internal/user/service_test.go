package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking-backend/internal/access"
)

type fakeRepo struct {
	byID    map[string]*User
	byEmail map[string]*User
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*User{}, byEmail: map[string]*User{}}
}

func (r *fakeRepo) Create(_ context.Context, u *User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrEmailTaken
	}
	r.nextID++
	u.ID = fmt.Sprintf("u%d", r.nextID)
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (r *fakeRepo) UpdateRole(_ context.Context, id, role string) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.Role = role
	return nil
}

// fakeHasher prefixes instead of hashing so compares are readable.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

type fakeAssignments struct {
	byUser map[string][]string
}

func (a *fakeAssignments) AssignedHotelIDs(_ context.Context, userID string) ([]string, error) {
	return a.byUser[userID], nil
}

func fixture() (*fakeRepo, *fakeAssignments, Service) {
	repo := newFakeRepo()
	assignments := &fakeAssignments{byUser: map[string][]string{}}
	return repo, assignments, NewService(repo, fakeHasher{}, assignments)
}

func register(t *testing.T, svc Service, email string) *User {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterRequest{
		Email: email, Name: "Test User", PhoneNumber: "+4470000" + email[:3], Password: "secret-pass",
	})
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	_, _, svc := fixture()

	u := register(t, svc, "new@example.com")
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "hashed:secret-pass", u.PasswordHash)

	t.Run("self-registration always yields a customer", func(t *testing.T) {
		assert.Equal(t, string(access.RoleCustomer), u.Role)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(context.Background(), RegisterRequest{
			Email: "new@example.com", Name: "Other", PhoneNumber: "+447000001", Password: "another-pass",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials yield the principal", func(t *testing.T) {
		_, _, svc := fixture()
		register(t, svc, "c@example.com")

		u, p, err := svc.Login(context.Background(), "c@example.com", "secret-pass")
		require.NoError(t, err)
		assert.Equal(t, u.ID, p.UserID)
		assert.Equal(t, access.RoleCustomer, p.Role)
		assert.Empty(t, p.AssignedHotelIDs)
	})

	t.Run("branch admin principal carries assignments", func(t *testing.T) {
		repo, assignments, svc := fixture()
		u := register(t, svc, "ba@example.com")
		require.NoError(t, repo.UpdateRole(context.Background(), u.ID, string(access.RoleBranchAdmin)))
		assignments.byUser[u.ID] = []string{"h1", "h2"}

		_, p, err := svc.Login(context.Background(), "ba@example.com", "secret-pass")
		require.NoError(t, err)
		assert.Equal(t, access.RoleBranchAdmin, p.Role)
		assert.Equal(t, []string{"h1", "h2"}, p.AssignedHotelIDs)
	})

	t.Run("legacy admin row logs in as super admin", func(t *testing.T) {
		repo, _, svc := fixture()
		u := register(t, svc, "old@example.com")
		require.NoError(t, repo.UpdateRole(context.Background(), u.ID, "admin"))

		_, p, err := svc.Login(context.Background(), "old@example.com", "secret-pass")
		require.NoError(t, err)
		assert.Equal(t, access.RoleSuperAdmin, p.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, svc := fixture()
		register(t, svc, "c@example.com")

		_, _, err := svc.Login(context.Background(), "c@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same error as a wrong password", func(t *testing.T) {
		_, _, svc := fixture()

		_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateRole(t *testing.T) {
	super := access.Principal{UserID: "root", Role: access.RoleSuperAdmin}

	t.Run("super admin promotes a customer", func(t *testing.T) {
		_, _, svc := fixture()
		u := register(t, svc, "c@example.com")

		got, err := svc.UpdateRole(context.Background(), super, u.ID, string(access.RoleBranchAdmin))
		require.NoError(t, err)
		assert.Equal(t, string(access.RoleBranchAdmin), got.Role)
	})

	t.Run("branch admin may not grant roles", func(t *testing.T) {
		_, _, svc := fixture()
		u := register(t, svc, "c@example.com")

		p := access.Principal{UserID: "a1", Role: access.RoleBranchAdmin, AssignedHotelIDs: []string{"h1"}}
		_, err := svc.UpdateRole(context.Background(), p, u.ID, string(access.RoleSuperAdmin))
		assert.ErrorIs(t, err, access.ErrAccessDenied)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, _, svc := fixture()
		u := register(t, svc, "c@example.com")

		_, err := svc.UpdateRole(context.Background(), super, u.ID, "manager")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestRoleOf(t *testing.T) {
	repo, _, svc := fixture()
	u := register(t, svc, "c@example.com")

	role, err := svc.RoleOf(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, access.RoleCustomer, role)

	require.NoError(t, repo.UpdateRole(context.Background(), u.ID, "admin"))
	role, err = svc.RoleOf(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, access.RoleSuperAdmin, role)

	_, err = svc.RoleOf(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
