package auth

import (
	"context"
	"database/sql"
	"testing"

	autherrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/auth/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/company"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/domain"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAuthRepo struct {
	createFn     func(ctx context.Context, user *User) error
	getByEmailFn func(ctx context.Context, email string) (*User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*User, error)
	gotTx        bool
}

func (f *fakeAuthRepo) WithTx(tx *sql.Tx) Repository {
	f.gotTx = tx != nil
	return f
}
func (f *fakeAuthRepo) Create(ctx context.Context, user *User) error { return f.createFn(ctx, user) }
func (f *fakeAuthRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return f.getByEmailFn(ctx, email)
}
func (f *fakeAuthRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}

type fakeCompanyRepo struct {
	created []*company.Company
	gotTx   bool
}

func (f *fakeCompanyRepo) WithTx(tx *sql.Tx) company.Repository {
	f.gotTx = tx != nil
	return f
}
func (f *fakeCompanyRepo) Create(ctx context.Context, comp *company.Company) error {
	f.created = append(f.created, comp)
	return nil
}
func (f *fakeCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) GetByEmail(ctx context.Context, email string) (*company.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) Update(ctx context.Context, comp *company.Company) error { return nil }

type fakeRBAC struct {
	seeded []string
	loaded []string
}

func (f *fakeRBAC) LoadCompanyPolicy(companyID string) error {
	f.loaded = append(f.loaded, companyID)
	return nil
}
func (f *fakeRBAC) Enforce(req rbac.EnforceRequest) (bool, error) { return true, nil }
func (f *fakeRBAC) ListRoles(companyID string) ([]domain.RoleResponse, error) {
	return nil, nil
}
func (f *fakeRBAC) SeedCompanyDefaults(companyID string) error {
	f.seeded = append(f.seeded, companyID)
	return nil
}

func signupReq() SignupRequest {
	return SignupRequest{
		CompanyName: "Jet Freight LLC",
		DOTNumber:   "1234567",
		Name:        "Dana Ops",
		Email:       "dana@jetfreight.test",
		Password:    "s3cret-pass",
	}
}

func TestService_Signup_CommitsCompanyAndAdminTogether(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	var createdUser *User
	authRepo := &fakeAuthRepo{
		createFn: func(ctx context.Context, user *User) error {
			createdUser = user
			return nil
		},
	}
	companyRepo := &fakeCompanyRepo{}
	rbacSvc := &fakeRBAC{}

	svc := NewService(db, authRepo, companyRepo, rbacSvc)

	resp, err := svc.Signup(context.Background(), signupReq())
	assert.NoError(t, err)

	assert.True(t, companyRepo.gotTx)
	assert.True(t, authRepo.gotTx)
	assert.Len(t, companyRepo.created, 1)
	assert.Equal(t, companyRepo.created[0].ID, createdUser.CompanyID)
	assert.Equal(t, domain.RoleAdmin, createdUser.Role)
	assert.Equal(t, resp.CompanyID, companyRepo.created[0].ID.String())
	assert.Equal(t, []string{resp.CompanyID}, rbacSvc.seeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Signup_RollsBackCompanyOnDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	authRepo := &fakeAuthRepo{
		createFn: func(ctx context.Context, user *User) error {
			return assert.AnError
		},
	}
	companyRepo := &fakeCompanyRepo{}
	rbacSvc := &fakeRBAC{}

	svc := NewService(db, authRepo, companyRepo, rbacSvc)

	_, err = svc.Signup(context.Background(), signupReq())
	assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)

	// The company insert ran inside the transaction that rolled back, so
	// no orphan tenant row survives.
	assert.True(t, companyRepo.gotTx)
	assert.Empty(t, rbacSvc.seeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}
