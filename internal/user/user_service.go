package user

import (
	"context"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/domain"
	usererrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/user/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Invite(ctx context.Context, companyID string, req InviteUserRequest) (UserResponse, error)
	GetAll(ctx context.Context, companyID string) ([]UserResponse, error)
	GetByID(ctx context.Context, companyID, id string) (UserResponse, error)
	SetRole(ctx context.Context, companyID, id string, req SetRoleRequest) (UserResponse, error)
	Deactivate(ctx context.Context, companyID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validRole(role string) bool {
	switch role {
	case domain.RoleAdmin, domain.RoleDispatcher, domain.RoleAccountant, domain.RoleDriver:
		return true
	}
	return false
}

func (s *service) Invite(ctx context.Context, companyID string, req InviteUserRequest) (UserResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}
	if !validRole(req.Role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      req.Role,
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return UserResponse{}, usererrors.ErrEmailTaken
	}

	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]UserResponse, error) {
	users, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (UserResponse, error) {
	u, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) SetRole(ctx context.Context, companyID, id string, req SetRoleRequest) (UserResponse, error) {
	if !validRole(req.Role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return UserResponse{}, err
	}

	u.Role = req.Role
	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) Deactivate(ctx context.Context, companyID, id string) error {
	u, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return err
	}

	u.IsActive = false
	return s.repo.Update(ctx, u)
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		CompanyID: u.CompanyID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
	}
}
