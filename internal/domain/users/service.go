package users

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, u *User) (*User, error) {
	if u.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if u.Role == "" {
		u.Role = defaultRole
	}
	if !validRoles[u.Role] {
		return nil, fmt.Errorf("invalid role: %s", u.Role)
	}
	if u.Status == "" {
		u.Status = defaultStatus
	}
	if !validStatuses[u.Status] {
		return nil, fmt.Errorf("invalid user status: %s", u.Status)
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) Update(ctx context.Context, id string, u *User) (*User, error) {
	if u.Role != "" && !validRoles[u.Role] {
		return nil, fmt.Errorf("invalid role: %s", u.Role)
	}
	if u.Status != "" && !validStatuses[u.Status] {
		return nil, fmt.Errorf("invalid user status: %s", u.Status)
	}
	return s.repo.Update(ctx, id, u)
}

// Suspend blocks an account from signing in without removing it.
func (s *Service) Suspend(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Status = "suspended"
	return s.repo.Update(ctx, id, u)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
