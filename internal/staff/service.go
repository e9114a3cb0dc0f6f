package staff

import "context"

type Repository interface {
	ListStaff(ctx context.Context, filter ListFilter) ([]Staff, error)
	GetStaff(ctx context.Context, staffID int64) (*Staff, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Staff, error) {
	return s.repo.ListStaff(ctx, filter)
}

func (s *Service) Get(ctx context.Context, staffID int64) (*Staff, error) {
	return s.repo.GetStaff(ctx, staffID)
}
