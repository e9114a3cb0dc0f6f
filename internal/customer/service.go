package customer

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	ListCustomers(ctx context.Context, filter ListFilter) (*ListResult, error)
	GetCustomer(ctx context.Context, customerID int64) (*Detail, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func (s *Service) List(ctx context.Context, filter ListFilter) (*ListResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}

	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.ListCustomers(ctx, filter)
}

func (s *Service) Get(ctx context.Context, customerID int64) (*Detail, error) {
	return s.repo.GetCustomer(ctx, customerID)
}
