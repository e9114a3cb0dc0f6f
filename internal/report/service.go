package report

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	ListUnreturned(ctx context.Context) ([]UnreturnedRental, error)
	ListMostRented(ctx context.Context, limit int) ([]MostRentedFilm, error)
	ListStaffRevenue(ctx context.Context, dates DateRange) ([]StaffRevenue, error)
	GetStaffRevenue(ctx context.Context, staffID int64, dates DateRange) (*StaffRevenue, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

const (
	defaultMostRentedLimit = 10
	maxMostRentedLimit     = 100
)

// Unreturned lists every open rental and a late/on-time summary.
func (s *Service) Unreturned(ctx context.Context) ([]UnreturnedRental, UnreturnedSummary, error) {
	rentals, err := s.repo.ListUnreturned(ctx)
	if err != nil {
		return nil, UnreturnedSummary{}, err
	}

	summary := UnreturnedSummary{TotalUnreturned: len(rentals)}
	for _, r := range rentals {
		if r.Late {
			summary.LateReturns++
		} else {
			summary.OnTime++
		}
	}

	return rentals, summary, nil
}

func (s *Service) MostRented(ctx context.Context, limit int) ([]MostRentedFilm, error) {
	if limit <= 0 {
		limit = defaultMostRentedLimit
	}

	if limit > maxMostRentedLimit {
		limit = maxMostRentedLimit
	}

	return s.repo.ListMostRented(ctx, limit)
}

func (s *Service) StaffRevenue(ctx context.Context, staffID int64, dates DateRange) (*StaffRevenue, error) {
	if err := dates.Validate(); err != nil {
		return nil, err
	}

	return s.repo.GetStaffRevenue(ctx, staffID, dates)
}

// AllStaffRevenue lists every staff member's earnings plus the storewide
// grand total.
func (s *Service) AllStaffRevenue(ctx context.Context, dates DateRange) ([]StaffRevenue, decimal.Decimal, error) {
	if err := dates.Validate(); err != nil {
		return nil, decimal.Zero, err
	}

	rows, err := s.repo.ListStaffRevenue(ctx, dates)
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.TotalRevenue)
	}

	return rows, total, nil
}
