package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jlopezga/dvdrental/internal/report"
)

func TestService_Unreturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := report.NewMockRepository(ctrl)
	svc := report.NewService(repo)

	repo.EXPECT().ListUnreturned(gomock.Any()).Return([]report.UnreturnedRental{
		{RentalID: 1, Late: true},
		{RentalID: 2, Late: false},
		{RentalID: 3, Late: true},
	}, nil)

	rentals, summary, err := svc.Unreturned(context.Background())

	require.NoError(t, err)
	assert.Len(t, rentals, 3)
	assert.Equal(t, 3, summary.TotalUnreturned)
	assert.Equal(t, 2, summary.LateReturns)
	assert.Equal(t, 1, summary.OnTime)
}

func TestService_Unreturned_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := report.NewMockRepository(ctrl)
	svc := report.NewService(repo)

	repo.EXPECT().ListUnreturned(gomock.Any()).Return(nil, errors.New("db error"))

	rentals, summary, err := svc.Unreturned(context.Background())

	assert.Error(t, err)
	assert.Nil(t, rentals)
	assert.Zero(t, summary)
}

func TestService_MostRented_Limits(t *testing.T) {
	type testCase struct {
		name      string
		limit     int
		wantLimit int
	}

	tests := []testCase{
		{name: "DefaultWhenZero", limit: 0, wantLimit: 10},
		{name: "DefaultWhenNegative", limit: -5, wantLimit: 10},
		{name: "PassedThrough", limit: 25, wantLimit: 25},
		{name: "Capped", limit: 500, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := report.NewMockRepository(ctrl)
			svc := report.NewService(repo)

			repo.EXPECT().ListMostRented(gomock.Any(), tt.wantLimit).
				Return([]report.MostRentedFilm{{FilmID: 1, Title: "Gladiator"}}, nil)

			films, err := svc.MostRented(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Len(t, films, 1)
		})
	}
}

func TestService_AllStaffRevenue(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("SumsGrandTotal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := report.NewMockRepository(ctrl)
		svc := report.NewService(repo)

		dates := report.DateRange{Start: &start, End: &end}
		repo.EXPECT().ListStaffRevenue(gomock.Any(), dates).Return([]report.StaffRevenue{
			{StaffID: 1, StaffName: "Mike Hillyer", TotalRevenue: decimal.RequireFromString("120.50")},
			{StaffID: 2, StaffName: "Jon Stephens", TotalRevenue: decimal.RequireFromString("79.49")},
		}, nil)

		revenues, total, err := svc.AllStaffRevenue(context.Background(), dates)

		require.NoError(t, err)
		assert.Len(t, revenues, 2)
		assert.Equal(t, "199.99", total.StringFixed(2))
	})

	t.Run("EmptyStaffList", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := report.NewMockRepository(ctrl)
		svc := report.NewService(repo)

		repo.EXPECT().ListStaffRevenue(gomock.Any(), report.DateRange{}).Return(nil, nil)

		revenues, total, err := svc.AllStaffRevenue(context.Background(), report.DateRange{})

		require.NoError(t, err)
		assert.Empty(t, revenues)
		assert.True(t, total.IsZero())
	})

	t.Run("InvalidRange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Repo is never reached with an inverted range.
		repo := report.NewMockRepository(ctrl)
		svc := report.NewService(repo)

		revenues, _, err := svc.AllStaffRevenue(context.Background(), report.DateRange{Start: &end, End: &start})

		assert.ErrorIs(t, err, report.ErrInvalidRange)
		assert.Nil(t, revenues)
	})
}

func TestService_StaffRevenue(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := report.NewMockRepository(ctrl)
		svc := report.NewService(repo)

		dates := report.DateRange{Start: &start, End: &end}
		repo.EXPECT().GetStaffRevenue(gomock.Any(), int64(2), dates).
			Return(&report.StaffRevenue{StaffID: 2, StaffName: "Jon Stephens"}, nil)

		got, err := svc.StaffRevenue(context.Background(), 2, dates)

		require.NoError(t, err)
		assert.Equal(t, int64(2), got.StaffID)
	})

	t.Run("InvalidRange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Repo is never reached with an inverted range.
		repo := report.NewMockRepository(ctrl)
		svc := report.NewService(repo)

		got, err := svc.StaffRevenue(context.Background(), 2, report.DateRange{Start: &end, End: &start})

		assert.ErrorIs(t, err, report.ErrInvalidRange)
		assert.Nil(t, got)
	})

	t.Run("StaffNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := report.NewMockRepository(ctrl)
		svc := report.NewService(repo)

		repo.EXPECT().GetStaffRevenue(gomock.Any(), int64(404), report.DateRange{}).
			Return(nil, report.ErrStaffNotFound)

		got, err := svc.StaffRevenue(context.Background(), 404, report.DateRange{})

		assert.ErrorIs(t, err, report.ErrStaffNotFound)
		assert.Nil(t, got)
	})
}
