package customer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jlopezga/dvdrental/internal/customer"
)

func TestService_List_ClampsPaging(t *testing.T) {
	type testCase struct {
		name       string
		filter     customer.ListFilter
		wantFilter customer.ListFilter
	}

	active := true

	tests := []testCase{
		{
			name:       "DefaultLimit",
			filter:     customer.ListFilter{},
			wantFilter: customer.ListFilter{Limit: 50},
		},
		{
			name:       "CappedLimit",
			filter:     customer.ListFilter{Limit: 1000, Offset: 10},
			wantFilter: customer.ListFilter{Limit: 200, Offset: 10},
		},
		{
			name:       "NegativeOffsetReset",
			filter:     customer.ListFilter{Limit: 20, Offset: -5},
			wantFilter: customer.ListFilter{Limit: 20},
		},
		{
			name:       "FiltersPassedThrough",
			filter:     customer.ListFilter{Active: &active, Limit: 20},
			wantFilter: customer.ListFilter{Active: &active, Limit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := customer.NewMockRepository(ctrl)
			svc := customer.NewService(repo)

			repo.EXPECT().ListCustomers(gomock.Any(), tt.wantFilter).
				Return(&customer.ListResult{Customers: []customer.Customer{{ID: 1}}, Total: 1}, nil)

			result, err := svc.List(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.Equal(t, int64(1), result.Total)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customer.NewMockRepository(ctrl)
	svc := customer.NewService(repo)

	repo.EXPECT().GetCustomer(gomock.Any(), int64(404)).Return(nil, customer.ErrNotFound)

	got, err := svc.Get(context.Background(), 404)

	assert.ErrorIs(t, err, customer.ErrNotFound)
	assert.Nil(t, got)
}
