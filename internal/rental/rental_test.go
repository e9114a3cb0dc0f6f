package rental_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jlopezga/dvdrental/internal/rental"
)

func TestParseStatusFilter(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    rental.StatusFilter
		wantErr bool
	}

	tests := []testCase{
		{name: "EmptyDefaultsToAll", input: "", want: rental.FilterAll},
		{name: "All", input: "all", want: rental.FilterAll},
		{name: "Active", input: "active", want: rental.FilterActive},
		{name: "Returned", input: "returned", want: rental.FilterReturned},
		{name: "Unknown", input: "overdue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rental.ParseStatusFilter(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlreadyReturnedError(t *testing.T) {
	err := &rental.AlreadyReturnedError{
		ReturnDate: time.Date(2024, 3, 12, 11, 0, 0, 0, time.UTC),
	}

	assert.Contains(t, err.Error(), "already returned")
	assert.Contains(t, err.Error(), "2024-03-12")
}
