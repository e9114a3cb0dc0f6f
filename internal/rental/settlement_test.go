package rental_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jlopezga/dvdrental/internal/rental"
)

func TestSettle(t *testing.T) {
	base := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	rate := decimal.RequireFromString("4.99")

	type testCase struct {
		name       string
		returned   time.Time
		rate       decimal.Decimal
		wantDays   int64
		wantAmount string
	}

	tests := []testCase{
		{
			name:       "PartialDayRoundsUp",
			returned:   base.Add(25 * time.Hour),
			rate:       rate,
			wantDays:   2,
			wantAmount: "9.98",
		},
		{
			name:       "SameDayChargesMinimumOneDay",
			returned:   base.Add(5 * time.Hour),
			rate:       rate,
			wantDays:   1,
			wantAmount: "4.99",
		},
		{
			name:       "InstantReturnChargesMinimumOneDay",
			returned:   base,
			rate:       rate,
			wantDays:   1,
			wantAmount: "4.99",
		},
		{
			name:       "ExactMultipleOfDay",
			returned:   base.Add(72 * time.Hour),
			rate:       rate,
			wantDays:   3,
			wantAmount: "14.97",
		},
		{
			name:       "JustOverTwoDays",
			returned:   base.Add(49 * time.Hour),
			rate:       rate,
			wantDays:   3,
			wantAmount: "14.97",
		},
		{
			name:       "WeekAtLowRate",
			returned:   base.Add(7 * 24 * time.Hour),
			rate:       decimal.RequireFromString("0.99"),
			wantDays:   7,
			wantAmount: "6.93",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, amount := rental.Settle(base, tt.returned, tt.rate)

			assert.Equal(t, tt.wantDays, days)
			assert.Equal(t, tt.wantAmount, amount.StringFixed(2))
		})
	}
}
