package rental

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Settle computes the charge for a closed rental: one day per started
// 24-hour period, minimum one day, at the film's rental rate rounded to
// two decimal places.
func Settle(rentalDate, returnDate time.Time, rate decimal.Decimal) (days int64, amount decimal.Decimal) {
	days = int64(math.Ceil(returnDate.Sub(rentalDate).Hours() / 24))
	if days < 1 {
		days = 1
	}

	amount = rate.Mul(decimal.NewFromInt(days)).Round(2)

	return days, amount
}
