package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrFilmNotFound = errors.New("film not found")

// Film is a catalog title. One film can have many inventory copies.
type Film struct {
	ID             int64
	Title          string
	Description    string
	ReleaseYear    int
	Length         int
	Rating         string
	RentalRate     decimal.Decimal
	RentalDuration int
	Category       string
}
