package customer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("customer not found")

type Customer struct {
	ID         int64
	StoreID    int64
	FirstName  string
	LastName   string
	Email      string
	Active     bool
	Address    string
	District   string
	City       string
	Country    string
	Phone      string
	CreateDate time.Time
}

// Stats summarizes a customer's rental activity, attached to detail lookups.
type Stats struct {
	TotalRentals  int64
	ActiveRentals int64
	TotalSpent    decimal.Decimal
}

type Detail struct {
	Customer
	Stats Stats
}

// ListFilter narrows customer listings. Nil fields mean no filtering.
type ListFilter struct {
	Active  *bool
	StoreID *int64
	Limit   int
	Offset  int
}

// ListResult carries one page plus the unpaged total.
type ListResult struct {
	Customers []Customer
	Total     int64
}
