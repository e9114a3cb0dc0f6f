package rental

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jlopezga/dvdrental/internal/rental"
)

type createdResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    createdData `json:"data"`
}

type createdData struct {
	RentalID     int64           `json:"rental_id"`
	RentalDate   time.Time       `json:"rental_date"`
	FilmTitle    string          `json:"film_title"`
	RentalRate   decimal.Decimal `json:"rental_rate"`
	InventoryID  int64           `json:"inventory_id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	StaffID      int64           `json:"staff_id"`
	StaffName    string          `json:"staff_name"`
}

func toCreatedResponse(c *rental.Created) createdResponse {
	return createdResponse{
		Success: true,
		Message: "rental created",
		Data: createdData{
			RentalID:     c.RentalID,
			RentalDate:   c.RentalDate,
			FilmTitle:    c.FilmTitle,
			RentalRate:   c.RentalRate,
			InventoryID:  c.InventoryID,
			CustomerID:   c.CustomerID,
			CustomerName: c.CustomerName,
			StaffID:      c.StaffID,
			StaffName:    c.StaffName,
		},
	}
}

type settlementResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    settlementData `json:"data"`
}

type settlementData struct {
	RentalID    int64           `json:"rental_id"`
	FilmTitle   string          `json:"film_title"`
	RentalDate  time.Time       `json:"rental_date"`
	ReturnDate  time.Time       `json:"return_date"`
	DaysRented  int64           `json:"days_rented"`
	RentalRate  decimal.Decimal `json:"rental_rate"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaymentID   int64           `json:"payment_id"`
}

func toSettlementResponse(s *rental.Settlement) settlementResponse {
	return settlementResponse{
		Success: true,
		Message: "return processed",
		Data: settlementData{
			RentalID:    s.RentalID,
			FilmTitle:   s.FilmTitle,
			RentalDate:  s.RentalDate,
			ReturnDate:  s.ReturnDate,
			DaysRented:  s.DaysRented,
			RentalRate:  s.RentalRate,
			TotalAmount: s.TotalAmount,
			PaymentID:   s.PaymentID,
		},
	}
}

type cancelledResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    cancelledData `json:"data"`
}

type cancelledData struct {
	RentalID  int64  `json:"rental_id"`
	FilmTitle string `json:"film_title"`
}

func toCancelledResponse(c *rental.Cancelled) cancelledResponse {
	return cancelledResponse{
		Success: true,
		Message: "rental cancelled",
		Data: cancelledData{
			RentalID:  c.RentalID,
			FilmTitle: c.FilmTitle,
		},
	}
}

type alreadyReturnedResponse struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	ReturnDate time.Time `json:"return_date"`
}

type customerRentalsResponse struct {
	Success      bool                 `json:"success"`
	Customer     customerInfo         `json:"customer"`
	TotalRentals int                  `json:"total_rentals"`
	Rentals      []customerRentalItem `json:"rentals"`
}

type customerInfo struct {
	CustomerID int64  `json:"customer_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
}

type customerRentalItem struct {
	RentalID   int64           `json:"rental_id"`
	RentalDate time.Time       `json:"rental_date"`
	ReturnDate *time.Time      `json:"return_date,omitempty"`
	FilmTitle  string          `json:"title"`
	RentalRate decimal.Decimal `json:"rental_rate"`
	Category   string          `json:"category,omitempty"`
	Status     string          `json:"status"`
	DaysRented int64           `json:"days_rented"`
}

func toCustomerRentalsResponse(c *rental.Customer, rentals []rental.CustomerRental) customerRentalsResponse {
	items := make([]customerRentalItem, len(rentals))
	for i, r := range rentals {
		items[i] = customerRentalItem{
			RentalID:   r.RentalID,
			RentalDate: r.RentalDate,
			ReturnDate: r.ReturnDate,
			FilmTitle:  r.FilmTitle,
			RentalRate: r.RentalRate,
			Category:   r.Category,
			Status:     r.Status,
			DaysRented: r.DaysRented,
		}
	}

	return customerRentalsResponse{
		Success: true,
		Customer: customerInfo{
			CustomerID: c.ID,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			Email:      c.Email,
		},
		TotalRentals: len(items),
		Rentals:      items,
	}
}
