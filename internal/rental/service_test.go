package rental_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jlopezga/dvdrental/internal/rental"
)

var (
	rentalDate = time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	returnDate = time.Date(2024, 3, 12, 11, 0, 0, 0, time.UTC)
)

func copyOfGladiator() *rental.InventoryItem {
	return &rental.InventoryItem{
		ID:             77,
		FilmID:         12,
		FilmTitle:      "Gladiator",
		RentalRate:     decimal.RequireFromString("4.99"),
		RentalDuration: 5,
	}
}

func TestService_Create_RequiresSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Begin expected: validation fails before any transaction opens.
	ledger := rental.NewMockLedger(ctrl)
	svc := rental.NewService(ledger)

	got, err := svc.Create(context.Background(), rental.CreateParams{
		CustomerID: 1,
		StaffID:    1,
	})

	assert.ErrorIs(t, err, rental.ErrInvalidRequest)
	assert.Nil(t, got)
}

func TestService_Create_WithInventory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := rental.NewMockLedger(ctrl)
	tx := rental.NewMockLedgerTx(ctrl)
	svc := rental.NewService(ledger)

	ledger.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockInventory(gomock.Any(), int64(77)).Return(copyOfGladiator(), nil)
	tx.EXPECT().HasActiveRental(gomock.Any(), int64(77)).Return(false, nil)
	tx.EXPECT().CustomerName(gomock.Any(), int64(3)).Return("Mary Smith", nil)
	tx.EXPECT().StaffName(gomock.Any(), int64(2)).Return("Jon Stephens", nil)
	tx.EXPECT().InsertRental(gomock.Any(), int64(77), int64(3), int64(2)).
		Return(&rental.Detail{ID: 501, RentalDate: rentalDate}, nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.Create(context.Background(), rental.CreateParams{
		CustomerID:  3,
		StaffID:     2,
		InventoryID: 77,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(501), got.RentalID)
	assert.Equal(t, "Gladiator", got.FilmTitle)
	assert.Equal(t, int64(77), got.InventoryID)
	assert.Equal(t, "Mary Smith", got.CustomerName)
	assert.Equal(t, "Jon Stephens", got.StaffName)
	assert.Equal(t, rentalDate, got.RentalDate)
}

func TestService_Create_ResolvesFilmToCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := rental.NewMockLedger(ctrl)
	tx := rental.NewMockLedgerTx(ctrl)
	svc := rental.NewService(ledger)

	ledger.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockAvailableCopy(gomock.Any(), int64(12)).Return(int64(77), nil)
	tx.EXPECT().LockInventory(gomock.Any(), int64(77)).Return(copyOfGladiator(), nil)
	tx.EXPECT().HasActiveRental(gomock.Any(), int64(77)).Return(false, nil)
	tx.EXPECT().CustomerName(gomock.Any(), int64(3)).Return("Mary Smith", nil)
	tx.EXPECT().StaffName(gomock.Any(), int64(2)).Return("Jon Stephens", nil)
	tx.EXPECT().InsertRental(gomock.Any(), int64(77), int64(3), int64(2)).
		Return(&rental.Detail{ID: 501, RentalDate: rentalDate}, nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.Create(context.Background(), rental.CreateParams{
		CustomerID: 3,
		StaffID:    2,
		FilmID:     12,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), got.InventoryID)
}

func TestService_Create_InventoryOverridesFilm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := rental.NewMockLedger(ctrl)
	tx := rental.NewMockLedgerTx(ctrl)
	svc := rental.NewService(ledger)

	// LockAvailableCopy must not be called when a copy is named directly.
	ledger.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockInventory(gomock.Any(), int64(77)).Return(copyOfGladiator(), nil)
	tx.EXPECT().HasActiveRental(gomock.Any(), int64(77)).Return(false, nil)
	tx.EXPECT().CustomerName(gomock.Any(), int64(3)).Return("Mary Smith", nil)
	tx.EXPECT().StaffName(gomock.Any(), int64(2)).Return("Jon Stephens", nil)
	tx.EXPECT().InsertRental(gomock.Any(), int64(77), int64(3), int64(2)).
		Return(&rental.Detail{ID: 501, RentalDate: rentalDate}, nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.Create(context.Background(), rental.CreateParams{
		CustomerID:  3,
		StaffID:     2,
		FilmID:      999,
		InventoryID: 77,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), got.InventoryID)
}

func TestService_Create_Errors(t *testing.T) {
	type testCase struct {
		name      string
		params    rental.CreateParams
		setupMock func(tx *rental.MockLedgerTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "NoAvailableCopy",
			params: rental.CreateParams{CustomerID: 3, StaffID: 2, FilmID: 12},
			setupMock: func(tx *rental.MockLedgerTx) {
				tx.EXPECT().LockAvailableCopy(gomock.Any(), int64(12)).
					Return(int64(0), rental.ErrNoAvailableCopy)
			},
			wantErr: rental.ErrNoAvailableCopy,
		},
		{
			name:   "InventoryNotFound",
			params: rental.CreateParams{CustomerID: 3, StaffID: 2, InventoryID: 9999},
			setupMock: func(tx *rental.MockLedgerTx) {
				tx.EXPECT().LockInventory(gomock.Any(), int64(9999)).
					Return(nil, rental.ErrInventoryNotFound)
			},
			wantErr: rental.ErrInventoryNotFound,
		},
		{
			name:   "AlreadyRented",
			params: rental.CreateParams{CustomerID: 3, StaffID: 2, InventoryID: 77},
			setupMock: func(tx *rental.MockLedgerTx) {
				tx.EXPECT().LockInventory(gomock.Any(), int64(77)).Return(copyOfGladiator(), nil)
				tx.EXPECT().HasActiveRental(gomock.Any(), int64(77)).Return(true, nil)
			},
			wantErr: rental.ErrAlreadyRented,
		},
		{
			name:   "CustomerNotFound",
			params: rental.CreateParams{CustomerID: 404, StaffID: 2, InventoryID: 77},
			setupMock: func(tx *rental.MockLedgerTx) {
				tx.EXPECT().LockInventory(gomock.Any(), int64(77)).Return(copyOfGladiator(), nil)
				tx.EXPECT().HasActiveRental(gomock.Any(), int64(77)).Return(false, nil)
				tx.EXPECT().CustomerName(gomock.Any(), int64(404)).
					Return("", rental.ErrCustomerNotFound)
			},
			wantErr: rental.ErrCustomerNotFound,
		},
		{
			name:   "StaffNotFound",
			params: rental.CreateParams{CustomerID: 3, StaffID: 404, InventoryID: 77},
			setupMock: func(tx *rental.MockLedgerTx) {
				tx.EXPECT().LockInventory(gomock.Any(), int64(77)).Return(copyOfGladiator(), nil)
				tx.EXPECT().HasActiveRental(gomock.Any(), int64(77)).Return(false, nil)
				tx.EXPECT().CustomerName(gomock.Any(), int64(3)).Return("Mary Smith", nil)
				tx.EXPECT().StaffName(gomock.Any(), int64(404)).
					Return("", rental.ErrStaffNotFound)
			},
			wantErr: rental.ErrStaffNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := rental.NewMockLedger(ctrl)
			tx := rental.NewMockLedgerTx(ctrl)
			svc := rental.NewService(ledger)

			ledger.EXPECT().Begin(gomock.Any()).Return(tx, nil)
			tt.setupMock(tx)

			// The failed transaction rolls back, never commits.
			tx.EXPECT().Rollback().Return(nil)

			got, err := svc.Create(context.Background(), tt.params)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestService_Return_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := rental.NewMockLedger(ctrl)
	tx := rental.NewMockLedgerTx(ctrl)
	svc := rental.NewService(ledger)

	detail := &rental.Detail{
		ID:         501,
		CustomerID: 3,
		StaffID:    2,
		RentalDate: rentalDate,
		FilmTitle:  "Gladiator",
		RentalRate: decimal.RequireFromString("4.99"),
	}

	ledger.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockRental(gomock.Any(), int64(501)).Return(detail, nil)
	tx.EXPECT().SetReturned(gomock.Any(), int64(501)).Return(returnDate, nil)
	tx.EXPECT().
		InsertPayment(gomock.Any(), int64(501), int64(3), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ int64, amount decimal.Decimal) (int64, error) {
			// 49h elapsed rounds up to 3 billable days.
			assert.Equal(t, "14.97", amount.StringFixed(2))
			return int64(9001), nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.Return(context.Background(), 501)

	require.NoError(t, err)
	assert.Equal(t, int64(501), got.RentalID)
	assert.Equal(t, int64(3), got.DaysRented)
	assert.Equal(t, "14.97", got.TotalAmount.StringFixed(2))
	assert.Equal(t, returnDate, got.ReturnDate)
	assert.Equal(t, int64(9001), got.PaymentID)
}

func TestService_Return_AlreadyReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := rental.NewMockLedger(ctrl)
	tx := rental.NewMockLedgerTx(ctrl)
	svc := rental.NewService(ledger)

	closed := returnDate
	ledger.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockRental(gomock.Any(), int64(501)).
		Return(&rental.Detail{ID: 501, RentalDate: rentalDate, ReturnDate: &closed}, nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.Return(context.Background(), 501)

	var alreadyReturned *rental.AlreadyReturnedError
	require.ErrorAs(t, err, &alreadyReturned)
	assert.Equal(t, returnDate, alreadyReturned.ReturnDate)
	assert.Nil(t, got)
}

func TestService_Return_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := rental.NewMockLedger(ctrl)
	tx := rental.NewMockLedgerTx(ctrl)
	svc := rental.NewService(ledger)

	ledger.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockRental(gomock.Any(), int64(9999)).Return(nil, rental.ErrRentalNotFound)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.Return(context.Background(), 9999)

	assert.ErrorIs(t, err, rental.ErrRentalNotFound)
	assert.Nil(t, got)
}

func TestService_Cancel_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := rental.NewMockLedger(ctrl)
	tx := rental.NewMockLedgerTx(ctrl)
	svc := rental.NewService(ledger)

	ledger.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockRental(gomock.Any(), int64(501)).
		Return(&rental.Detail{ID: 501, RentalDate: rentalDate, FilmTitle: "Gladiator"}, nil)
	tx.EXPECT().DeleteRental(gomock.Any(), int64(501)).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.Cancel(context.Background(), 501)

	require.NoError(t, err)
	assert.Equal(t, int64(501), got.RentalID)
	assert.Equal(t, "Gladiator", got.FilmTitle)
}

func TestService_Cancel_AlreadyReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := rental.NewMockLedger(ctrl)
	tx := rental.NewMockLedgerTx(ctrl)
	svc := rental.NewService(ledger)

	closed := returnDate
	ledger.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockRental(gomock.Any(), int64(501)).
		Return(&rental.Detail{ID: 501, RentalDate: rentalDate, ReturnDate: &closed}, nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.Cancel(context.Background(), 501)

	var alreadyReturned *rental.AlreadyReturnedError
	assert.ErrorAs(t, err, &alreadyReturned)
	assert.Nil(t, got)
}

func TestService_CustomerRentals(t *testing.T) {
	type testCase struct {
		name      string
		status    rental.StatusFilter
		setupMock func(m *rental.MockLedger)
		wantLen   int
		wantErr   error
	}

	mary := &rental.Customer{ID: 3, FirstName: "Mary", LastName: "Smith", Email: "mary@example.com"}

	tests := []testCase{
		{
			name:   "Success",
			status: rental.FilterAll,
			setupMock: func(m *rental.MockLedger) {
				m.EXPECT().GetCustomer(gomock.Any(), int64(3)).Return(mary, nil)
				m.EXPECT().ListCustomerRentals(gomock.Any(), int64(3), rental.FilterAll).
					Return([]rental.CustomerRental{
						{RentalID: 501, Status: "active"},
						{RentalID: 322, Status: "returned"},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name:   "ActiveOnly",
			status: rental.FilterActive,
			setupMock: func(m *rental.MockLedger) {
				m.EXPECT().GetCustomer(gomock.Any(), int64(3)).Return(mary, nil)
				m.EXPECT().ListCustomerRentals(gomock.Any(), int64(3), rental.FilterActive).
					Return([]rental.CustomerRental{{RentalID: 501, Status: "active"}}, nil)
			},
			wantLen: 1,
		},
		{
			name:   "CustomerNotFound",
			status: rental.FilterAll,
			setupMock: func(m *rental.MockLedger) {
				m.EXPECT().GetCustomer(gomock.Any(), int64(3)).
					Return(nil, rental.ErrCustomerNotFound)
			},
			wantErr: rental.ErrCustomerNotFound,
		},
		{
			name:   "ListError",
			status: rental.FilterAll,
			setupMock: func(m *rental.MockLedger) {
				m.EXPECT().GetCustomer(gomock.Any(), int64(3)).Return(mary, nil)
				m.EXPECT().ListCustomerRentals(gomock.Any(), int64(3), rental.FilterAll).
					Return(nil, errors.New("db error"))
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := rental.NewMockLedger(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(ledger)
			}

			svc := rental.NewService(ledger)
			customer, rentals, err := svc.CustomerRentals(context.Background(), 3, tt.status)

			if tt.name == "ListError" {
				assert.Error(t, err)
				return
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, customer)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, mary, customer)
			assert.Len(t, rentals, tt.wantLen)
		})
	}
}
