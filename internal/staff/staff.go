package staff

import "errors"

var ErrNotFound = errors.New("staff not found")

type Staff struct {
	ID        int64
	StoreID   int64
	FirstName string
	LastName  string
	Email     string
	Username  string
	Active    bool
}

// ListFilter narrows staff listings. Nil fields mean no filtering.
type ListFilter struct {
	Active  *bool
	StoreID *int64
}
