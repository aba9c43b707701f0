package model

import "time"

// Customer represents a person or business ordering print services.
// Email is a soft-unique lookup key used for deduplication; it is not
// enforced unique at the database level.
type Customer struct {
	ID        int64
	Name      *string
	Email     *string
	Phone     *string
	Company   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerWithTotals is the admin listing projection: a customer with
// derived order count and completed-order spend.
type CustomerWithTotals struct {
	Customer
	OrderCount int64
	TotalSpent float64
}

// ContactInfo carries the optional identity fields submitted with an order.
type ContactInfo struct {
	Name  *string
	Email *string
	Phone *string
}

// Empty reports whether no identity field is present.
func (c ContactInfo) Empty() bool {
	return !present(c.Name) && !present(c.Email) && !present(c.Phone)
}

func present(s *string) bool {
	return s != nil && *s != ""
}
