package repository

import (
	"context"

	"github.com/inkpress/printshop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create inserts the order and returns its assigned identifier.
	Create(ctx context.Context, order *model.Order) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.OrderWithCustomer, error)
	List(ctx context.Context) ([]model.OrderWithCustomer, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)
	// SetStatus updates only status and updated_at.
	SetStatus(ctx context.Context, id int64, status model.OrderStatus) error
	// Replace overwrites every mutable order field.
	Replace(ctx context.Context, id int64, order *model.Order) error
	Delete(ctx context.Context, id int64) error
}
