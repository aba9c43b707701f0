package repository

import (
	"context"

	"github.com/inkpress/printshop/internal/domain/model"
)

// CustomerRepository describes persistence operations with customers.
type CustomerRepository interface {
	Create(ctx context.Context, name, email, phone, company *string) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.CustomerWithTotals, error)
	Update(ctx context.Context, id int64, name, email, phone, company *string) error
	Delete(ctx context.Context, id int64) error
}
