package usecase

import (
	"context"
	"log/slog"

	domainErrors "github.com/inkpress/printshop/internal/domain/errors"
	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/domain/repository"
)

// CustomerUseCase manages customer records and order-time resolution.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	logger    *slog.Logger
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository, logger *slog.Logger) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, logger: logger}
}

// Resolve finds or creates a customer for the submitted contact fields and
// returns its id, or nil when no customer can be linked. Persistence
// failures are swallowed deliberately: order capture must not fail because
// customer bookkeeping failed.
func (u *CustomerUseCase) Resolve(ctx context.Context, contact model.ContactInfo) *int64 {
	switch {
	case contact.Email != nil && *contact.Email != "":
		existing, err := u.customers.GetByEmail(ctx, *contact.Email)
		if err == nil {
			return &existing.ID
		}
		if err != domainErrors.ErrNotFound {
			u.logger.Error("customer lookup failed", slog.String("error", err.Error()))
			return nil
		}
		created, err := u.customers.Create(ctx, contact.Name, contact.Email, contact.Phone, nil)
		if err != nil {
			u.logger.Error("customer create failed", slog.String("error", err.Error()))
			return nil
		}
		return &created.ID
	case !contact.Empty():
		// No email means no dedup key; always insert.
		created, err := u.customers.Create(ctx, contact.Name, nil, contact.Phone, nil)
		if err != nil {
			u.logger.Error("customer create failed", slog.String("error", err.Error()))
			return nil
		}
		return &created.ID
	default:
		return nil
	}
}

// Create registers a customer explicitly from the admin panel.
func (u *CustomerUseCase) Create(ctx context.Context, name, email, phone, company *string) (*model.Customer, error) {
	if (model.ContactInfo{Name: name, Email: email, Phone: phone}).Empty() {
		return nil, domainErrors.NewValidation("provide at least one of: email, name, or phone")
	}
	return u.customers.Create(ctx, name, email, phone, company)
}

// Get returns the customer by id.
func (u *CustomerUseCase) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

// List returns all customers with derived order counts and spend.
func (u *CustomerUseCase) List(ctx context.Context) ([]model.CustomerWithTotals, error) {
	return u.customers.List(ctx)
}

// Update overwrites the customer's contact fields.
func (u *CustomerUseCase) Update(ctx context.Context, id int64, name, email, phone, company *string) error {
	return u.customers.Update(ctx, id, name, email, phone, company)
}

// Delete removes the customer; the schema cascades to their orders.
func (u *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return u.customers.Delete(ctx, id)
}
