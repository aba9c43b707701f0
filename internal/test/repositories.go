package test

import (
	"context"

	domainErrors "github.com/inkpress/printshop/internal/domain/errors"
	"github.com/inkpress/printshop/internal/domain/model"
)

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	ByEmail map[string]*model.Customer
	ByID    map[int64]*model.Customer
	Listed  []model.CustomerWithTotals
	Next    int64
	Err     error

	Created []model.Customer
	Deleted []int64
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{
		ByEmail: make(map[string]*model.Customer),
		ByID:    make(map[int64]*model.Customer),
		Next:    1,
	}
}

// Create registers customer unless stub has explicit error.
func (s *CustomerRepositoryStub) Create(ctx context.Context, name, email, phone, company *string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.Customer)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Customer)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	customer := &model.Customer{ID: s.Next, Name: name, Email: email, Phone: phone, Company: company}
	s.Next++
	if email != nil {
		s.ByEmail[*email] = customer
	}
	s.ByID[customer.ID] = customer
	s.Created = append(s.Created, *customer)
	return customer, nil
}

// GetByEmail fetches customer by email or returns not found.
func (s *CustomerRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if customer, ok := s.ByEmail[email]; ok {
		return customer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches customer by identifier or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if customer, ok := s.ByID[id]; ok {
		return customer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns the configured projection slice.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.CustomerWithTotals, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Listed, nil
}

// Update rewrites stored contact fields.
func (s *CustomerRepositoryStub) Update(ctx context.Context, id int64, name, email, phone, company *string) error {
	if s.Err != nil {
		return s.Err
	}
	customer, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	customer.Name, customer.Email, customer.Phone, customer.Company = name, email, phone, company
	return nil
}

// Delete records removal invocations.
func (s *CustomerRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	s.Deleted = append(s.Deleted, id)
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn    func(context.Context, *model.Order) (int64, error)
	GetByIDFn   func(context.Context, int64) (*model.OrderWithCustomer, error)
	ListFn      func(context.Context) ([]model.OrderWithCustomer, error)
	SetStatusFn func(context.Context, int64, model.OrderStatus) error
	ReplaceFn   func(context.Context, int64, *model.Order) error

	Created     []model.Order
	Orders      []model.OrderWithCustomer
	ByCustomer  []model.Order
	ByEmail     []model.Order
	StatusCalls []StatusCall
	Replaced    []model.Order
	Deleted     []int64
}

// StatusCall stores information about SetStatus invocations.
type StatusCall struct {
	ID     int64
	Status model.OrderStatus
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (int64, error) {
	s.Created = append(s.Created, *order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return int64(len(s.Created)), nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.OrderWithCustomer, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders from configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.OrderWithCustomer, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}

// ListByCustomer returns configured customer orders.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return s.ByCustomer, nil
}

// ListByEmail returns configured email matches.
func (s *OrderRepositoryStub) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return s.ByEmail, nil
}

// SetStatus records status updates.
func (s *OrderRepositoryStub) SetStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	s.StatusCalls = append(s.StatusCalls, StatusCall{ID: id, Status: status})
	return nil
}

// Replace records full overwrites.
func (s *OrderRepositoryStub) Replace(ctx context.Context, id int64, order *model.Order) error {
	if s.ReplaceFn != nil {
		return s.ReplaceFn(ctx, id, order)
	}
	copied := *order
	copied.ID = id
	s.Replaced = append(s.Replaced, copied)
	return nil
}

// Delete records removal invocations.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.Deleted = append(s.Deleted, id)
	return nil
}

// InventoryRepositoryStub lets tests control stock data.
type InventoryRepositoryStub struct {
	CreateFn func(context.Context, *model.InventoryItem) (int64, error)
	AdjustFn func(context.Context, int64, int) error

	Items       []model.InventoryItem
	AdjustCalls []AdjustCall
	Err         error
}

// AdjustCall stores information about Adjust invocations.
type AdjustCall struct {
	ID    int64
	Delta int
}

// Create returns configured responses.
func (s *InventoryRepositoryStub) Create(ctx context.Context, item *model.InventoryItem) (int64, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, item)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	s.Items = append(s.Items, *item)
	return int64(len(s.Items)), nil
}

// GetByID returns matched item or not found.
func (s *InventoryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.InventoryItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, it := range s.Items {
		if it.ID == id {
			item := it
			return &item, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns configured items.
func (s *InventoryRepositoryStub) List(ctx context.Context) ([]model.InventoryItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// Update returns configured error.
func (s *InventoryRepositoryStub) Update(ctx context.Context, id int64, item *model.InventoryItem) error {
	return s.Err
}

// Adjust records delta applications.
func (s *InventoryRepositoryStub) Adjust(ctx context.Context, id int64, delta int) error {
	if s.AdjustFn != nil {
		return s.AdjustFn(ctx, id, delta)
	}
	s.AdjustCalls = append(s.AdjustCalls, AdjustCall{ID: id, Delta: delta})
	return s.Err
}

// Delete returns configured error.
func (s *InventoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	return s.Err
}

// ContactRepositoryStub stores contact messages for tests.
type ContactRepositoryStub struct {
	Messages    []model.ContactMessage
	StatusCalls []MessageStatusCall
	Err         error
}

// MessageStatusCall stores information about SetStatus invocations.
type MessageStatusCall struct {
	ID     int64
	Status model.MessageStatus
}

// Create appends the message and returns its position as identifier.
func (s *ContactRepositoryStub) Create(ctx context.Context, msg *model.ContactMessage) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.Messages = append(s.Messages, *msg)
	return int64(len(s.Messages)), nil
}

// List returns stored messages.
func (s *ContactRepositoryStub) List(ctx context.Context) ([]model.ContactMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Messages, nil
}

// SetStatus records status transitions.
func (s *ContactRepositoryStub) SetStatus(ctx context.Context, id int64, status model.MessageStatus) error {
	if s.Err != nil {
		return s.Err
	}
	s.StatusCalls = append(s.StatusCalls, MessageStatusCall{ID: id, Status: status})
	return nil
}

// StatsRepositoryStub returns configured aggregates.
type StatsRepositoryStub struct {
	Orders        model.OrderCounts
	Inventory     model.InventoryTotals
	Customers     int64
	Revenue       model.RevenueTotals
	LowStock      []model.LowStockItem
	PerCustomer   model.CustomerStats
	OrdersErr     error
	InventoryErr  error
	CustomersErr  error
	RevenueErr    error
	LowStockErr   error
	CustomerStErr error
}

// OrderCounts returns configured counts.
func (s *StatsRepositoryStub) OrderCounts(ctx context.Context) (model.OrderCounts, error) {
	return s.Orders, s.OrdersErr
}

// InventoryTotals returns configured totals.
func (s *StatsRepositoryStub) InventoryTotals(ctx context.Context) (model.InventoryTotals, error) {
	return s.Inventory, s.InventoryErr
}

// CustomerCount returns configured count.
func (s *StatsRepositoryStub) CustomerCount(ctx context.Context) (int64, error) {
	return s.Customers, s.CustomersErr
}

// RevenueTotals returns configured revenue.
func (s *StatsRepositoryStub) RevenueTotals(ctx context.Context) (model.RevenueTotals, error) {
	return s.Revenue, s.RevenueErr
}

// LowStockItems returns configured shortage list.
func (s *StatsRepositoryStub) LowStockItems(ctx context.Context, limit int) ([]model.LowStockItem, error) {
	if s.LowStockErr != nil {
		return nil, s.LowStockErr
	}
	if limit < len(s.LowStock) {
		return s.LowStock[:limit], nil
	}
	return s.LowStock, nil
}

// CustomerStats returns configured per-customer aggregates.
func (s *StatsRepositoryStub) CustomerStats(ctx context.Context, customerID int64) (model.CustomerStats, error) {
	return s.PerCustomer, s.CustomerStErr
}
