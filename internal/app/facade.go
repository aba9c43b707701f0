package app

import (
	"context"

	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/usecase"
)

// CustomerDetail bundles a customer with their order history and
// completed-order statistics for the admin detail view.
type CustomerDetail struct {
	Customer *model.Customer
	Orders   []model.Order
	Stats    model.CustomerStats
}

// PrintShopFacade aggregates the application use cases behind one surface.
type PrintShopFacade struct {
	customers *usecase.CustomerUseCase
	orders    *usecase.OrderUseCase
	inventory *usecase.InventoryUseCase
	contact   *usecase.ContactUseCase
	reporting *usecase.ReportingUseCase
}

// NewPrintShopFacade constructs the facade.
func NewPrintShopFacade(
	customers *usecase.CustomerUseCase,
	orders *usecase.OrderUseCase,
	inventory *usecase.InventoryUseCase,
	contact *usecase.ContactUseCase,
	reporting *usecase.ReportingUseCase,
) *PrintShopFacade {
	return &PrintShopFacade{
		customers: customers,
		orders:    orders,
		inventory: inventory,
		contact:   contact,
		reporting: reporting,
	}
}

func (f *PrintShopFacade) SubmitContact(ctx context.Context, name, email string, phone, subject *string, message string) error {
	return f.contact.Submit(ctx, name, email, phone, subject, message)
}

func (f *PrintShopFacade) ContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return f.contact.List(ctx)
}

func (f *PrintShopFacade) SetMessageStatus(ctx context.Context, id int64, status model.MessageStatus) error {
	return f.contact.SetStatus(ctx, id, status)
}

func (f *PrintShopFacade) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*usecase.CreateOrderResult, error) {
	return f.orders.Create(ctx, in)
}

func (f *PrintShopFacade) Order(ctx context.Context, id int64) (*model.OrderWithCustomer, error) {
	return f.orders.Get(ctx, id)
}

func (f *PrintShopFacade) Orders(ctx context.Context) ([]model.OrderWithCustomer, error) {
	return f.orders.List(ctx)
}

func (f *PrintShopFacade) OrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return f.orders.ListByEmail(ctx, email)
}

func (f *PrintShopFacade) SetOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return f.orders.SetStatus(ctx, id, status)
}

func (f *PrintShopFacade) ReplaceOrder(ctx context.Context, id int64, in usecase.ReplaceOrderInput) error {
	return f.orders.Replace(ctx, id, in)
}

func (f *PrintShopFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *PrintShopFacade) CreateCustomer(ctx context.Context, name, email, phone, company *string) (*model.Customer, error) {
	return f.customers.Create(ctx, name, email, phone, company)
}

func (f *PrintShopFacade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.customers.Get(ctx, id)
}

func (f *PrintShopFacade) Customers(ctx context.Context) ([]model.CustomerWithTotals, error) {
	return f.customers.List(ctx)
}

// CustomerOrders returns the admin detail view: the customer, their order
// history, and completed-order statistics.
func (f *PrintShopFacade) CustomerOrders(ctx context.Context, id int64) (*CustomerDetail, error) {
	customer, err := f.customers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := f.orders.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	stats, err := f.reporting.CustomerStats(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CustomerDetail{Customer: customer, Orders: orders, Stats: stats}, nil
}

func (f *PrintShopFacade) UpdateCustomer(ctx context.Context, id int64, name, email, phone, company *string) error {
	return f.customers.Update(ctx, id, name, email, phone, company)
}

func (f *PrintShopFacade) DeleteCustomer(ctx context.Context, id int64) error {
	return f.customers.Delete(ctx, id)
}

func (f *PrintShopFacade) CreateInventoryItem(ctx context.Context, in usecase.InventoryItemInput) (int64, error) {
	return f.inventory.Create(ctx, in)
}

func (f *PrintShopFacade) InventoryItem(ctx context.Context, id int64) (*model.InventoryItem, error) {
	return f.inventory.Get(ctx, id)
}

func (f *PrintShopFacade) Inventory(ctx context.Context) ([]model.InventoryItem, error) {
	return f.inventory.List(ctx)
}

func (f *PrintShopFacade) UpdateInventoryItem(ctx context.Context, id int64, in usecase.InventoryItemInput) error {
	return f.inventory.Update(ctx, id, in)
}

func (f *PrintShopFacade) AdjustStock(ctx context.Context, id int64, delta int) error {
	return f.inventory.Adjust(ctx, id, delta)
}

func (f *PrintShopFacade) DeleteInventoryItem(ctx context.Context, id int64) error {
	return f.inventory.Delete(ctx, id)
}

func (f *PrintShopFacade) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	return f.reporting.Dashboard(ctx)
}
