package test

import (
	"context"

	"github.com/inkpress/printshop/internal/app"
	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/usecase"
)

// PrintShopFacadeStub provides controllable behaviour for every handler surface.
// Unset functions fall back to benign defaults so tests only configure what
// they assert on.
type PrintShopFacadeStub struct {
	SubmitContactFn    func(context.Context, string, string, *string, *string, string) error
	ContactMessagesFn  func(context.Context) ([]model.ContactMessage, error)
	SetMessageStatusFn func(context.Context, int64, model.MessageStatus) error

	CreateOrderFn    func(context.Context, usecase.CreateOrderInput) (*usecase.CreateOrderResult, error)
	OrderFn          func(context.Context, int64) (*model.OrderWithCustomer, error)
	OrdersFn         func(context.Context) ([]model.OrderWithCustomer, error)
	OrdersByEmailFn  func(context.Context, string) ([]model.Order, error)
	SetOrderStatusFn func(context.Context, int64, model.OrderStatus) error
	ReplaceOrderFn   func(context.Context, int64, usecase.ReplaceOrderInput) error
	DeleteOrderFn    func(context.Context, int64) error

	CreateCustomerFn func(context.Context, *string, *string, *string, *string) (*model.Customer, error)
	CustomerFn       func(context.Context, int64) (*model.Customer, error)
	CustomersFn      func(context.Context) ([]model.CustomerWithTotals, error)
	CustomerOrdersFn func(context.Context, int64) (*app.CustomerDetail, error)
	UpdateCustomerFn func(context.Context, int64, *string, *string, *string, *string) error
	DeleteCustomerFn func(context.Context, int64) error

	CreateItemFn func(context.Context, usecase.InventoryItemInput) (int64, error)
	ItemFn       func(context.Context, int64) (*model.InventoryItem, error)
	InventoryFn  func(context.Context) ([]model.InventoryItem, error)
	UpdateItemFn func(context.Context, int64, usecase.InventoryItemInput) error
	AdjustFn     func(context.Context, int64, int) error
	DeleteItemFn func(context.Context, int64) error

	DashboardFn func(context.Context) (*model.DashboardStats, error)
}

func (s *PrintShopFacadeStub) SubmitContact(ctx context.Context, name, email string, phone, subject *string, message string) error {
	if s.SubmitContactFn != nil {
		return s.SubmitContactFn(ctx, name, email, phone, subject, message)
	}
	return nil
}

func (s *PrintShopFacadeStub) ContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	if s.ContactMessagesFn != nil {
		return s.ContactMessagesFn(ctx)
	}
	return nil, nil
}

func (s *PrintShopFacadeStub) SetMessageStatus(ctx context.Context, id int64, status model.MessageStatus) error {
	if s.SetMessageStatusFn != nil {
		return s.SetMessageStatusFn(ctx, id, status)
	}
	return nil
}

func (s *PrintShopFacadeStub) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*usecase.CreateOrderResult, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, in)
	}
	return &usecase.CreateOrderResult{OrderID: 1, OrderNumber: "ORD-1"}, nil
}

func (s *PrintShopFacadeStub) Order(ctx context.Context, id int64) (*model.OrderWithCustomer, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.OrderWithCustomer{Order: model.Order{ID: id}}, nil
}

func (s *PrintShopFacadeStub) Orders(ctx context.Context) ([]model.OrderWithCustomer, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return nil, nil
}

func (s *PrintShopFacadeStub) OrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	if s.OrdersByEmailFn != nil {
		return s.OrdersByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *PrintShopFacadeStub) SetOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.SetOrderStatusFn != nil {
		return s.SetOrderStatusFn(ctx, id, status)
	}
	return nil
}

func (s *PrintShopFacadeStub) ReplaceOrder(ctx context.Context, id int64, in usecase.ReplaceOrderInput) error {
	if s.ReplaceOrderFn != nil {
		return s.ReplaceOrderFn(ctx, id, in)
	}
	return nil
}

func (s *PrintShopFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

func (s *PrintShopFacadeStub) CreateCustomer(ctx context.Context, name, email, phone, company *string) (*model.Customer, error) {
	if s.CreateCustomerFn != nil {
		return s.CreateCustomerFn(ctx, name, email, phone, company)
	}
	return &model.Customer{ID: 1, Name: name, Email: email}, nil
}

func (s *PrintShopFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, id)
	}
	return &model.Customer{ID: id}, nil
}

func (s *PrintShopFacadeStub) Customers(ctx context.Context) ([]model.CustomerWithTotals, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return nil, nil
}

func (s *PrintShopFacadeStub) CustomerOrders(ctx context.Context, id int64) (*app.CustomerDetail, error) {
	if s.CustomerOrdersFn != nil {
		return s.CustomerOrdersFn(ctx, id)
	}
	return &app.CustomerDetail{Customer: &model.Customer{ID: id}}, nil
}

func (s *PrintShopFacadeStub) UpdateCustomer(ctx context.Context, id int64, name, email, phone, company *string) error {
	if s.UpdateCustomerFn != nil {
		return s.UpdateCustomerFn(ctx, id, name, email, phone, company)
	}
	return nil
}

func (s *PrintShopFacadeStub) DeleteCustomer(ctx context.Context, id int64) error {
	if s.DeleteCustomerFn != nil {
		return s.DeleteCustomerFn(ctx, id)
	}
	return nil
}

func (s *PrintShopFacadeStub) CreateInventoryItem(ctx context.Context, in usecase.InventoryItemInput) (int64, error) {
	if s.CreateItemFn != nil {
		return s.CreateItemFn(ctx, in)
	}
	return 1, nil
}

func (s *PrintShopFacadeStub) InventoryItem(ctx context.Context, id int64) (*model.InventoryItem, error) {
	if s.ItemFn != nil {
		return s.ItemFn(ctx, id)
	}
	return &model.InventoryItem{ID: id}, nil
}

func (s *PrintShopFacadeStub) Inventory(ctx context.Context) ([]model.InventoryItem, error) {
	if s.InventoryFn != nil {
		return s.InventoryFn(ctx)
	}
	return nil, nil
}

func (s *PrintShopFacadeStub) UpdateInventoryItem(ctx context.Context, id int64, in usecase.InventoryItemInput) error {
	if s.UpdateItemFn != nil {
		return s.UpdateItemFn(ctx, id, in)
	}
	return nil
}

func (s *PrintShopFacadeStub) AdjustStock(ctx context.Context, id int64, delta int) error {
	if s.AdjustFn != nil {
		return s.AdjustFn(ctx, id, delta)
	}
	return nil
}

func (s *PrintShopFacadeStub) DeleteInventoryItem(ctx context.Context, id int64) error {
	if s.DeleteItemFn != nil {
		return s.DeleteItemFn(ctx, id)
	}
	return nil
}

func (s *PrintShopFacadeStub) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return &model.DashboardStats{}, nil
}

// PingerStub simulates database connectivity checks.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s PingerStub) HealthCheck(ctx context.Context) error { return s.Err }
