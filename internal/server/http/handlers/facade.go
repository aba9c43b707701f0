package handlers

import (
	"context"

	"github.com/inkpress/printshop/internal/app"
	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/usecase"
)

// ContactFacade covers the contact-form surface.
type ContactFacade interface {
	SubmitContact(ctx context.Context, name, email string, phone, subject *string, message string) error
	ContactMessages(ctx context.Context) ([]model.ContactMessage, error)
	SetMessageStatus(ctx context.Context, id int64, status model.MessageStatus) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*usecase.CreateOrderResult, error)
	Order(ctx context.Context, id int64) (*model.OrderWithCustomer, error)
	Orders(ctx context.Context) ([]model.OrderWithCustomer, error)
	OrdersByEmail(ctx context.Context, email string) ([]model.Order, error)
	SetOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error
	ReplaceOrder(ctx context.Context, id int64, in usecase.ReplaceOrderInput) error
	DeleteOrder(ctx context.Context, id int64) error
}

// CustomerFacade covers admin customer management.
type CustomerFacade interface {
	CreateCustomer(ctx context.Context, name, email, phone, company *string) (*model.Customer, error)
	Customer(ctx context.Context, id int64) (*model.Customer, error)
	Customers(ctx context.Context) ([]model.CustomerWithTotals, error)
	CustomerOrders(ctx context.Context, id int64) (*app.CustomerDetail, error)
	UpdateCustomer(ctx context.Context, id int64, name, email, phone, company *string) error
	DeleteCustomer(ctx context.Context, id int64) error
}

// InventoryFacade covers stock management.
type InventoryFacade interface {
	CreateInventoryItem(ctx context.Context, in usecase.InventoryItemInput) (int64, error)
	InventoryItem(ctx context.Context, id int64) (*model.InventoryItem, error)
	Inventory(ctx context.Context) ([]model.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, id int64, in usecase.InventoryItemInput) error
	AdjustStock(ctx context.Context, id int64, delta int) error
	DeleteInventoryItem(ctx context.Context, id int64) error
}

// ReportingFacade provides dashboard aggregates.
type ReportingFacade interface {
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
}

// PrintShopFacade aggregates the full set of operations used across handlers.
type PrintShopFacade interface {
	ContactFacade
	OrderFacade
	CustomerFacade
	InventoryFacade
	ReportingFacade
}

// Pinger verifies connectivity to the relational store.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
