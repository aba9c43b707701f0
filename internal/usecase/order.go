package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/inkpress/printshop/internal/adapter/blob"
	domainErrors "github.com/inkpress/printshop/internal/domain/errors"
	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/domain/repository"
)

// CustomerResolver links an order submission to a customer record.
type CustomerResolver interface {
	Resolve(ctx context.Context, contact model.ContactInfo) *int64
}

// FileUpload carries decoded attachment bytes from the wire layer.
type FileUpload struct {
	Data []byte
	Name string
	Mime *string
}

// CreateOrderInput is a validated-at-entry order submission.
type CreateOrderInput struct {
	ServiceType      string
	Contact          model.ContactInfo
	Quantity         *int
	TotalAmount      float64
	Notes            *string
	DeliveryAddress  *string
	DueDate          *time.Time
	PaymentMethod    *string
	PaymentStatus    *string
	PaymentReference *string
	File             *FileUpload
}

// CreateOrderResult reports the created order plus any auxiliary steps that
// degraded. A warning never implies the order itself failed.
type CreateOrderResult struct {
	OrderID     int64
	OrderNumber string
	CustomerID  *int64
	Warnings    []string
}

// ReplaceOrderInput is an authoritative full overwrite of an order's
// mutable fields. Absent status and payment fields default away.
type ReplaceOrderInput struct {
	ServiceType     string
	Quantity        int
	Notes           *string
	DeliveryAddress *string
	DueDate         *time.Time
	TotalAmount     float64
	FileURL         *string
	FileName        *string
	FileSize        *int64
	FileMime        *string
	Status          *string
	PaymentStatus   *string
	PaymentMethod   *string
}

// OrderUseCase encapsulates the order lifecycle.
type OrderUseCase struct {
	orders   repository.OrderRepository
	resolver CustomerResolver
	uploader blob.Uploader
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, resolver CustomerResolver, uploader blob.Uploader, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, resolver: resolver, uploader: uploader, logger: logger}
}

// Create validates and persists a new order. Customer linkage and file
// attachment are best-effort side channels: their failures become warnings
// on the result instead of failing the order.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error) {
	if in.ServiceType == "" {
		return nil, domainErrors.NewValidation("service_type is required")
	}
	if in.Contact.Empty() {
		return nil, domainErrors.NewValidation("provide at least one of: email, name, or phone")
	}
	quantity := 1
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, domainErrors.NewValidation("quantity must be >= 1")
		}
		quantity = *in.Quantity
	}

	result := &CreateOrderResult{}

	result.CustomerID = u.resolver.Resolve(ctx, in.Contact)
	if result.CustomerID == nil {
		result.Warnings = append(result.Warnings, "customer record unavailable; order is not linked to a customer")
	}

	var fileURL, fileName, fileMime *string
	var fileSize *int64
	if in.File != nil && in.File.Name != "" {
		url, err := u.uploader.Store(ctx, StoredFileName(in.File.Name), in.File.Data)
		if err != nil {
			// At most one attempt: order capture takes priority over the attachment.
			u.logger.Error("file upload failed", slog.String("file", in.File.Name), slog.String("error", err.Error()))
			result.Warnings = append(result.Warnings, "file upload failed; order saved without attachment")
		} else {
			size := int64(len(in.File.Data))
			fileURL = &url
			fileName = &in.File.Name
			fileSize = &size
			fileMime = in.File.Mime
		}
	}

	order := &model.Order{
		CustomerID:       result.CustomerID,
		OrderNumber:      NewOrderNumber(),
		ServiceType:      in.ServiceType,
		Quantity:         quantity,
		Status:           model.OrderStatusPending,
		TotalAmount:      in.TotalAmount,
		Notes:            in.Notes,
		FileURL:          fileURL,
		FileName:         fileName,
		FileSize:         fileSize,
		FileMime:         fileMime,
		DeliveryAddress:  in.DeliveryAddress,
		DueDate:          in.DueDate,
		PaymentMethod:    paymentMethodOrDefault(in.PaymentMethod),
		PaymentStatus:    paymentStatusOrDefault(in.PaymentStatus),
		PaymentReference: in.PaymentReference,
	}

	id, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	result.OrderID = id
	result.OrderNumber = order.OrderNumber
	return result, nil
}

// Get returns an order joined with its customer's contact fields.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.OrderWithCustomer, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.OrderWithCustomer, error) {
	return u.orders.List(ctx)
}

// ListByCustomer returns a customer's order history.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// ListByEmail returns orders for the customer dashboard.
func (u *OrderUseCase) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return u.orders.ListByEmail(ctx, email)
}

// SetStatus performs the narrow status transition, touching nothing else.
func (u *OrderUseCase) SetStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if !status.Valid() {
		return domainErrors.NewValidation("unknown order status %q", status)
	}
	return u.orders.SetStatus(ctx, id, status)
}

// Replace overwrites all mutable fields with the provided values.
func (u *OrderUseCase) Replace(ctx context.Context, id int64, in ReplaceOrderInput) error {
	status := model.OrderStatusPending
	if in.Status != nil {
		status = model.OrderStatus(*in.Status)
		if !status.Valid() {
			return domainErrors.NewValidation("unknown order status %q", *in.Status)
		}
	}

	order := &model.Order{
		ServiceType:     in.ServiceType,
		Quantity:        in.Quantity,
		Status:          status,
		TotalAmount:     in.TotalAmount,
		Notes:           in.Notes,
		FileURL:         in.FileURL,
		FileName:        in.FileName,
		FileSize:        in.FileSize,
		FileMime:        in.FileMime,
		DeliveryAddress: in.DeliveryAddress,
		DueDate:         in.DueDate,
		PaymentMethod:   paymentMethodOrDefault(in.PaymentMethod),
		PaymentStatus:   paymentStatusOrDefault(in.PaymentStatus),
	}
	return u.orders.Replace(ctx, id, order)
}

// Delete removes the order unconditionally, regardless of status.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}

func paymentMethodOrDefault(s *string) model.PaymentMethod {
	if s == nil || *s == "" {
		return model.PaymentMethodOnDelivery
	}
	return model.PaymentMethod(*s)
}

func paymentStatusOrDefault(s *string) model.PaymentStatus {
	if s == nil || *s == "" {
		return model.PaymentStatusPending
	}
	return model.PaymentStatus(*s)
}
