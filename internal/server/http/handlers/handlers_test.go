package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/printshop/internal/app"
	domainErrors "github.com/inkpress/printshop/internal/domain/errors"
	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/server/http/dto"
	testhelpers "github.com/inkpress/printshop/internal/test"
	"github.com/inkpress/printshop/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path, target string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestContactHandlerSubmit(t *testing.T) {
	body, _ := json.Marshal(dto.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "Need posters"})
	called := false
	stub := &testhelpers.PrintShopFacadeStub{SubmitContactFn: func(ctx context.Context, name, email string, phone, subject *string, message string) error {
		called = true
		if name != "Ada" || email != "ada@example.com" || message != "Need posters" {
			t.Fatalf("unexpected submission: %s %s %s", name, email, message)
		}
		return nil
	}}
	resp := performRequest(t, http.MethodPost, "/contact", "/contact", NewContactHandler(stub, false).Submit, body)
	if resp.Code != http.StatusOK || !called {
		t.Fatalf("expected 200 with facade call, got %d called=%v", resp.Code, called)
	}

	stub = &testhelpers.PrintShopFacadeStub{SubmitContactFn: func(context.Context, string, string, *string, *string, string) error {
		return domainErrors.NewValidation("missing required fields")
	}}
	resp = performRequest(t, http.MethodPost, "/contact", "/contact", NewContactHandler(stub, false).Submit, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/contact", "/contact", NewContactHandler(&testhelpers.PrintShopFacadeStub{}, false).Submit, []byte("{broken"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.Code)
	}
}

func TestContactHandlerSetStatus(t *testing.T) {
	body, _ := json.Marshal(dto.MessageStatusRequest{Status: "read"})
	stub := &testhelpers.PrintShopFacadeStub{SetMessageStatusFn: func(ctx context.Context, id int64, status model.MessageStatus) error {
		if id != 3 || status != model.MessageStatusRead {
			t.Fatalf("unexpected call: id=%d status=%s", id, status)
		}
		return nil
	}}
	resp := performRequest(t, http.MethodPatch, "/messages/:id", "/messages/3", NewContactHandler(stub, false).SetStatus, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPatch, "/messages/:id", "/messages/abc", NewContactHandler(&testhelpers.PrintShopFacadeStub{}, false).SetStatus, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	fileData := base64.StdEncoding.EncodeToString([]byte("pdf bytes"))
	email := "ada@example.com"
	fileName := "flyer.pdf"
	req := dto.CreateOrderRequest{
		ServiceType: "poster",
		Email:       &email,
		TotalAmount: 80,
		FileData:    &fileData,
		FileName:    &fileName,
	}
	body, _ := json.Marshal(req)

	stub := &testhelpers.PrintShopFacadeStub{CreateOrderFn: func(ctx context.Context, in usecase.CreateOrderInput) (*usecase.CreateOrderResult, error) {
		if in.ServiceType != "poster" || in.Contact.Email == nil || *in.Contact.Email != email {
			t.Fatalf("unexpected input: %+v", in)
		}
		if in.File == nil || string(in.File.Data) != "pdf bytes" || in.File.Name != "flyer.pdf" {
			t.Fatalf("unexpected file: %+v", in.File)
		}
		return &usecase.CreateOrderResult{OrderID: 11, OrderNumber: "ORD-1700000000000"}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(stub, false).Create, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var created dto.CreateOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !created.Success || created.Order.ID != 11 || created.Order.OrderNumber != "ORD-1700000000000" {
		t.Fatalf("unexpected response: %+v", created)
	}
	if len(created.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", created.Warnings)
	}
}

func TestOrderHandlerCreateSurfacesWarnings(t *testing.T) {
	email := "ada@example.com"
	body, _ := json.Marshal(dto.CreateOrderRequest{ServiceType: "poster", Email: &email})
	stub := &testhelpers.PrintShopFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderInput) (*usecase.CreateOrderResult, error) {
		return &usecase.CreateOrderResult{OrderID: 1, OrderNumber: "ORD-1", Warnings: []string{"file upload failed; order saved without attachment"}}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(stub, false).Create, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var created dto.CreateOrderResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &created)
	if len(created.Warnings) != 1 {
		t.Fatalf("expected warning in response, got %+v", created)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	email := "ada@example.com"
	badFile := "not-base64!!!"
	fileName := "a.pdf"
	badDate := "15-09-2026"

	tests := []struct {
		name   string
		body   dto.CreateOrderRequest
		status int
	}{
		{"bad base64", dto.CreateOrderRequest{ServiceType: "poster", Email: &email, FileData: &badFile, FileName: &fileName}, http.StatusBadRequest},
		{"bad due date", dto.CreateOrderRequest{ServiceType: "poster", Email: &email, DueDate: &badDate}, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.body)
			resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(&testhelpers.PrintShopFacadeStub{}, false).Create, body)
			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
		})
	}

	stub := &testhelpers.PrintShopFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderInput) (*usecase.CreateOrderResult, error) {
		return nil, domainErrors.NewValidation("service_type is required")
	}}
	body, _ := json.Marshal(dto.CreateOrderRequest{Email: &email})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(stub, false).Create, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateDispatch(t *testing.T) {
	t.Run("status only payload", func(t *testing.T) {
		statusCalled, replaceCalled := false, false
		stub := &testhelpers.PrintShopFacadeStub{
			SetOrderStatusFn: func(ctx context.Context, id int64, status model.OrderStatus) error {
				statusCalled = true
				if id != 5 || status != model.OrderStatusCompleted {
					t.Fatalf("unexpected call: id=%d status=%s", id, status)
				}
				return nil
			},
			ReplaceOrderFn: func(context.Context, int64, usecase.ReplaceOrderInput) error {
				replaceCalled = true
				return nil
			},
		}
		resp := performRequest(t, http.MethodPatch, "/orders/:id", "/orders/5", NewOrderHandler(stub, false).Update, []byte(`{"status":"completed"}`))
		if resp.Code != http.StatusOK || !statusCalled || replaceCalled {
			t.Fatalf("expected narrow status update, got code=%d status=%v replace=%v", resp.Code, statusCalled, replaceCalled)
		}
	})

	t.Run("status plus other fields replaces", func(t *testing.T) {
		replaceCalled := false
		stub := &testhelpers.PrintShopFacadeStub{
			SetOrderStatusFn: func(context.Context, int64, model.OrderStatus) error {
				t.Fatal("narrow update must not run for multi-field payload")
				return nil
			},
			ReplaceOrderFn: func(ctx context.Context, id int64, in usecase.ReplaceOrderInput) error {
				replaceCalled = true
				if in.ServiceType != "magazine" || in.Status == nil || *in.Status != "completed" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return nil
			},
		}
		resp := performRequest(t, http.MethodPatch, "/orders/:id", "/orders/5", NewOrderHandler(stub, false).Update, []byte(`{"status":"completed","service_type":"magazine"}`))
		if resp.Code != http.StatusOK || !replaceCalled {
			t.Fatalf("expected full replace, got code=%d replace=%v", resp.Code, replaceCalled)
		}
	})

	t.Run("invalid bodies", func(t *testing.T) {
		handler := NewOrderHandler(&testhelpers.PrintShopFacadeStub{}, false)
		for _, body := range []string{`{broken`, `{"status":5}`} {
			resp := performRequest(t, http.MethodPatch, "/orders/:id", "/orders/5", handler.Update, []byte(body))
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %q, got %d", body, resp.Code)
			}
		}
	})

	t.Run("missing order", func(t *testing.T) {
		stub := &testhelpers.PrintShopFacadeStub{SetOrderStatusFn: func(context.Context, int64, model.OrderStatus) error {
			return domainErrors.ErrNotFound
		}}
		resp := performRequest(t, http.MethodPatch, "/orders/:id", "/orders/5", NewOrderHandler(stub, false).Update, []byte(`{"status":"completed"}`))
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.Code)
		}
	})
}

func TestOrderHandlerList(t *testing.T) {
	name := "Ada"
	stub := &testhelpers.PrintShopFacadeStub{OrdersFn: func(context.Context) ([]model.OrderWithCustomer, error) {
		return []model.OrderWithCustomer{{Order: model.Order{ID: 1, OrderNumber: "ORD-1"}, CustomerName: &name}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", "/orders", NewOrderHandler(stub, false).List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(orders) != 1 || orders[0].CustomerName == nil || *orders[0].CustomerName != "Ada" {
		t.Fatalf("unexpected response: %+v", orders)
	}
}

func TestOrderHandlerListByEmail(t *testing.T) {
	listCalled := false
	stub := &testhelpers.PrintShopFacadeStub{
		OrdersByEmailFn: func(ctx context.Context, email string) ([]model.Order, error) {
			if email != "ada@example.com" {
				t.Fatalf("unexpected email %q", email)
			}
			return []model.Order{{ID: 2, OrderNumber: "ORD-2"}}, nil
		},
		OrdersFn: func(context.Context) ([]model.OrderWithCustomer, error) {
			listCalled = true
			return nil, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/orders", "/orders?email=ada@example.com", NewOrderHandler(stub, false).List, nil)
	if resp.Code != http.StatusOK || listCalled {
		t.Fatalf("expected email branch, got code=%d listCalled=%v", resp.Code, listCalled)
	}
	var orders []dto.OrderResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &orders)
	if len(orders) != 1 || orders[0].OrderNumber != "ORD-2" {
		t.Fatalf("unexpected response: %+v", orders)
	}
}

func TestOrderHandlerGetAndDelete(t *testing.T) {
	stub := &testhelpers.PrintShopFacadeStub{OrderFn: func(ctx context.Context, id int64) (*model.OrderWithCustomer, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/9", NewOrderHandler(stub, false).Get, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	deleted := false
	stub = &testhelpers.PrintShopFacadeStub{DeleteOrderFn: func(ctx context.Context, id int64) error {
		deleted = true
		if id != 9 {
			t.Fatalf("unexpected id %d", id)
		}
		return nil
	}}
	resp = performRequest(t, http.MethodDelete, "/orders/:id", "/orders/9", NewOrderHandler(stub, false).Delete, nil)
	if resp.Code != http.StatusOK || !deleted {
		t.Fatalf("expected delete, got code=%d deleted=%v", resp.Code, deleted)
	}
}

func TestCustomerHandlerOrders(t *testing.T) {
	stub := &testhelpers.PrintShopFacadeStub{CustomerOrdersFn: func(ctx context.Context, id int64) (*app.CustomerDetail, error) {
		if id != 7 {
			t.Fatalf("unexpected id %d", id)
		}
		name := "Ada"
		return &app.CustomerDetail{
			Customer: &model.Customer{ID: 7, Name: &name},
			Orders:   []model.Order{{ID: 1, OrderNumber: "ORD-1", CustomerID: int64Ptr(7)}},
			Stats:    model.CustomerStats{CompletedOrders: 1, TotalSpent: 80, AverageOrderValue: 80},
		}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/customers/:id/orders", "/customers/7/orders", NewCustomerHandler(stub, false).Orders, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var detail dto.CustomerDetailResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &detail); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if detail.Customer.Name == nil || *detail.Customer.Name != "Ada" || len(detail.Orders) != 1 || detail.Stats.TotalSpent != 80 {
		t.Fatalf("unexpected response: %+v", detail)
	}

	stub = &testhelpers.PrintShopFacadeStub{CustomerOrdersFn: func(context.Context, int64) (*app.CustomerDetail, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodGet, "/customers/:id/orders", "/customers/7/orders", NewCustomerHandler(stub, false).Orders, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCustomerHandlerCreate(t *testing.T) {
	name := "Ada"
	body, _ := json.Marshal(dto.CustomerRequest{Name: &name})
	stub := &testhelpers.PrintShopFacadeStub{CreateCustomerFn: func(ctx context.Context, name, email, phone, company *string) (*model.Customer, error) {
		return &model.Customer{ID: 12, Name: name}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/customers", "/customers", NewCustomerHandler(stub, false).Create, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var created dto.CreatedResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &created)
	if !created.Success || created.ID != 12 {
		t.Fatalf("unexpected response: %+v", created)
	}

	stub = &testhelpers.PrintShopFacadeStub{CreateCustomerFn: func(context.Context, *string, *string, *string, *string) (*model.Customer, error) {
		return nil, domainErrors.NewValidation("at least one contact field is required")
	}}
	resp = performRequest(t, http.MethodPost, "/customers", "/customers", NewCustomerHandler(stub, false).Create, []byte(`{}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestInventoryHandlerAdjust(t *testing.T) {
	adjusted := false
	stub := &testhelpers.PrintShopFacadeStub{AdjustFn: func(ctx context.Context, id int64, delta int) error {
		adjusted = true
		if id != 4 || delta != -25 {
			t.Fatalf("unexpected call: id=%d delta=%d", id, delta)
		}
		return nil
	}}
	resp := performRequest(t, http.MethodPatch, "/inventory/:id/adjust", "/inventory/4/adjust", NewInventoryHandler(stub, false).Adjust, []byte(`{"adjustment":-25}`))
	if resp.Code != http.StatusOK || !adjusted {
		t.Fatalf("expected adjust call, got code=%d adjusted=%v", resp.Code, adjusted)
	}
}

func TestInventoryHandlerListDerivesLowStock(t *testing.T) {
	stub := &testhelpers.PrintShopFacadeStub{InventoryFn: func(context.Context) ([]model.InventoryItem, error) {
		return []model.InventoryItem{
			{ID: 1, ItemName: "Ink", StockQuantity: 3, LowStockThreshold: 5},
			{ID: 2, ItemName: "A4 paper", StockQuantity: 100, LowStockThreshold: 20},
		}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/inventory", "/inventory", NewInventoryHandler(stub, false).List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var items []dto.InventoryItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 2 || !items[0].LowStock || items[1].LowStock {
		t.Fatalf("unexpected response: %+v", items)
	}
}

func TestSystemHandlerDBCheck(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/db-check", "/db-check", NewSystemHandler(&testhelpers.PrintShopFacadeStub{}, nil, false).DBCheck, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a pinger, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/db-check", "/db-check", NewSystemHandler(&testhelpers.PrintShopFacadeStub{}, testhelpers.PingerStub{Err: errors.New("connection refused")}, false).DBCheck, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on ping failure, got %d", resp.Code)
	}
	var health dto.HealthResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &health)
	if health.OK || health.Error == "" {
		t.Fatalf("unexpected body: %+v", health)
	}

	resp = performRequest(t, http.MethodGet, "/db-check", "/db-check", NewSystemHandler(&testhelpers.PrintShopFacadeStub{}, testhelpers.PingerStub{}, false).DBCheck, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestSystemHandlerDashboard(t *testing.T) {
	stub := &testhelpers.PrintShopFacadeStub{DashboardFn: func(context.Context) (*model.DashboardStats, error) {
		return &model.DashboardStats{
			Orders:    model.OrderCounts{Total: 10, Pending: 4},
			Inventory: model.InventoryTotals{Items: 6, StockUnits: 540, LowStock: 2},
			Customers: 8,
			Revenue:   model.RevenueTotals{Total: 1250, Last30Days: 400},
			LowStock:  []model.LowStockItem{{ItemName: "Ink", StockQuantity: 3, LowStockThreshold: 5}},
		}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/dashboard/stats", "/dashboard/stats", NewSystemHandler(stub, testhelpers.PingerStub{}, false).Dashboard, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var dashboard dto.DashboardResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &dashboard); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if dashboard.Orders.Total != 10 || dashboard.Orders.Pending != 4 {
		t.Fatalf("unexpected order counts: %+v", dashboard.Orders)
	}
	if dashboard.Inventory.Total != 6 || dashboard.Inventory.TotalItems != 540 || dashboard.Inventory.LowStock != 2 {
		t.Fatalf("unexpected inventory totals: %+v", dashboard.Inventory)
	}
	if dashboard.Customers != 8 || dashboard.Revenue.MonthlyRevenue != 400 || len(dashboard.LowStock) != 1 {
		t.Fatalf("unexpected response: %+v", dashboard)
	}
}

func TestRespondErrorDevDetail(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	respondError(ctx, errors.New("pq: relation missing"), "Failed to fetch orders", true)
	var body dto.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Error != "Failed to fetch orders" || body.Detail == "" {
		t.Fatalf("expected detail in dev mode, got %+v", body)
	}

	w = httptest.NewRecorder()
	ctx, _ = gin.CreateTestContext(w)
	respondError(ctx, errors.New("pq: relation missing"), "Failed to fetch orders", false)
	body = dto.ErrorResponse{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Detail != "" {
		t.Fatalf("detail must not leak outside dev mode, got %+v", body)
	}
}
