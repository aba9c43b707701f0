package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/inkpress/printshop/internal/domain/errors"
	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool the storage layer depends on.
// pgxmock satisfies it in tests.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

type customerRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type inventoryRepository struct {
	storage *Storage
}

type contactRepository struct {
	storage *Storage
}

type statsRepository struct {
	storage *Storage
}

// newPgxPool is swapped out in tests.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (DBPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Inventory() repository.InventoryRepository {
	return &inventoryRepository{storage: s}
}

func (s *Storage) ContactMessages() repository.ContactRepository {
	return &contactRepository{storage: s}
}

func (s *Storage) Stats() repository.StatsRepository {
	return &statsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
            id SERIAL PRIMARY KEY,
            name TEXT,
            email TEXT,
            phone TEXT,
            company TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            customer_id BIGINT REFERENCES customers(id) ON DELETE CASCADE,
            order_number TEXT UNIQUE NOT NULL,
            service_type TEXT NOT NULL,
            quantity INT NOT NULL DEFAULT 1,
            status TEXT NOT NULL DEFAULT 'pending',
            total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
            notes TEXT,
            file_url TEXT,
            file_name TEXT,
            file_size BIGINT,
            file_mime TEXT,
            delivery_address TEXT,
            due_date DATE,
            payment_method TEXT NOT NULL DEFAULT 'pay_on_delivery',
            payment_status TEXT NOT NULL DEFAULT 'pending',
            payment_reference TEXT,
            order_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            completed_date TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS inventory (
            id SERIAL PRIMARY KEY,
            item_name TEXT NOT NULL,
            category TEXT NOT NULL,
            stock_quantity INT NOT NULL DEFAULT 0,
            unit_price DOUBLE PRECISION NOT NULL DEFAULT 0,
            low_stock_threshold INT NOT NULL DEFAULT 0,
            supplier TEXT,
            last_restocked TIMESTAMPTZ,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT,
            subject TEXT,
            message TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'new',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, order_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_customers_email ON customers(email)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func translateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

// --- CustomerRepository implementation ---

func (r *customerRepository) Create(ctx context.Context, name, email, phone, company *string) (*model.Customer, error) {
	const query = `INSERT INTO customers (name, email, phone, company, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, NOW(), NOW())
                   RETURNING id, created_at, updated_at`
	c := model.Customer{Name: name, Email: email, Phone: phone, Company: company}
	err := r.storage.pool.QueryRow(ctx, query, name, email, phone, company).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const query = `SELECT id, name, email, phone, company, created_at, updated_at
                   FROM customers WHERE email=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT id, name, email, phone, company, created_at, updated_at
                   FROM customers WHERE id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]model.CustomerWithTotals, error) {
	const query = `SELECT c.id, c.name, c.email, c.phone, c.company, c.created_at, c.updated_at,
                          COUNT(o.id) AS order_count,
                          COALESCE(SUM(CASE WHEN o.status = 'completed' THEN o.total_amount ELSE 0 END), 0) AS total_spent
                   FROM customers c
                   LEFT JOIN orders o ON c.id = o.customer_id
                   GROUP BY c.id
                   ORDER BY c.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CustomerWithTotals
	for rows.Next() {
		var c model.CustomerWithTotals
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt, &c.UpdatedAt, &c.OrderCount, &c.TotalSpent); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) Update(ctx context.Context, id int64, name, email, phone, company *string) error {
	const query = `UPDATE customers
                   SET name=$1, email=$2, phone=$3, company=$4, updated_at=NOW()
                   WHERE id=$5`
	_, err := r.storage.pool.Exec(ctx, query, name, email, phone, company, id)
	return err
}

// Delete removes the customer. Orders cascade at the schema level.
func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	return err
}

// --- OrderRepository implementation ---

const orderColumns = `id, customer_id, order_number, service_type, quantity, status, total_amount,
        notes, file_url, file_name, file_size, file_mime, delivery_address, due_date,
        payment_method, payment_status, payment_reference, order_date, completed_date,
        created_at, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(&o.ID, &o.CustomerID, &o.OrderNumber, &o.ServiceType, &o.Quantity,
		&o.Status, &o.TotalAmount, &o.Notes, &o.FileURL, &o.FileName, &o.FileSize,
		&o.FileMime, &o.DeliveryAddress, &o.DueDate, &o.PaymentMethod, &o.PaymentStatus,
		&o.PaymentReference, &o.OrderDate, &o.CompletedDate, &o.CreatedAt, &o.UpdatedAt)
}

func scanOrderWithCustomer(row pgx.Row, o *model.OrderWithCustomer) error {
	return row.Scan(&o.ID, &o.CustomerID, &o.OrderNumber, &o.ServiceType, &o.Quantity,
		&o.Status, &o.TotalAmount, &o.Notes, &o.FileURL, &o.FileName, &o.FileSize,
		&o.FileMime, &o.DeliveryAddress, &o.DueDate, &o.PaymentMethod, &o.PaymentStatus,
		&o.PaymentReference, &o.OrderDate, &o.CompletedDate, &o.CreatedAt, &o.UpdatedAt,
		&o.CustomerName, &o.CustomerEmail, &o.CustomerPhone)
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (int64, error) {
	const query = `INSERT INTO orders (
            customer_id, order_number, service_type, quantity, status, total_amount,
            notes, file_url, file_name, file_size, file_mime, delivery_address, due_date,
            payment_method, payment_status, payment_reference, order_date, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW(), NOW())
        RETURNING id`
	var id int64
	err := r.storage.pool.QueryRow(ctx, query,
		order.CustomerID, order.OrderNumber, order.ServiceType, order.Quantity,
		order.Status, order.TotalAmount, order.Notes, order.FileURL, order.FileName,
		order.FileSize, order.FileMime, order.DeliveryAddress, order.DueDate,
		order.PaymentMethod, order.PaymentStatus, order.PaymentReference,
	).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.OrderWithCustomer, error) {
	const query = `SELECT o.id, o.customer_id, o.order_number, o.service_type, o.quantity, o.status,
            o.total_amount, o.notes, o.file_url, o.file_name, o.file_size, o.file_mime,
            o.delivery_address, o.due_date, o.payment_method, o.payment_status,
            o.payment_reference, o.order_date, o.completed_date, o.created_at, o.updated_at,
            c.name AS customer_name, c.email AS customer_email, c.phone AS customer_phone
        FROM orders o
        LEFT JOIN customers c ON o.customer_id = c.id
        WHERE o.id=$1`
	var o model.OrderWithCustomer
	if err := scanOrderWithCustomer(r.storage.pool.QueryRow(ctx, query, id), &o); err != nil {
		return nil, translateError(err)
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.OrderWithCustomer, error) {
	const query = `SELECT o.id, o.customer_id, o.order_number, o.service_type, o.quantity, o.status,
            o.total_amount, o.notes, o.file_url, o.file_name, o.file_size, o.file_mime,
            o.delivery_address, o.due_date, o.payment_method, o.payment_status,
            o.payment_reference, o.order_date, o.completed_date, o.created_at, o.updated_at,
            c.name AS customer_name, c.email AS customer_email, c.phone AS customer_phone
        FROM orders o
        LEFT JOIN customers c ON o.customer_id = c.id
        ORDER BY o.order_date DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderWithCustomer
	for rows.Next() {
		var o model.OrderWithCustomer
		if err := scanOrderWithCustomer(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE customer_id=$1 ORDER BY order_date DESC`
	return r.listOrders(ctx, query, customerID)
}

func (r *orderRepository) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	const query = `SELECT o.id, o.customer_id, o.order_number, o.service_type, o.quantity, o.status,
            o.total_amount, o.notes, o.file_url, o.file_name, o.file_size, o.file_mime,
            o.delivery_address, o.due_date, o.payment_method, o.payment_status,
            o.payment_reference, o.order_date, o.completed_date, o.created_at, o.updated_at
        FROM orders o
        JOIN customers c ON o.customer_id = c.id
        WHERE c.email=$1
        ORDER BY o.created_at DESC`
	return r.listOrders(ctx, query, email)
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) SetStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, status, id)
	return err
}

func (r *orderRepository) Replace(ctx context.Context, id int64, order *model.Order) error {
	const query = `UPDATE orders
        SET service_type=$1, quantity=$2, notes=$3, delivery_address=$4, due_date=$5,
            total_amount=$6, file_url=$7, file_name=$8, file_size=$9, file_mime=$10,
            status=$11, payment_status=$12, payment_method=$13, updated_at=NOW()
        WHERE id=$14`
	_, err := r.storage.pool.Exec(ctx, query,
		order.ServiceType, order.Quantity, order.Notes, order.DeliveryAddress, order.DueDate,
		order.TotalAmount, order.FileURL, order.FileName, order.FileSize, order.FileMime,
		order.Status, order.PaymentStatus, order.PaymentMethod, id)
	return err
}

// Delete removes the order unconditionally. A missing row is not an error.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}

// --- InventoryRepository implementation ---

const inventoryColumns = `id, item_name, category, stock_quantity, unit_price, low_stock_threshold,
        supplier, last_restocked, updated_at`

func scanItem(row pgx.Row, i *model.InventoryItem) error {
	return row.Scan(&i.ID, &i.ItemName, &i.Category, &i.StockQuantity, &i.UnitPrice,
		&i.LowStockThreshold, &i.Supplier, &i.LastRestocked, &i.UpdatedAt)
}

func (r *inventoryRepository) Create(ctx context.Context, item *model.InventoryItem) (int64, error) {
	const query = `INSERT INTO inventory (item_name, category, stock_quantity, unit_price, low_stock_threshold, supplier, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, NOW())
                   RETURNING id`
	var id int64
	err := r.storage.pool.QueryRow(ctx, query, item.ItemName, item.Category, item.StockQuantity,
		item.UnitPrice, item.LowStockThreshold, item.Supplier).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (r *inventoryRepository) GetByID(ctx context.Context, id int64) (*model.InventoryItem, error) {
	const query = `SELECT ` + inventoryColumns + ` FROM inventory WHERE id=$1`
	var item model.InventoryItem
	if err := scanItem(r.storage.pool.QueryRow(ctx, query, id), &item); err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

// List orders low-stock items first, then alphabetically by name.
func (r *inventoryRepository) List(ctx context.Context) ([]model.InventoryItem, error) {
	const query = `SELECT ` + inventoryColumns + ` FROM inventory
                   ORDER BY CASE WHEN stock_quantity <= low_stock_threshold THEN 0 ELSE 1 END,
                            item_name ASC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.InventoryItem
	for rows.Next() {
		var item model.InventoryItem
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *inventoryRepository) Update(ctx context.Context, id int64, item *model.InventoryItem) error {
	const query = `UPDATE inventory
                   SET item_name=$1, category=$2, stock_quantity=$3, unit_price=$4,
                       low_stock_threshold=$5, supplier=$6, updated_at=NOW()
                   WHERE id=$7`
	_, err := r.storage.pool.Exec(ctx, query, item.ItemName, item.Category, item.StockQuantity,
		item.UnitPrice, item.LowStockThreshold, item.Supplier, id)
	return err
}

// Adjust applies the delta in one statement. last_restocked advances only on
// positive deltas. Stock is allowed to go negative; callers validate floors.
func (r *inventoryRepository) Adjust(ctx context.Context, id int64, delta int) error {
	const query = `UPDATE inventory
                   SET stock_quantity = stock_quantity + $1,
                       updated_at = NOW(),
                       last_restocked = CASE WHEN $1 > 0 THEN NOW() ELSE last_restocked END
                   WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, delta, id)
	return err
}

func (r *inventoryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM inventory WHERE id=$1`, id)
	return err
}

// --- ContactRepository implementation ---

func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) (int64, error) {
	const query = `INSERT INTO contact_messages (name, email, phone, subject, message, status)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id`
	var id int64
	err := r.storage.pool.QueryRow(ctx, query, msg.Name, msg.Email, msg.Phone, msg.Subject,
		msg.Message, model.MessageStatusNew).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (r *contactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	const query = `SELECT id, name, email, phone, subject, message, status, created_at
                   FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contactRepository) SetStatus(ctx context.Context, id int64, status model.MessageStatus) error {
	const query = `UPDATE contact_messages SET status=$1 WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, status, id)
	return err
}

// --- StatsRepository implementation ---

func (r *statsRepository) OrderCounts(ctx context.Context) (model.OrderCounts, error) {
	const query = `SELECT COUNT(*) AS total,
                          COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending,
                          COUNT(CASE WHEN status = 'in-progress' THEN 1 END) AS in_progress,
                          COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed
                   FROM orders`
	var c model.OrderCounts
	err := r.storage.pool.QueryRow(ctx, query).Scan(&c.Total, &c.Pending, &c.InProgress, &c.Completed)
	return c, err
}

func (r *statsRepository) InventoryTotals(ctx context.Context) (model.InventoryTotals, error) {
	const query = `SELECT COUNT(*) AS total,
                          COALESCE(SUM(stock_quantity), 0) AS total_items,
                          COUNT(CASE WHEN stock_quantity <= low_stock_threshold THEN 1 END) AS low_stock_items
                   FROM inventory`
	var t model.InventoryTotals
	err := r.storage.pool.QueryRow(ctx, query).Scan(&t.Items, &t.StockUnits, &t.LowStock)
	return t, err
}

func (r *statsRepository) CustomerCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) AS total FROM customers`).Scan(&total)
	return total, err
}

// RevenueTotals sums completed orders; the 30-day window is relative to
// query time.
func (r *statsRepository) RevenueTotals(ctx context.Context) (model.RevenueTotals, error) {
	const query = `SELECT COALESCE(SUM(total_amount), 0) AS total_revenue,
                          COALESCE(SUM(CASE WHEN order_date >= NOW() - INTERVAL '30 days' THEN total_amount ELSE 0 END), 0) AS monthly_revenue
                   FROM orders WHERE status = 'completed'`
	var t model.RevenueTotals
	err := r.storage.pool.QueryRow(ctx, query).Scan(&t.Total, &t.Last30Days)
	return t, err
}

func (r *statsRepository) LowStockItems(ctx context.Context, limit int) ([]model.LowStockItem, error) {
	const query = `SELECT item_name, stock_quantity, low_stock_threshold
                   FROM inventory
                   WHERE stock_quantity <= low_stock_threshold
                   ORDER BY stock_quantity ASC
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.LowStockItem
	for rows.Next() {
		var item model.LowStockItem
		if err := rows.Scan(&item.ItemName, &item.StockQuantity, &item.LowStockThreshold); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *statsRepository) CustomerStats(ctx context.Context, customerID int64) (model.CustomerStats, error) {
	const query = `SELECT COUNT(*) AS completed_orders,
                          COALESCE(SUM(total_amount), 0) AS total_spent,
                          COALESCE(AVG(total_amount), 0) AS average_order_value
                   FROM orders WHERE customer_id=$1 AND status = 'completed'`
	var s model.CustomerStats
	err := r.storage.pool.QueryRow(ctx, query, customerID).Scan(&s.CompletedOrders, &s.TotalSpent, &s.AverageOrderValue)
	return s, err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
