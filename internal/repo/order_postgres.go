package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/acrispim/shopdash/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(o models.Order) (models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, err
	}
	defer tx.Rollback()

	var name, email, phone sql.NullString
	if o.User != nil {
		name = sql.NullString{String: o.User.Name, Valid: true}
		email = sql.NullString{String: o.User.Email, Valid: true}
		phone = sql.NullString{String: o.User.Phone, Valid: true}
	}

	query := `INSERT INTO orders (id, created_at, total_amount, status, customer_name, customer_email, customer_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, query, o.ID, o.CreatedAt, o.TotalAmount, o.Status, name, email, phone); err != nil {
		return models.Order{}, err
	}

	itemQuery := `INSERT INTO order_items (order_id, product_id, product_name, product_price, quantity, price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range o.Items {
		if _, err := tx.ExecContext(ctx, itemQuery, o.ID, item.Product.ID, item.Product.Name, item.Product.Price, item.Quantity, item.Price); err != nil {
			return models.Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (r *PostgresOrderRepository) GetAll() ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := `SELECT id, created_at, total_amount, status, customer_name, customer_email, customer_phone
		FROM orders ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	index := make(map[string]int)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemQuery := `SELECT order_id, product_id, product_name, product_price, quantity, price FROM order_items`
	itemRows, err := r.db.QueryContext(ctx, itemQuery)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item models.OrderItem
		if err := itemRows.Scan(&orderID, &item.Product.ID, &item.Product.Name, &item.Product.Price, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return orders, itemRows.Err()
}

func (r *PostgresOrderRepository) GetByID(id string) (models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := `SELECT id, created_at, total_amount, status, customer_name, customer_email, customer_phone
		FROM orders WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	itemQuery := `SELECT order_id, product_id, product_name, product_price, quantity, price
		FROM order_items WHERE order_id = $1`
	rows, err := r.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		return models.Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item models.OrderItem
		if err := rows.Scan(&orderID, &item.Product.ID, &item.Product.Name, &item.Product.Price, &item.Quantity, &item.Price); err != nil {
			return models.Order{}, err
		}
		o.Items = append(o.Items, item)
	}
	return o, rows.Err()
}

func (r *PostgresOrderRepository) UpdateStatus(id, status string) (models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := `UPDATE orders SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return models.Order{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Order{}, ErrOrderNotFound
	}
	return r.GetByID(id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (models.Order, error) {
	var o models.Order
	var name, email, phone sql.NullString
	if err := row.Scan(&o.ID, &o.CreatedAt, &o.TotalAmount, &o.Status, &name, &email, &phone); err != nil {
		return models.Order{}, err
	}
	if name.Valid {
		o.User = &models.OrderCustomer{Name: name.String, Email: email.String, Phone: phone.String}
	}
	return o, nil
}
