package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hpham16/server-shopapp/internal/pagination"
	"github.com/hpham16/server-shopapp/internal/stats"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order, items []CartItem) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	Update(ctx context.Context, o *Order) error
	SoftDelete(ctx context.Context, id int64) error
	CountByKeyword(ctx context.Context, keyword string) (int, error)
	SearchByKeyword(ctx context.Context, keyword string, w pagination.Window, s pagination.Sort) ([]Order, error)
	RevenueByMonth(ctx context.Context, month *int) ([]stats.Row, error)
	RevenueByProduct(ctx context.Context, nameFilter string) ([]stats.Row, error)
	RevenueByCategory(ctx context.Context, nameFilter string) ([]stats.Row, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const orderColumns = `id, user_id, fullname, email, phone_number, address, note,
	status, total_money::text, shipping_method, payment_method, active, created_at, updated_at`

// Keyword matching is a case-insensitive substring over the order's text
// fields; an empty keyword matches every active order.
const keywordFilter = `active AND ($1 = ''
	OR fullname ILIKE '%'||$1||'%'
	OR address ILIKE '%'||$1||'%'
	OR note ILIKE '%'||$1||'%'
	OR phone_number ILIKE '%'||$1||'%')`

func (r *PGRepo) Create(ctx context.Context, o *Order, items []CartItem) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := scanOrder(tx.QueryRow(ctx, `
    INSERT INTO orders (user_id, fullname, email, phone_number, address, note,
                        status, total_money, shipping_method, payment_method, active, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8::numeric,$9,$10,TRUE,NOW(),NOW())
    RETURNING `+orderColumns+`
  `, o.UserID, o.FullName, o.Email, o.PhoneNumber, o.Address, o.Note,
		o.Status, o.TotalMoney.String(), o.ShippingMethod, o.PaymentMethod), o); err != nil {
		return err
	}

	for _, it := range items {
		// Item price is snapshotted from the product catalog at creation time.
		tag, err := tx.Exec(ctx, `
      INSERT INTO order_details (order_id, product_id, price, number_of_products)
      SELECT $1, p.id, p.price, $3 FROM products p WHERE p.id = $2
    `, o.ID, it.ProductID, it.Quantity)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrProductNotFound
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	items2, err := r.itemsByOrder(ctx, o.ID)
	if err != nil {
		return err
	}
	o.Items = items2
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	err := scanOrder(r.db.QueryRow(ctx, `
    SELECT `+orderColumns+` FROM orders WHERE id=$1
  `, id), &o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Items, err = r.itemsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT `+orderColumns+` FROM orders
    WHERE user_id=$1 AND active
    ORDER BY created_at DESC
  `, userID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *PGRepo) Update(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET fullname = $2, email = $3, phone_number = $4, address = $5, note = $6,
        total_money = $7::numeric, shipping_method = $8, payment_method = $9, updated_at = NOW()
    WHERE id = $1
  `, o.ID, o.FullName, o.Email, o.PhoneNumber, o.Address, o.Note,
		o.TotalMoney.String(), o.ShippingMethod, o.PaymentMethod)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete flips the active flag and keeps the record. Re-deleting an
// already-inactive order matches a row again, so the operation is idempotent.
func (r *PGRepo) SoftDelete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders SET active = FALSE, updated_at = NOW() WHERE id = $1
  `, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) CountByKeyword(ctx context.Context, keyword string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE `+keywordFilter, keyword).Scan(&n)
	return n, err
}

func (r *PGRepo) SearchByKeyword(ctx context.Context, keyword string, w pagination.Window, s pagination.Sort) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT `+orderColumns+` FROM orders
    WHERE `+keywordFilter+`
    ORDER BY `+orderClause(s)+`
    LIMIT $2 OFFSET $3
  `, keyword, w.Limit, w.Offset)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

// orderClause resolves the sort strategy against the whitelisted columns;
// anything else falls back to the default ascending id.
func orderClause(s pagination.Sort) string {
	col := "id"
	switch s.Field {
	case "id", "":
	case "created_at":
		col = "created_at"
	default:
		return "id ASC"
	}
	if s.Desc {
		return col + " DESC"
	}
	return col + " ASC"
}

// RevenueByMonth groups active orders by calendar (month, year). With a month
// filter the query is restricted to that month across all years and gains a
// product-count column, so filtered rows are 4 wide and unfiltered rows 3.
func (r *PGRepo) RevenueByMonth(ctx context.Context, month *int) ([]stats.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if month == nil {
		rows, err := r.db.Query(ctx, `
      SELECT EXTRACT(MONTH FROM o.created_at)::int,
             EXTRACT(YEAR FROM o.created_at)::int,
             COALESCE(SUM(o.total_money), 0)::float8
      FROM orders o
      WHERE o.active
      GROUP BY 1, 2
      ORDER BY 2, 1
    `)
		if err != nil {
			return nil, err
		}
		return collectRows(rows)
	}
	rows, err := r.db.Query(ctx, `
    SELECT EXTRACT(MONTH FROM o.created_at)::int,
           EXTRACT(YEAR FROM o.created_at)::int,
           COALESCE(SUM(od.price * od.number_of_products), 0)::float8,
           COALESCE(SUM(od.number_of_products), 0)::int
    FROM orders o
    LEFT JOIN order_details od ON od.order_id = o.id
    WHERE o.active AND EXTRACT(MONTH FROM o.created_at) = $1
    GROUP BY 1, 2
    ORDER BY 2, 1
  `, *month)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

func (r *PGRepo) RevenueByProduct(ctx context.Context, nameFilter string) ([]stats.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT p.name,
           COALESCE(SUM(od.price * od.number_of_products), 0)::float8,
           COALESCE(SUM(od.number_of_products), 0)::int
    FROM order_details od
    JOIN orders o ON o.id = od.order_id
    JOIN products p ON p.id = od.product_id
    WHERE o.active AND ($1 = '' OR p.name ILIKE '%'||$1||'%')
    GROUP BY p.name
    ORDER BY 2 DESC
  `, nameFilter)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

func (r *PGRepo) RevenueByCategory(ctx context.Context, nameFilter string) ([]stats.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT c.name,
           COALESCE(SUM(od.price * od.number_of_products), 0)::float8,
           COALESCE(SUM(od.number_of_products), 0)::int
    FROM order_details od
    JOIN orders o ON o.id = od.order_id
    JOIN products p ON p.id = od.product_id
    JOIN categories c ON c.id = p.category_id
    WHERE o.active AND ($1 = '' OR c.name ILIKE '%'||$1||'%')
    GROUP BY c.name
    ORDER BY 2 DESC
  `, nameFilter)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

func (r *PGRepo) itemsByOrder(ctx context.Context, orderID int64) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, product_id, price::text, number_of_products
    FROM order_details WHERE order_id = $1
    ORDER BY id
  `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		var it Item
		var price string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &price, &it.NumberOfProducts); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanOrder(row pgx.Row, o *Order) error {
	var total string
	if err := row.Scan(&o.ID, &o.UserID, &o.FullName, &o.Email, &o.PhoneNumber,
		&o.Address, &o.Note, &o.Status, &total, &o.ShippingMethod, &o.PaymentMethod,
		&o.Active, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}
	var err error
	o.TotalMoney, err = decimal.NewFromString(total)
	return err
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	defer rows.Close()
	out := []Order{}
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func collectRows(rows pgx.Rows) ([]stats.Row, error) {
	defer rows.Close()
	out := []stats.Row{}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		out = append(out, stats.Row(vals))
	}
	return out, rows.Err()
}
