// Package postgres implements the reference-data and bill stores on a
// pgx connection pool.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/VinodVibhashana/BakeryManagementSystem/internal/domain"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) ListRecipes(ctx context.Context) ([]string, error) {
	const query = `SELECT name FROM recipes ORDER BY name`

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) CreateRecipe(ctx context.Context, name string) error {
	const stmt = `INSERT INTO recipes (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	if _, err := s.exec(ctx, stmt, name); err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

func (s *Store) GetPrice(ctx context.Context, name string) (decimal.Decimal, error) {
	const query = `SELECT price::text FROM prices WHERE name = $1`

	var raw string
	if err := s.queryRow(ctx, query, name).Scan(&raw); err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Decimal{}, domain.ErrPriceNotFound
		}
		return decimal.Decimal{}, fmt.Errorf("get price: %w", err)
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse price %q: %w", raw, err)
	}
	return price, nil
}

func (s *Store) SetPrice(ctx context.Context, name string, price decimal.Decimal) error {
	const stmt = `
INSERT INTO prices (name, price) VALUES ($1, $2::numeric)
ON CONFLICT (name) DO UPDATE SET price = EXCLUDED.price`

	if _, err := s.exec(ctx, stmt, name, price.String()); err != nil {
		return fmt.Errorf("set price: %w", err)
	}
	return nil
}

func (s *Store) GetQuantity(ctx context.Context, name string) (int, error) {
	const query = `SELECT quantity FROM stock_levels WHERE name = $1`

	var qty int
	if err := s.queryRow(ctx, query, name).Scan(&qty); err != nil {
		if err == pgx.ErrNoRows {
			return 0, domain.ErrItemNotFound
		}
		return 0, fmt.Errorf("get quantity: %w", err)
	}
	return qty, nil
}

func (s *Store) SetQuantity(ctx context.Context, name string, quantity int) error {
	const stmt = `
INSERT INTO stock_levels (name, quantity) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET quantity = EXCLUDED.quantity`

	if _, err := s.exec(ctx, stmt, name, quantity); err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	return nil
}

func (s *Store) ListQuantities(ctx context.Context) ([]domain.StockLevel, error) {
	const query = `SELECT name, quantity FROM stock_levels ORDER BY name`

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list quantities: %w", err)
	}
	defer rows.Close()

	var levels []domain.StockLevel
	for rows.Next() {
		var level domain.StockLevel
		if err := rows.Scan(&level.Name, &level.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

// AppendBill writes the bill header and its lines in one transaction.
func (s *Store) AppendBill(ctx context.Context, bill domain.Bill) error {
	return withTx(ctx, s.pool, func(txCtx context.Context) error {
		const billStmt = `INSERT INTO bills (id, total, created_at) VALUES ($1, $2::numeric, $3)`
		if _, err := s.exec(txCtx, billStmt, bill.ID, bill.Total.String(), bill.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("bill %s already exists: %w", bill.ID, err)
			}
			return fmt.Errorf("insert bill: %w", err)
		}

		const lineStmt = `
INSERT INTO bill_lines (bill_id, position, name, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5::numeric)`
		for i, line := range bill.Lines {
			if _, err := s.exec(txCtx, lineStmt, bill.ID, i, line.Name, line.Quantity, line.UnitPrice.String()); err != nil {
				return fmt.Errorf("insert bill line: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) GetBill(ctx context.Context, id string) (domain.Bill, error) {
	const billQuery = `SELECT id, total::text, created_at FROM bills WHERE id = $1`

	var bill domain.Bill
	var rawTotal string
	if err := s.queryRow(ctx, billQuery, id).Scan(&bill.ID, &rawTotal, &bill.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return domain.Bill{}, domain.ErrBillNotFound
		}
		return domain.Bill{}, fmt.Errorf("get bill: %w", err)
	}

	total, err := decimal.NewFromString(rawTotal)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("parse total %q: %w", rawTotal, err)
	}
	bill.Total = total

	lines, err := s.billLines(ctx, id)
	if err != nil {
		return domain.Bill{}, err
	}
	bill.Lines = lines
	return bill, nil
}

func (s *Store) ListBills(ctx context.Context) ([]domain.Bill, error) {
	const query = `SELECT id, total::text, created_at FROM bills ORDER BY created_at`

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		var bill domain.Bill
		var rawTotal string
		if err := rows.Scan(&bill.ID, &rawTotal, &bill.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		total, err := decimal.NewFromString(rawTotal)
		if err != nil {
			return nil, fmt.Errorf("parse total %q: %w", rawTotal, err)
		}
		bill.Total = total
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range bills {
		lines, err := s.billLines(ctx, bills[i].ID)
		if err != nil {
			return nil, err
		}
		bills[i].Lines = lines
	}
	return bills, nil
}

func (s *Store) billLines(ctx context.Context, billID string) ([]domain.LineItem, error) {
	const query = `
SELECT name, quantity, unit_price::text
FROM bill_lines
WHERE bill_id = $1
ORDER BY position`

	rows, err := s.query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("list bill lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.LineItem
	for rows.Next() {
		var line domain.LineItem
		var rawPrice string
		if err := rows.Scan(&line.Name, &line.Quantity, &rawPrice); err != nil {
			return nil, fmt.Errorf("scan bill line: %w", err)
		}
		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			return nil, fmt.Errorf("parse unit price %q: %w", rawPrice, err)
		}
		line.UnitPrice = price
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *Store) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return s.pool.Exec(ctx, sql, args...)
}

func (s *Store) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return s.pool.QueryRow(ctx, sql, args...)
}

func (s *Store) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return s.pool.Query(ctx, sql, args...)
}
