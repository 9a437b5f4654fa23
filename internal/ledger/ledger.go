package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"pharmadesk/domain"
)

const dateLayout = "2006-01-02"

// Ledger mediates every drug and sale mutation through the store. It keeps
// no cache: each operation reads fresh and commits before returning.
type Ledger struct {
	db  *sqlx.DB
	now func() time.Time
}

func New(db *sqlx.DB) *Ledger {
	return &Ledger{db: db, now: time.Now}
}

// AddDrugParams carries the fields for a new drug. The interface layer owns
// parsing; by the time these reach the ledger they only need range checks.
type AddDrugParams struct {
	Name        string
	Price       decimal.Decimal
	Quantity    int64
	Description string
}

// AddDrug creates a drug with a store-assigned identifier. Duplicate names
// are allowed and never merged.
func (l *Ledger) AddDrug(ctx context.Context, p AddDrugParams) (*domain.Drug, error) {
	if p.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if p.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	res, err := l.db.ExecContext(ctx, `INSERT INTO drugs (name, price, quantity, description) VALUES (?, ?, ?, ?)`,
		p.Name, p.Price, p.Quantity, p.Description)
	if err != nil {
		return nil, fmt.Errorf("insert drug: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domain.Drug{ID: id, Name: p.Name, Price: p.Price, Quantity: p.Quantity, Description: p.Description}, nil
}

// UpdateDrugParams holds optional replacement fields. A nil field keeps the
// drug's current value.
type UpdateDrugParams struct {
	Name        *string
	Price       *decimal.Decimal
	Quantity    *int64
	Description *string
}

// UpdateDrug mutates the first drug matching name in place. When duplicate
// names exist the lowest identifier wins; the identifier never changes.
func (l *Ledger) UpdateDrug(ctx context.Context, name string, p UpdateDrugParams) (*domain.Drug, error) {
	drug, err := l.GetDrugByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		drug.Name = *p.Name
	}
	if p.Price != nil {
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		drug.Price = *p.Price
	}
	if p.Quantity != nil {
		if *p.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
		}
		drug.Quantity = *p.Quantity
	}
	if p.Description != nil {
		drug.Description = *p.Description
	}

	_, err = l.db.ExecContext(ctx, `UPDATE drugs SET name = ?, price = ?, quantity = ?, description = ? WHERE id = ?`,
		drug.Name, drug.Price, drug.Quantity, drug.Description, drug.ID)
	if err != nil {
		return nil, fmt.Errorf("update drug: %w", err)
	}
	return drug, nil
}

// DeleteDrug removes a drug by identifier. Sales referencing it are kept;
// reports show them under "Unknown".
func (l *Ledger) DeleteDrug(ctx context.Context, id int64) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM drugs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete drug: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetDrugByName returns the drug with the given exact name, lowest
// identifier first when duplicates exist.
func (l *Ledger) GetDrugByName(ctx context.Context, name string) (*domain.Drug, error) {
	var drug domain.Drug
	err := l.db.GetContext(ctx, &drug, `SELECT id, name, price, quantity, description FROM drugs WHERE name = ? ORDER BY id ASC LIMIT 1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up drug: %w", err)
	}
	return &drug, nil
}

// GetDrugByID returns the drug with the given identifier.
func (l *Ledger) GetDrugByID(ctx context.Context, id int64) (*domain.Drug, error) {
	var drug domain.Drug
	err := l.db.GetContext(ctx, &drug, `SELECT id, name, price, quantity, description FROM drugs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up drug: %w", err)
	}
	return &drug, nil
}

// Sell decrements stock and records the sale as one transaction: either the
// drug row and the new sale row both commit, or neither does. The total is
// the drug's current unit price times quantity, frozen on the sale record.
func (l *Ledger) Sell(ctx context.Context, name string, quantity int64) (*domain.Sale, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin sale: %w", err)
	}
	defer tx.Rollback()

	var drug domain.Drug
	err = tx.GetContext(ctx, &drug, `SELECT id, name, price, quantity, description FROM drugs WHERE name = ? ORDER BY id ASC LIMIT 1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up drug: %w", err)
	}
	if drug.Quantity < quantity {
		return nil, ErrInsufficientStock
	}

	total := drug.Price.Mul(decimal.NewFromInt(quantity))
	saleDate := l.now().Format(dateLayout)

	if _, err := tx.ExecContext(ctx, `UPDATE drugs SET quantity = quantity - ? WHERE id = ?`, quantity, drug.ID); err != nil {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO sales (drug_id, quantity, total_price, sale_date) VALUES (?, ?, ?, ?)`,
		drug.ID, quantity, total, saleDate)
	if err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}
	saleID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sale: %w", err)
	}

	return &domain.Sale{ID: saleID, DrugID: drug.ID, Quantity: quantity, TotalPrice: total, Date: saleDate}, nil
}
