package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleRow is one report line: a sale joined to its drug's current name.
// Sales whose drug was later deleted report the name "Unknown".
type SaleRow struct {
	DrugName   string          `db:"drug_name"`
	Quantity   int64           `db:"quantity"`
	TotalPrice decimal.Decimal `db:"total_price"`
	Date       string          `db:"sale_date"`
}

// SalesReport is the set of sales for one calendar day plus their sum.
type SalesReport struct {
	Date  string
	Rows  []SaleRow
	Total decimal.Decimal
}

// StockLine is one drug's current quantity on hand.
type StockLine struct {
	Name     string `db:"name"`
	Quantity int64  `db:"quantity"`
}

const saleRowQuery = `SELECT COALESCE(d.name, 'Unknown') AS drug_name, s.quantity, s.total_price, s.sale_date
	FROM sales s
	LEFT JOIN drugs d ON d.id = s.drug_id`

// DailySalesReport lists every sale dated to the given day and their total.
// An empty day yields a report with no rows and a zero total.
func (l *Ledger) DailySalesReport(ctx context.Context, date time.Time) (*SalesReport, error) {
	day := date.Format(dateLayout)

	var rows []SaleRow
	err := l.db.SelectContext(ctx, &rows, saleRowQuery+` WHERE s.sale_date = ? ORDER BY s.id ASC`, day)
	if err != nil {
		return nil, fmt.Errorf("daily sales report: %w", err)
	}

	report := &SalesReport{Date: day, Rows: rows, Total: decimal.Zero}
	for _, row := range rows {
		report.Total = report.Total.Add(row.TotalPrice)
	}
	return report, nil
}

// StockReport lists every drug's name and quantity on hand.
func (l *Ledger) StockReport(ctx context.Context) ([]StockLine, error) {
	var lines []StockLine
	err := l.db.SelectContext(ctx, &lines, `SELECT name, quantity FROM drugs ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}
	return lines, nil
}

// OrderHistoryReport lists every sale ever recorded, with its date.
func (l *Ledger) OrderHistoryReport(ctx context.Context) ([]SaleRow, error) {
	var rows []SaleRow
	err := l.db.SelectContext(ctx, &rows, saleRowQuery+` ORDER BY s.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("order history report: %w", err)
	}
	return rows, nil
}
