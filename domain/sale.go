package domain

import "github.com/shopspring/decimal"

// Sale records one completed transaction. TotalPrice is fixed at sale time
// and never recomputed, even if the drug's price changes later. Date is a
// calendar day in YYYY-MM-DD form with no time component.
type Sale struct {
	ID         int64           `db:"id" json:"id"`
	DrugID     int64           `db:"drug_id" json:"drug_id"`
	Quantity   int64           `db:"quantity" json:"quantity"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
	Date       string          `db:"sale_date" json:"sale_date"`
}
