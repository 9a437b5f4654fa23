package domain

import "github.com/shopspring/decimal"

// Drug is a catalog item. Names are not unique; two drugs may share a name
// and are never merged.
type Drug struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Quantity    int64           `db:"quantity" json:"quantity"`
	Description string          `db:"description" json:"description"`
}
