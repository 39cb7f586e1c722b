package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale links a customer, a product, a quantity and the price paid. The
// customer and product ids are plain references and are not checked.
type Sale struct {
	ID         uint            `json:"id"`
	CustomerID uint            `json:"customer_id"`
	ProductID  uint            `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SalePatch holds the optional fields of a sale update. CreatedAt is never
// patchable.
type SalePatch struct {
	CustomerID *uint
	ProductID  *uint
	Quantity   *int
	TotalPrice *decimal.Decimal
}

// Apply copies every present field of p onto s.
func (p SalePatch) Apply(s *Sale) {
	if p.CustomerID != nil {
		s.CustomerID = *p.CustomerID
	}
	if p.ProductID != nil {
		s.ProductID = *p.ProductID
	}
	if p.Quantity != nil {
		s.Quantity = *p.Quantity
	}
	if p.TotalPrice != nil {
		s.TotalPrice = RoundMoney(*p.TotalPrice)
	}
}
