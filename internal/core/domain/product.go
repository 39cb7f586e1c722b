package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item.
type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// ProductPatch holds the optional fields of a catalog update.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
}

// Apply copies every present field of p onto prod.
func (p ProductPatch) Apply(prod *Product) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Description != nil {
		prod.Description = p.Description
	}
	if p.Price != nil {
		prod.Price = RoundMoney(*p.Price)
	}
	if p.Quantity != nil {
		prod.Quantity = *p.Quantity
	}
}
