package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

// Models passed to Migrate by each service binary.
var (
	CustomerModel = &customerModel{}
	ProductModel  = &productModel{}
	SaleModel     = &saleModel{}
	ReviewModel   = &reviewModel{}
)

type customerModel struct {
	ID            uint            `gorm:"primaryKey"`
	FullName      string          `gorm:"size:100;not null"`
	Username      string          `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash  string          `gorm:"size:255;not null"`
	Age           int             `gorm:"not null"`
	Address       string          `gorm:"size:255;not null"`
	Gender        *string         `gorm:"size:10"`
	MaritalStatus *string         `gorm:"size:20"`
	WalletBalance decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Role          string          `gorm:"size:20;not null;default:customer"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (customerModel) TableName() string { return "customers" }

func newCustomerModel(c *domain.Customer) *customerModel {
	return &customerModel{
		ID:            c.ID,
		FullName:      c.FullName,
		Username:      c.Username,
		PasswordHash:  c.PasswordHash,
		Age:           c.Age,
		Address:       c.Address,
		Gender:        c.Gender,
		MaritalStatus: c.MaritalStatus,
		WalletBalance: c.WalletBalance,
		Role:          c.Role,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *customerModel) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:            m.ID,
		FullName:      m.FullName,
		Username:      m.Username,
		PasswordHash:  m.PasswordHash,
		Age:           m.Age,
		Address:       m.Address,
		Gender:        m.Gender,
		MaritalStatus: m.MaritalStatus,
		WalletBalance: m.WalletBalance,
		Role:          m.Role,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type productModel struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;not null"`
	Description *string         `gorm:"size:255"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productModel) TableName() string { return "products" }

func newProductModel(p *domain.Product) *productModel {
	return &productModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *productModel) toDomain() *domain.Product {
	return &domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Quantity:    m.Quantity,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type saleModel struct {
	ID         uint            `gorm:"primaryKey"`
	CustomerID uint            `gorm:"not null;index"`
	ProductID  uint            `gorm:"not null;index"`
	Quantity   int             `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

func (saleModel) TableName() string { return "sales" }

func newSaleModel(s *domain.Sale) *saleModel {
	return &saleModel{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *saleModel) toDomain() *domain.Sale {
	return &domain.Sale{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		TotalPrice: m.TotalPrice,
		CreatedAt:  m.CreatedAt,
	}
}

type reviewModel struct {
	ID         uint       `gorm:"primaryKey"`
	ProductID  uint       `gorm:"not null;index"`
	CustomerID uint       `gorm:"not null;index"`
	Rating     int        `gorm:"not null"`
	Comment    *string    `gorm:"size:500"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  *time.Time `gorm:"autoUpdateTime:false"`
}

func (reviewModel) TableName() string { return "reviews" }

func newReviewModel(r *domain.Review) *reviewModel {
	return &reviewModel{
		ID:         r.ID,
		ProductID:  r.ProductID,
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (m *reviewModel) toDomain() *domain.Review {
	return &domain.Review{
		ID:         m.ID,
		ProductID:  m.ProductID,
		CustomerID: m.CustomerID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
