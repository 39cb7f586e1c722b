package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoleCustomer is the role every registered account receives.
const RoleCustomer = "customer"


// ReservedUsernames collide with fixed routes under /customers and cannot be
// registered.
var ReservedUsernames = []string{"login", "me", "register"}

// Accepted values for the optional profile enumerations.
var (
	Genders         = []string{"Male", "Female", "Other"}
	MaritalStatuses = []string{"Single", "Married", "Divorced", "Widowed"}
)

// Customer is an account: profile, credentials and wallet.
type Customer struct {
	ID            uint            `json:"id"`
	FullName      string          `json:"full_name"`
	Username      string          `json:"username"`
	PasswordHash  string          `json:"-"`
	Age           int             `json:"age"`
	Address       string          `json:"address"`
	Gender        *string         `json:"gender"`
	MaritalStatus *string         `json:"marital_status"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	Role          string          `json:"role"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CustomerPatch lists the profile fields an update may touch. A nil field is
// left unchanged.
type CustomerPatch struct {
	FullName      *string
	PasswordHash  *string
	Age           *int
	Address       *string
	Gender        *string
	MaritalStatus *string
}

// Apply copies every present field of p onto c.
func (p CustomerPatch) Apply(c *Customer) {
	if p.FullName != nil {
		c.FullName = *p.FullName
	}
	if p.PasswordHash != nil {
		c.PasswordHash = *p.PasswordHash
	}
	if p.Age != nil {
		c.Age = *p.Age
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Gender != nil {
		c.Gender = p.Gender
	}
	if p.MaritalStatus != nil {
		c.MaritalStatus = p.MaritalStatus
	}
}
