// Package accounts serves read-only account lookups.
package accounts

import "github.com/shopspring/decimal"

// Account mirrors a Salesforce account record.
type Account struct {
	ID            string          `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	AccountNumber *string         `db:"account_number" json:"account_number"`
	Type          *string         `db:"type" json:"type"`
	Industry      *string         `db:"industry" json:"industry"`
	Phone         *string         `db:"phone" json:"phone"`
	BillingCity   *string         `db:"billing_city" json:"billing_city"`
	CreditLimit   decimal.Decimal `db:"credit_limit" json:"credit_limit"`
	IsActive      bool            `db:"is_active" json:"is_active"`
}

// ListFilter narrows an account list query.
type ListFilter struct {
	Search string

	// OwnerID limits results to accounts owned by that user.
	OwnerID string

	Page     int
	PageSize int
}
