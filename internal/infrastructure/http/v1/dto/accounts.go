package dto

import "agent360/internal/domain/accounts"

type AccountResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AccountNumber *string `json:"account_number"`
	Type          *string `json:"type"`
	Industry      *string `json:"industry"`
	Phone         *string `json:"phone"`
	BillingCity   *string `json:"billing_city"`
	CreditLimit   float64 `json:"credit_limit"`
	IsActive      bool    `json:"is_active"`
}

func FromAccount(a *accounts.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		Name:          a.Name,
		AccountNumber: a.AccountNumber,
		Type:          a.Type,
		Industry:      a.Industry,
		Phone:         a.Phone,
		BillingCity:   a.BillingCity,
		CreditLimit:   a.CreditLimit.InexactFloat64(),
		IsActive:      a.IsActive,
	}
}

func FromAccounts(items []accounts.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(items))
	for i := range items {
		out = append(out, FromAccount(&items[i]))
	}
	return out
}
