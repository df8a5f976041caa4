package ledger

import (
	"github.com/shopspring/decimal"
)

// Wire types mirror the remote JSON. Amounts arrive as decimal strings.

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"group_type"`
}

type Balance struct {
	CurrencyCode string          `json:"currency_code"`
	Amount       decimal.Decimal `json:"amount"`
}

type Friend struct {
	User
	Balance []Balance `json:"balance"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Participant struct {
	UserID    int64               `json:"user_id"`
	User      User                `json:"user"`
	PaidShare decimal.NullDecimal `json:"paid_share"`
	OwedShare decimal.NullDecimal `json:"owed_share"`
}

type Expense struct {
	ID           int64               `json:"id"`
	GroupID      *int64              `json:"group_id"`
	Description  string              `json:"description"`
	Payment      bool                `json:"payment"`
	Cost         decimal.NullDecimal `json:"cost"`
	CurrencyCode string              `json:"currency_code"`
	Date         string              `json:"date"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
	DeletedAt    *string             `json:"deleted_at"`
	Category     *Category           `json:"category"`
	Users        []Participant       `json:"users"`
}

type currentUserResponse struct {
	User User `json:"user"`
}

type groupsResponse struct {
	Groups []Group `json:"groups"`
}

type friendsResponse struct {
	Friends []Friend `json:"friends"`
}

type expensesResponse struct {
	Expenses []Expense `json:"expenses"`
}
