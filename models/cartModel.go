package models

import "github.com/shopspring/decimal"

// CartLine is one product in a cart with the quantity the customer selected.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type CartItemData struct {
	ProductID uint `json:"productId" binding:"required"`
}

// CartView is the priced read model returned to clients.
type CartView struct {
	Items []CartViewLine  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type CartViewLine struct {
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}
