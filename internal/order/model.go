package order

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

type Order struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	FullName       string          `json:"fullname"`
	Email          string          `json:"email"`
	PhoneNumber    string          `json:"phone_number"`
	Address        string          `json:"address"`
	Note           string          `json:"note"`
	Status         string          `json:"status"`
	TotalMoney     decimal.Decimal `json:"total_money"` // NUMERIC -> scanned as text
	ShippingMethod string          `json:"shipping_method"`
	PaymentMethod  string          `json:"payment_method"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Items          []Item          `json:"items,omitempty"`
}

type Item struct {
	ID               int64           `json:"id"`
	OrderID          int64           `json:"order_id"`
	ProductID        int64           `json:"product_id"`
	Price            decimal.Decimal `json:"price"`
	NumberOfProducts int             `json:"number_of_products"`
}
