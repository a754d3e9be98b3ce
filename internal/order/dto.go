package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CartItem is one line of an order payload.
// swagger:model CartItem
type CartItem struct {
	ProductID int64 `json:"product_id" binding:"required,min=1" example:"12"`
	Quantity  int   `json:"quantity" binding:"required,min=1" example:"2"`
}

// CreateOrderRequest is the payload for creating or updating an order.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	UserID         int64      `json:"user_id" binding:"required,min=1" example:"4"`
	FullName       string     `json:"fullname" binding:"required" example:"Nguyen Van A"`
	Email          string     `json:"email" binding:"omitempty,email" example:"a@example.com"`
	PhoneNumber    string     `json:"phone_number" binding:"required,min=5" example:"0901234567"`
	Address        string     `json:"address" binding:"required" example:"12 Ly Thuong Kiet, Ha Noi"`
	Note           string     `json:"note"`
	TotalMoney     float64    `json:"total_money" binding:"gte=0" example:"1500000"`
	ShippingMethod string     `json:"shipping_method" example:"express"`
	PaymentMethod  string     `json:"payment_method" example:"cod"`
	CartItems      []CartItem `json:"cart_items" binding:"omitempty,dive"`
}

// OrderListResponse is one page of a keyword search.
// swagger:model OrderListResponse
type OrderListResponse struct {
	Orders     []Order `json:"orders"`
	TotalPages int     `json:"totalPages"`
}

// ValidationError carries one message per violated field constraint, in the
// order the fields are declared.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// ValidationMessages turns a binding error into client-facing field messages.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid request body"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
