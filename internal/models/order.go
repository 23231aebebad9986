package models

import "time"

// OrderCustomer is the customer attached to an order. Guest checkouts have no
// customer, so orders carry it as a pointer.
type OrderCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ProductRef is the product snapshot embedded in an order line item.
type ProductRef struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderItem is a single line of an order. Price is the unit price at the time
// the order was placed.
type OrderItem struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
	Price    float64    `json:"price"`
}

// Order represents a store order as served by the commerce API.
type Order struct {
	ID          string         `json:"id"`
	CreatedAt   time.Time      `json:"createdAt"`
	TotalAmount float64        `json:"totalAmount"`
	Status      string         `json:"status"`
	User        *OrderCustomer `json:"user,omitempty"`
	Items       []OrderItem    `json:"items"`
}
