package models

import "time"

// User is a store account. Role "user" marks a customer; administrative
// accounts carry other roles and are excluded from customer counts.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
