package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Stock < 0 {
		errs = append(errs, ValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	return errs
}

// orderStatuses is the set accepted by the order-management surface. The
// dashboard's distribution chart only shows four of them; the rest still flow
// through aggregation as unmapped.
var orderStatuses = map[string]bool{
	"pending":          true,
	"confirmed":        true,
	"processing":       true,
	"preparing":        true,
	"out_for_delivery": true,
	"delivered":        true,
	"cancelled":        true,
}

func validStatus(status string) bool {
	return orderStatuses[status]
}
