package handlers

import (
	"regexp"
	"strings"
	"time"

	"github.com/camila-fonseca/aroma-atelier/internal/units"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)

func validateInventoryItem(req InventoryItemRequest) []ValidationError {
	errs := []ValidationError{}
	if len(strings.TrimSpace(req.Name)) < 2 {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name must have at least 2 characters"})
	}
	if strings.TrimSpace(req.Category) == "" {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is required"})
	}
	if req.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if req.MinThreshold < 0 {
		errs = append(errs, ValidationError{Field: "MinThreshold", Description: "Minimum threshold cannot be negative"})
	}
	if _, err := units.Lookup(req.Unit); err != nil {
		errs = append(errs, ValidationError{Field: "Unit", Description: "Unit must be one of: " + strings.Join(units.Symbols(), ", ")})
	}
	return errs
}

func validateProduct(req ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if len(strings.TrimSpace(req.Name)) < 2 {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name must have at least 2 characters"})
	}
	if req.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	return errs
}

func validateSale(req SaleRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.CustomerName) == "" {
		errs = append(errs, ValidationError{Field: "CustomerName", Description: "Customer name is required"})
	}
	if strings.TrimSpace(req.Products) == "" {
		errs = append(errs, ValidationError{Field: "Products", Description: "Products description is required"})
	}
	if req.TotalValue <= 0 {
		errs = append(errs, ValidationError{Field: "TotalValue", Description: "Total value must be greater than zero"})
	}
	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			errs = append(errs, ValidationError{Field: "Date", Description: "Date must be in YYYY-MM-DD format"})
		}
	}
	return errs
}

func validateOrder(req OrderRequest, isNew bool) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.CustomerName) == "" {
		errs = append(errs, ValidationError{Field: "CustomerName", Description: "Customer name is required"})
	}
	if len(strings.TrimSpace(req.Description)) < 5 {
		errs = append(errs, ValidationError{Field: "Description", Description: "Description must have at least 5 characters"})
	}
	if req.EstimatedValue <= 0 {
		errs = append(errs, ValidationError{Field: "EstimatedValue", Description: "Estimated value must be greater than zero"})
	}
	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		errs = append(errs, ValidationError{Field: "Deadline", Description: "Deadline must be in YYYY-MM-DD format"})
	} else if isNew && deadline.Before(time.Now().UTC().Truncate(24*time.Hour)) {
		errs = append(errs, ValidationError{Field: "Deadline", Description: "Deadline cannot be in the past"})
	}
	return errs
}

func validateCredentials(username, password string) []ValidationError {
	errs := []ValidationError{}
	if !usernamePattern.MatchString(username) {
		errs = append(errs, ValidationError{Field: "Username", Description: "Username must be 3-20 characters (letters, digits, _ or -)"})
	}
	if len(password) < 6 {
		errs = append(errs, ValidationError{Field: "Password", Description: "Password must have at least 6 characters"})
	}
	return errs
}
