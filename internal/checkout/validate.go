// Package checkout validates the order form and turns a valid form plus the
// current cart into a persisted order.
package checkout

import (
	"regexp"
	"strings"

	"github.com/Aravindhan20041506/Lacto-hub/internal/models"
)

// Form is the raw checkout form as entered by the shopper.
type Form struct {
	Name                string
	Phone               string
	Email               string
	Address             string
	Landmark            string
	DeliveryTime        string
	PaymentMethod       string
	SpecialInstructions string
}

var (
	// 10 digits, Indian mobile range.
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate checks every rule independently and reports every violation; it
// never stops at the first failure. An empty result means the form is valid.
func Validate(f Form) []string {
	var errs []string

	if len(strings.TrimSpace(f.Name)) < 2 {
		errs = append(errs, "Name must be at least 2 characters long")
	}
	if !phoneRe.MatchString(strings.TrimSpace(f.Phone)) {
		errs = append(errs, "Please enter a valid 10-digit phone number")
	}
	if len(strings.TrimSpace(f.Address)) < 10 {
		errs = append(errs, "Address must be at least 10 characters long")
	}
	if len(strings.TrimSpace(f.Landmark)) < 3 {
		errs = append(errs, "Landmark must be at least 3 characters long")
	}
	if f.DeliveryTime != models.DeliveryMorning && f.DeliveryTime != models.DeliveryEvening {
		errs = append(errs, "Please select a delivery time")
	}
	if f.PaymentMethod != models.PaymentCOD && f.PaymentMethod != models.PaymentOnline {
		errs = append(errs, "Please select a payment method")
	}
	// Email is optional; only a non-empty malformed value fails.
	if email := strings.TrimSpace(f.Email); email != "" && !emailRe.MatchString(email) {
		errs = append(errs, "Please enter a valid email address")
	}

	return errs
}
