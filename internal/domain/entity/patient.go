package entity

import (
	"fmt"
	"strings"
	"time"
)

// Patient is created by registration and mutated only through an edit that
// re-validates the fields and re-derives Name and Address.
type Patient struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Contact    string    `json:"contact"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Pincode    string    `json:"pincode"`
	BloodGroup string    `json:"blood_group"`
	CreatedAt  time.Time `json:"created_at"`
}

// FullName derives the display name from the name parts. Never persisted
// independently of the parts; callers re-derive on every edit.
func FullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// ComposeAddress derives the composite postal address from its parts.
func ComposeAddress(line, city, state, pincode string) string {
	return fmt.Sprintf("%s, %s, %s - %s", line, city, state, pincode)
}
