package domain

import "fmt"

// Customer identity, address and scheduling fields for a measurement visit.
// ID is empty only for a customer that has never been saved; after the first
// save it is stable and reused on repeat bookings for the same client.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Postcode    string `json:"postcode"`
	HouseNumber string `json:"houseNumber"`
	Street      string `json:"street"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Reference   string `json:"reference"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM, 24-hour
}

// Address renders the visit address as used on appointments and for
// travel-time estimation.
func (c Customer) Address() string {
	return fmt.Sprintf("%s %s, %s", c.Street, c.HouseNumber, c.City)
}
