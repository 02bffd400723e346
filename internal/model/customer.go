package model

import "fmt"

// Customer identifies the guest who owns a reservation.  Two customers are
// the same person when their document numbers match; the other fields are
// informational only.
type Customer struct {
    Name           string `json:"name"`
    Email          string `json:"email"`
    Phone          string `json:"phone"`
    DocumentNumber string `json:"document_number"`
}

// NewCustomer returns a customer record.  Customers are never modified
// after construction.
func NewCustomer(name, email, phone, document string) Customer {
    return Customer{Name: name, Email: email, Phone: phone, DocumentNumber: document}
}

// Is reports whether c and other refer to the same customer.
func (c Customer) Is(other Customer) bool { return c.DocumentNumber == other.DocumentNumber }

func (c Customer) String() string {
    return fmt.Sprintf("Customer: %s (Email: %s, Phone: %s, Document: %s)", c.Name, c.Email, c.Phone, c.DocumentNumber)
}
