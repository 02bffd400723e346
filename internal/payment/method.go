// Package payment holds the simulated payment methods a reservation can be
// charged with.  No external gateway is called: each method validates the
// shape of its own credentials and reports success or failure.  A failed
// charge is a normal outcome, never an error.
package payment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/hotel-reservation/internal/logger"
)

// Method is a way to pay for a reservation.  The set of implementations is
// closed; it is sealed by an unexported method.
type Method interface {
	// Charge makes a single synchronous attempt to collect amount.  It
	// returns false when the credentials are malformed or the amount is not
	// positive.
	Charge(amount float64) bool
	// Name is the display name of the method.
	Name() string
	// Describe returns a redacted summary safe to show or log.
	Describe() string
	// Kind is the wire identifier used by the HTTP API.
	Kind() string

	sealed()
}

// Wire identifiers accepted by New.
const (
	KindCreditCard     = "credit_card"
	KindDebitCard      = "debit_card"
	KindCryptocurrency = "cryptocurrency"
	KindBankTransfer   = "bank_transfer"
)

// ErrUnknownMethod is returned by New for an unsupported method type.
var ErrUnknownMethod = errors.New("unknown payment method")

// Details is the union of credential fields for all methods as they arrive
// over the API.  Only the fields of the selected Type are read.
type Details struct {
	Type          string `json:"type"`
	CardNumber    string `json:"card_number,omitempty"`
	Holder        string `json:"holder,omitempty"`
	Expiry        string `json:"expiry,omitempty"`
	CVV           string `json:"cvv,omitempty"`
	PIN           string `json:"pin,omitempty"`
	Currency      string `json:"currency,omitempty"`
	Wallet        string `json:"wallet,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
}

// New builds the method selected by d.Type.  Credentials are not validated
// here; they are checked when the method is charged.
func New(d Details) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(d.Type)) {
	case KindCreditCard:
		return NewCreditCard(d.CardNumber, d.Holder, d.Expiry, d.CVV), nil
	case KindDebitCard:
		return NewDebitCard(d.CardNumber, d.Holder, d.PIN), nil
	case KindCryptocurrency:
		return NewCryptocurrency(d.Currency, d.Wallet), nil
	case KindBankTransfer:
		return NewBankTransfer(d.AccountNumber, d.BankName, d.BankCode), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, d.Type)
}

// lastN returns the trailing n characters of s, or a mask when s is too
// short to reveal anything.
func lastN(s string, n int) string {
	if len(s) < n {
		return strings.Repeat("*", n)
	}
	return s[len(s)-n:]
}

// firstN returns the leading n characters of s followed by an ellipsis.
func firstN(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return s + "..."
}

func logCharge(kind string, amount float64, ref string) {
	logger.Log.Info(fmt.Sprintf("[payment] charged %.2f via %s", amount, kind), "ref", ref)
}
