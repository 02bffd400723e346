package payment

import "fmt"

const (
	minCardNumberLen = 13
	minCVVLen        = 3
	minPINLen        = 4
)

// CreditCard charges a credit card.
type CreditCard struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

func NewCreditCard(number, holder, expiry, cvv string) *CreditCard {
	return &CreditCard{Number: number, Holder: holder, Expiry: expiry, CVV: cvv}
}

func (c *CreditCard) Charge(amount float64) bool {
	if amount <= 0 || len(c.Number) < minCardNumberLen || len(c.CVV) < minCVVLen {
		return false
	}
	logCharge(KindCreditCard, amount, "card "+lastN(c.Number, 4))
	return true
}

func (c *CreditCard) Name() string { return "Credit Card" }
func (c *CreditCard) Kind() string { return KindCreditCard }

func (c *CreditCard) Describe() string {
	return fmt.Sprintf("Card holder %s (last 4 digits: %s)", c.Holder, lastN(c.Number, 4))
}

func (c *CreditCard) sealed() {}

// DebitCard charges a debit card authorised by PIN.
type DebitCard struct {
	Number string
	Holder string
	PIN    string
}

func NewDebitCard(number, holder, pin string) *DebitCard {
	return &DebitCard{Number: number, Holder: holder, PIN: pin}
}

func (d *DebitCard) Charge(amount float64) bool {
	if amount <= 0 || len(d.Number) < minCardNumberLen || len(d.PIN) < minPINLen {
		return false
	}
	logCharge(KindDebitCard, amount, "card "+lastN(d.Number, 4))
	return true
}

func (d *DebitCard) Name() string { return "Debit Card" }
func (d *DebitCard) Kind() string { return KindDebitCard }

func (d *DebitCard) Describe() string {
	return fmt.Sprintf("Debit card holder %s (last 4 digits: %s)", d.Holder, lastN(d.Number, 4))
}

func (d *DebitCard) sealed() {}
