package payment

import "fmt"

const (
	minWalletLen        = 20
	minAccountNumberLen = 8
	minBankCodeLen      = 4
)

// Cryptocurrency charges a wallet in the given currency (Bitcoin, Ethereum...).
type Cryptocurrency struct {
	Currency string
	Wallet   string
}

func NewCryptocurrency(currency, wallet string) *Cryptocurrency {
	return &Cryptocurrency{Currency: currency, Wallet: wallet}
}

func (c *Cryptocurrency) Charge(amount float64) bool {
	if amount <= 0 || len(c.Wallet) < minWalletLen {
		return false
	}
	logCharge(KindCryptocurrency, amount, c.Currency+" wallet "+firstN(c.Wallet, 10))
	return true
}

func (c *Cryptocurrency) Name() string { return fmt.Sprintf("Cryptocurrency (%s)", c.Currency) }
func (c *Cryptocurrency) Kind() string { return KindCryptocurrency }

func (c *Cryptocurrency) Describe() string {
	return fmt.Sprintf("%s wallet (first 10 characters: %s)", c.Currency, firstN(c.Wallet, 10))
}

func (c *Cryptocurrency) sealed() {}

// BankTransfer charges a bank account.
type BankTransfer struct {
	AccountNumber string
	BankName      string
	BankCode      string
}

func NewBankTransfer(account, bankName, bankCode string) *BankTransfer {
	return &BankTransfer{AccountNumber: account, BankName: bankName, BankCode: bankCode}
}

func (b *BankTransfer) Charge(amount float64) bool {
	if amount <= 0 || len(b.AccountNumber) < minAccountNumberLen || len(b.BankCode) < minBankCodeLen {
		return false
	}
	logCharge(KindBankTransfer, amount, "bank "+b.BankName)
	return true
}

func (b *BankTransfer) Name() string { return "Bank Transfer" }
func (b *BankTransfer) Kind() string { return KindBankTransfer }

func (b *BankTransfer) Describe() string {
	return fmt.Sprintf("Transfer to %s (code: %s, account: %s)", b.BankName, b.BankCode, lastN(b.AccountNumber, 4))
}

func (b *BankTransfer) sealed() {}
