package payment

import (
	"errors"
	"strings"
	"testing"
)

func TestCharge(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		amount float64
		want   bool
	}{
		{"credit ok", NewCreditCard("4111111111111111", "Juan Perez", "12/25", "123"), 400, true},
		{"credit short number", NewCreditCard("411111111111", "Juan Perez", "12/25", "123"), 400, false},
		{"credit short cvv", NewCreditCard("4111111111111111", "Juan Perez", "12/25", "12"), 400, false},
		{"credit zero amount", NewCreditCard("4111111111111111", "Juan Perez", "12/25", "123"), 0, false},
		{"debit ok", NewDebitCard("5555555555555555", "Maria Garcia", "1234"), 480, true},
		{"debit short pin", NewDebitCard("5555555555555555", "Maria Garcia", "123"), 480, false},
		{"debit short number", NewDebitCard("555", "Maria Garcia", "1234"), 480, false},
		{"crypto ok", NewCryptocurrency("Bitcoin", "1A1z7agoat2TP3z4JwHbqjK8Fs5P5xH3Z1"), 400, true},
		{"crypto short wallet", NewCryptocurrency("Bitcoin", "1A1z7agoat2TP3z4Jwh"), 400, false},
		{"transfer ok", NewBankTransfer("12345678901234567890", "Banco Nacional", "0001"), 480, true},
		{"transfer short account", NewBankTransfer("1234567", "Banco Nacional", "0001"), 480, false},
		{"transfer short code", NewBankTransfer("12345678", "Banco Nacional", "001"), 480, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.method.Charge(tt.amount); got != tt.want {
				t.Fatalf("Charge(%v) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

func TestDescribeRedacts(t *testing.T) {
	tests := []struct {
		method  Method
		want    string
		secrets []string
	}{
		{NewCreditCard("4111111111111111", "Juan Perez", "12/25", "123"), "Card holder Juan Perez (last 4 digits: 1111)", []string{"4111111111111111", "123)"}},
		{NewDebitCard("5555555555554444", "Maria Garcia", "9876"), "Debit card holder Maria Garcia (last 4 digits: 4444)", []string{"9876", "5555555555554444"}},
		{NewCryptocurrency("Bitcoin", "1A1z7agoat2TP3z4JwHbqjK8Fs5P5xH3Z1"), "Bitcoin wallet (first 10 characters: 1A1z7agoat...)", []string{"1A1z7agoat2"}},
		{NewBankTransfer("12345678901234567890", "Banco Nacional", "0001"), "Transfer to Banco Nacional (code: 0001, account: 7890)", []string{"123456"}},
		{NewCreditCard("41", "Short", "", ""), "Card holder Short (last 4 digits: ****)", []string{"41 "}},
	}
	for _, tt := range tests {
		got := tt.method.Describe()
		if got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
		for _, s := range tt.secrets {
			if strings.Contains(got, s) {
				t.Errorf("Describe() = %q leaks %q", got, s)
			}
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		d    Details
		kind string
		name string
	}{
		{Details{Type: "credit_card", CardNumber: "4111111111111111", CVV: "123"}, KindCreditCard, "Credit Card"},
		{Details{Type: " DEBIT_CARD ", CardNumber: "5555555555555555", PIN: "1234"}, KindDebitCard, "Debit Card"},
		{Details{Type: "cryptocurrency", Currency: "Ethereum", Wallet: "0x52908400098527886E0F7030069857D2E4169EE7"}, KindCryptocurrency, "Cryptocurrency (Ethereum)"},
		{Details{Type: "bank_transfer", AccountNumber: "12345678", BankCode: "0001"}, KindBankTransfer, "Bank Transfer"},
	}
	for _, tt := range tests {
		m, err := New(tt.d)
		if err != nil {
			t.Fatalf("New(%q): %v", tt.d.Type, err)
		}
		if m.Kind() != tt.kind || m.Name() != tt.name {
			t.Errorf("New(%q) = %s/%s, want %s/%s", tt.d.Type, m.Kind(), m.Name(), tt.kind, tt.name)
		}
		if !m.Charge(100) {
			t.Errorf("New(%q) built a method that declines valid credentials", tt.d.Type)
		}
	}

	if _, err := New(Details{Type: "cash"}); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("New(cash) err = %v, want ErrUnknownMethod", err)
	}
}
