package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "iso date", in: "2024-03-15", want: "15/03/2024"},
		{name: "iso timestamp", in: "2024-03-15T10:30:00", want: "15/03/2024"},
		{name: "rfc3339", in: "2024-03-15T10:30:00Z", want: "15/03/2024"},
		{name: "already slash separated", in: "15/03/2024", want: "15/03/2024"},
		{name: "empty", in: "", want: "N/A"},
		{name: "blank", in: "   ", want: "N/A"},
		{name: "garbage passes through", in: "not-a-date", want: "not-a-date"},
		{name: "broken slash date passes through", in: "99/99/2024", want: "99/99/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.in))
		})
	}
}

func TestDateSlashAndISOAgree(t *testing.T) {
	assert.Equal(t, Date("2024-03-15"), Date("15/03/2024"))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "R$ 99,00", Currency(99.0))
	assert.Equal(t, "R$ 1.234,56", Currency(1234.56))
	assert.Equal(t, "R$ 0,00", Currency(0.0))
	assert.Equal(t, "R$ 10,00", Currency(10))
}

func TestCurrencyIsTotal(t *testing.T) {
	// Non-numeric input renders as the zero value, never panics.
	assert.Equal(t, "R$ 0,00", Currency(nil))
	assert.Equal(t, "R$ 0,00", Currency("99.00"))
	assert.Equal(t, "R$ 0,00", Currency(struct{}{}))
	assert.Equal(t, "R$ 0,00", Currency((*float64)(nil)))
}

func TestBillingType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "BOLETO", want: "Boleto"},
		{in: "CREDIT_CARD", want: "Cartão de Crédito"},
		{in: "PIX", want: "Pix"},
		{in: "UNDEFINED", want: "Não Definido"},
		{in: "", want: "Não Definido"},
		{in: "BANK_TRANSFER", want: "Bank transfer"},
		{in: "DEBIT", want: "Debit"},
	}

	for _, tt := range tests {
		if got := BillingType(tt.in); got != tt.want {
			t.Fatalf("BillingType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "ACTIVE", want: "Ativa"},
		{in: "PENDING", want: "Pendente"},
		{in: "CANCELED", want: "Cancelada"},
		{in: "INACTIVE", want: "Inativa"},
		{in: "FAILED", want: "Falhado"},
		{in: "REFUNDED", want: "Estornado"},
	}

	for _, tt := range tests {
		if got := Status(tt.in); got != tt.want {
			t.Fatalf("Status(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusSettledCodesCollapse(t *testing.T) {
	for _, code := range []string{"PAID", "RECEIVED", "CONFIRMED"} {
		assert.Equal(t, "Pago", Status(code), "code %s", code)
	}
}

func TestStatusUnknownPassesThrough(t *testing.T) {
	for _, code := range []string{"CHARGEBACK_REQUESTED", "AWAITING_RISK_ANALYSIS", "whatever"} {
		assert.Equal(t, code, Status(code))
	}
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "text-green-400 bg-green-500/20", StatusColor("ACTIVE"))
	assert.Equal(t, "text-green-400 bg-green-500/20", StatusColor("PAID"))
	assert.Equal(t, "text-red-400 bg-red-500/20", StatusColor("FAILED"))

	// Unknown codes get the neutral pairing instead of failing.
	assert.Equal(t, "text-white/50 bg-white/10", StatusColor("CHARGEBACK_REQUESTED"))
	assert.Equal(t, "text-white/50 bg-white/10", StatusColor(""))
}
