// Package format normalizes heterogeneous backend billing records into
// display-ready pt-BR text. Every function is total: bad input comes
// back as a safe default or unchanged, never as an error.
package format

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/filaleve/filaleve-web/app/models"
)

const notAvailable = "N/A"

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// dateLayouts covers the timestamp shapes observed from the backend.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date renders a backend date as DD/MM/YYYY. Input is either ISO-like or
// already DD/MM/YYYY (detected by the separator and reordered before
// parsing). Empty input yields "N/A"; unparseable input is returned
// unchanged.
func Date(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return notAvailable
	}

	candidate := s
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 {
			candidate = parts[2] + "-" + parts[1] + "-" + parts[0]
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return input
}

// Currency renders a monetary amount in Brazilian Real. Anything that is
// not a number renders as the zero value.
func Currency(amount any) string {
	v, ok := toFloat(amount)
	if !ok {
		v = 0
	}
	return brPrinter.Sprintf("R$ %v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func toFloat(amount any) (float64, bool) {
	switch v := amount.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	default:
		return 0, false
	}
}

// BillingType maps a billing method code to its display label. Unknown
// non-empty codes are humanized generically so new backend methods show
// up readable instead of raw.
func BillingType(code string) string {
	switch code {
	case "":
		return "Não Definido"
	case models.BillingTypeBoleto:
		return "Boleto"
	case models.BillingTypeCreditCard:
		return "Cartão de Crédito"
	case models.BillingTypePix:
		return "Pix"
	case models.BillingTypeUndefined:
		return "Não Definido"
	default:
		humanized := strings.ReplaceAll(strings.ToLower(code), "_", " ")
		return capitalize(humanized)
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Status maps subscription and payment status codes to display labels.
// PAID, RECEIVED and CONFIRMED collapse into one settled label. Unknown
// codes pass through unchanged so new backend states stay visible.
func Status(code string) string {
	switch code {
	case models.SubscriptionStatusActive:
		return "Ativa"
	case models.SubscriptionStatusPending:
		return "Pendente"
	case models.SubscriptionStatusCanceled:
		return "Cancelada"
	case models.SubscriptionStatusInactive:
		return "Inativa"
	case models.PaymentStatusPaid, models.PaymentStatusReceived, models.PaymentStatusConfirmed:
		return "Pago"
	case models.PaymentStatusFailed:
		return "Falhado"
	case models.PaymentStatusRefunded:
		return "Estornado"
	default:
		return code
	}
}

// statusColors pairs each status with the badge classes the dashboard
// uses. Unknown statuses get a neutral pairing.
var statusColors = map[string]string{
	models.SubscriptionStatusActive:   "text-green-400 bg-green-500/20",
	models.SubscriptionStatusPending:  "text-yellow-400 bg-yellow-500/20",
	models.SubscriptionStatusCanceled: "text-red-400 bg-red-500/20",
	models.SubscriptionStatusInactive: "text-gray-400 bg-gray-500/20",
	models.PaymentStatusPaid:          "text-green-400 bg-green-500/20",
	models.PaymentStatusReceived:      "text-green-400 bg-green-500/20",
	models.PaymentStatusConfirmed:     "text-green-400 bg-green-500/20",
	models.PaymentStatusFailed:        "text-red-400 bg-red-500/20",
	models.PaymentStatusRefunded:      "text-yellow-400 bg-yellow-500/20",
}

const neutralStatusColor = "text-white/50 bg-white/10"

// StatusColor returns the badge class pairing for a status code.
func StatusColor(code string) string {
	if classes, ok := statusColors[code]; ok {
		return classes
	}
	return neutralStatusColor
}
