package viewmodel

import (
	"github.com/filaleve/filaleve-web/app/models"
	"github.com/filaleve/filaleve-web/internal/pkg/format"
)

// OrganizationCard is the establishment profile block.
type OrganizationCard struct {
	CNPJ         string
	Name         string
	Email        string
	Phone        string
	CreationDate string
}

// SubscriptionCard is the current-subscription block, nil when the
// organization has no subscription.
type SubscriptionCard struct {
	ID           string
	Status       string
	StatusLabel  string
	StatusColor  string
	ToggleStatus string
	ToggleLabel  string
	BillingType  string
	Value        string
	NextDueDate  string
	Cycle        string
}

// PaymentRow is one line of the payment history table, display-ready.
type PaymentRow struct {
	ID          string
	DueDate     string
	Value       string
	BillingType string
	StatusLabel string
	StatusColor string
	ReceiptURL  string
	InvoiceURL  string
}

// Dashboard is everything the dashboard template renders from one
// aggregate organization fetch.
type Dashboard struct {
	Organization OrganizationCard
	Subscription *SubscriptionCard
	Payments     []PaymentRow
}

// BuildDashboard reduces the aggregate organization record to the exact
// shape the dashboard needs. Pure: no fetch, no mutation of the input.
func BuildDashboard(agg *models.OrganizationAggregate) Dashboard {
	dash := Dashboard{
		Organization: OrganizationCard{
			CNPJ:         agg.CNPJ,
			Name:         agg.Name,
			Email:        orNotInformed(agg.Email),
			Phone:        orNotInformed(agg.Phone),
			CreationDate: format.Date(agg.CreationDate),
		},
	}

	if sub := agg.CurrentSubscription(); sub != nil {
		toggle := sub.ToggledStatus()
		toggleLabel := "Ativar"
		if toggle == models.SubscriptionStatusInactive {
			toggleLabel = "Desativar"
		}
		dash.Subscription = &SubscriptionCard{
			ID:           sub.ID,
			Status:       sub.Status,
			StatusLabel:  format.Status(sub.Status),
			StatusColor:  format.StatusColor(sub.Status),
			ToggleStatus: toggle,
			ToggleLabel:  toggleLabel,
			BillingType:  format.BillingType(sub.BillingType),
			Value:        format.Currency(sub.Value),
			NextDueDate:  format.Date(sub.NextDueDate),
			Cycle:        sub.Cycle,
		}
	}

	dash.Payments = make([]PaymentRow, 0, len(agg.Payments))
	for _, p := range agg.Payments {
		dash.Payments = append(dash.Payments, PaymentRow{
			ID:          p.ID,
			DueDate:     format.Date(p.DueDate),
			Value:       format.Currency(p.Value),
			BillingType: format.BillingType(p.BillingType),
			StatusLabel: format.Status(p.Status),
			StatusColor: format.StatusColor(p.Status),
			ReceiptURL:  p.TransactionReceiptURL,
			InvoiceURL:  p.InvoiceURL,
		})
	}

	return dash
}

func orNotInformed(s string) string {
	if s == "" {
		return "Não informado"
	}
	return s
}
