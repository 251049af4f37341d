package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filaleve/filaleve-web/app/models"
)

func aggregateFixture() *models.OrganizationAggregate {
	return &models.OrganizationAggregate{
		Organization: models.Organization{
			CNPJ:         "12345678000199",
			Name:         "Padaria Central",
			Email:        "contato@padariacentral.com.br",
			Phone:        "81999990000",
			CreationDate: "2023-06-01",
		},
		Subscriptions: []models.Subscription{
			{
				ID:          "sub_1",
				Value:       99,
				NextDueDate: "2024-04-15",
				Cycle:       "MONTHLY",
				BillingType: "PIX",
				Status:      models.SubscriptionStatusActive,
			},
			{
				ID:     "sub_2",
				Status: models.SubscriptionStatusCanceled,
			},
		},
		Payments: []models.Payment{
			{ID: "pay_2", DueDate: "2024-03-15", Value: 99, BillingType: "PIX", Status: "RECEIVED", TransactionReceiptURL: "https://gw.example/r/2"},
			{ID: "pay_1", DueDate: "2024-02-15", Value: 99, BillingType: "BOLETO", Status: "OVERDUE", InvoiceURL: "https://gw.example/i/1"},
		},
	}
}

func TestBuildDashboard(t *testing.T) {
	dash := BuildDashboard(aggregateFixture())

	assert.Equal(t, "Padaria Central", dash.Organization.Name)
	assert.Equal(t, "12345678000199", dash.Organization.CNPJ)
	assert.Equal(t, "01/06/2023", dash.Organization.CreationDate)

	require.NotNil(t, dash.Subscription)
	// Several subscriptions may come back; the first one is authoritative.
	assert.Equal(t, "sub_1", dash.Subscription.ID)
	assert.Equal(t, "Ativa", dash.Subscription.StatusLabel)
	assert.Equal(t, "Pix", dash.Subscription.BillingType)
	assert.Equal(t, "R$ 99,00", dash.Subscription.Value)
	assert.Equal(t, "15/04/2024", dash.Subscription.NextDueDate)
	assert.Equal(t, models.SubscriptionStatusInactive, dash.Subscription.ToggleStatus)
	assert.Equal(t, "Desativar", dash.Subscription.ToggleLabel)
}

func TestBuildDashboardPaymentsKeepBackendOrder(t *testing.T) {
	dash := BuildDashboard(aggregateFixture())

	require.Len(t, dash.Payments, 2)
	assert.Equal(t, "pay_2", dash.Payments[0].ID)
	assert.Equal(t, "pay_1", dash.Payments[1].ID)

	assert.Equal(t, "Pago", dash.Payments[0].StatusLabel)
	assert.Equal(t, "https://gw.example/r/2", dash.Payments[0].ReceiptURL)

	// Unknown status passes through with the neutral badge.
	assert.Equal(t, "OVERDUE", dash.Payments[1].StatusLabel)
	assert.Equal(t, "text-white/50 bg-white/10", dash.Payments[1].StatusColor)
}

func TestBuildDashboardWithoutSubscription(t *testing.T) {
	agg := aggregateFixture()
	agg.Subscriptions = nil
	agg.Payments = nil

	dash := BuildDashboard(agg)

	assert.Nil(t, dash.Subscription)
	assert.Empty(t, dash.Payments)
}

func TestBuildDashboardMissingContactFields(t *testing.T) {
	agg := aggregateFixture()
	agg.Email = ""
	agg.Phone = ""

	dash := BuildDashboard(agg)

	assert.Equal(t, "Não informado", dash.Organization.Email)
	assert.Equal(t, "Não informado", dash.Organization.Phone)
}

func TestBuildDashboardInactiveToggle(t *testing.T) {
	agg := aggregateFixture()
	agg.Subscriptions[0].Status = models.SubscriptionStatusInactive

	dash := BuildDashboard(agg)

	require.NotNil(t, dash.Subscription)
	assert.Equal(t, models.SubscriptionStatusActive, dash.Subscription.ToggleStatus)
	assert.Equal(t, "Ativar", dash.Subscription.ToggleLabel)
}
