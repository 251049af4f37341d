package models

// Subscription status codes as delivered by the backend.
const (
	SubscriptionStatusActive   = "ACTIVE"
	SubscriptionStatusPending  = "PENDING"
	SubscriptionStatusCanceled = "CANCELED"
	SubscriptionStatusInactive = "INACTIVE"
)

// Billing method codes shared by subscriptions and payments.
const (
	BillingTypeBoleto     = "BOLETO"
	BillingTypeCreditCard = "CREDIT_CARD"
	BillingTypePix        = "PIX"
	BillingTypeUndefined  = "UNDEFINED"
)

// Subscription belongs to exactly one organization.
type Subscription struct {
	ID          string  `json:"id"`
	DateCreated string  `json:"dateCreated"`
	Customer    string  `json:"customer"`
	Value       float64 `json:"value"`
	NextDueDate string  `json:"nextDueDate"`
	Cycle       string  `json:"cycle"`
	BillingType string  `json:"billingType"`
	Status      string  `json:"status"`
	OrgCNPJ     string  `json:"organizationCnpj"`
}

// ToggledStatus returns the status an activate/deactivate action should
// request: ACTIVE flips to INACTIVE, anything else flips to ACTIVE.
func (s *Subscription) ToggledStatus() string {
	if s.Status == SubscriptionStatusActive {
		return SubscriptionStatusInactive
	}
	return SubscriptionStatusActive
}
