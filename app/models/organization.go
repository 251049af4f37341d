package models

// Organization is the backend's establishment profile. Read-only from
// this layer's perspective.
type Organization struct {
	CNPJ         string `json:"cnpj"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	CustomerID   string `json:"customerId,omitempty"`
	CreationDate string `json:"creationDate,omitempty"`
}

// OrganizationAggregate is the combined response of the organization
// endpoint: profile plus all subscriptions and payments in one payload.
// The backend does not paginate payments; the full list comes back in
// backend order.
type OrganizationAggregate struct {
	Organization
	Subscriptions []Subscription `json:"subscription"`
	Payments      []Payment      `json:"payments"`
}

// CurrentSubscription returns the subscription surfaced to the UI. The
// backend may return several; the first one is authoritative.
func (a *OrganizationAggregate) CurrentSubscription() *Subscription {
	if a == nil || len(a.Subscriptions) == 0 {
		return nil
	}
	return &a.Subscriptions[0]
}
