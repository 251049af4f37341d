package models

// Payment status codes as delivered by the backend. The set is open;
// unknown codes are displayed as-is.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusPaid      = "PAID"
	PaymentStatusReceived  = "RECEIVED"
	PaymentStatusConfirmed = "CONFIRMED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

// Payment is an immutable historical fact belonging to one subscription.
// This layer only displays payments, in the order the backend returns them.
type Payment struct {
	ID                    string   `json:"id"`
	DateCreated           string   `json:"dateCreated"`
	Customer              string   `json:"customer"`
	OrgCNPJ               string   `json:"organizationCnpj"`
	SubscriptionID        string   `json:"subscriptionId"`
	DueDate               string   `json:"dueDate"`
	OriginalDueDate       string   `json:"originalDueDate"`
	Value                 float64  `json:"value"`
	NetValue              float64  `json:"netValue"`
	OriginalValue         *float64 `json:"originalValue"`
	BillingType           string   `json:"billingType"`
	Status                string   `json:"status"`
	InvoiceURL            string   `json:"invoiceUrl"`
	TransactionReceiptURL string   `json:"transactionReceiptUrl"`
}
