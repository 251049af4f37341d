package models

// User is the identity record returned by the backend for a signed-in
// principal. It is never persisted locally; the copy held in the web
// session is replaced wholesale on every re-fetch.
type User struct {
	CPF      string        `json:"cpf"`
	Name     string        `json:"name"`
	Role     string        `json:"role"`
	IsActive bool          `json:"isActive"`
	Picture  string        `json:"picture,omitempty"`
	Services []Service     `json:"services"`
	OrgCNPJ  string        `json:"organizationCnpj"`
	Org      *Organization `json:"organization,omitempty"`
}

// Service is a queue service granted to the principal's organization.
type Service struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

// OrganizationCNPJ resolves the organization reference. Some backend
// versions embed the full organization, others only the flat CNPJ field.
func (u *User) OrganizationCNPJ() string {
	if u == nil {
		return ""
	}
	if u.Org != nil && u.Org.CNPJ != "" {
		return u.Org.CNPJ
	}
	return u.OrgCNPJ
}

// HasOrganization reports whether the identity carries a resolvable
// organization reference for the dashboard fetch.
func (u *User) HasOrganization() bool {
	return u.OrganizationCNPJ() != ""
}

// CustomerID returns the billing-gateway customer reference, if any.
func (u *User) CustomerID() string {
	if u == nil || u.Org == nil {
		return ""
	}
	return u.Org.CustomerID
}
