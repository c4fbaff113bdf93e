package entities

import "github.com/aarondl/null/v8"

type Client struct {
	ClientNumber    int64       `json:"clientNumber" validate:"required,gt=0"`
	FirstName       string      `json:"firstName" validate:"required"`
	LastName        string      `json:"lastName" validate:"required"`
	Street          null.String `json:"street"`
	City            null.String `json:"city"`
	PostCode        null.String `json:"postCode"`
	TelephoneNumber string      `json:"telephoneNumber" validate:"required,digits"`
}

// FullName - имя для вывода в логах и подписях запросов.
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
