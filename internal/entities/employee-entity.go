package entities

import "github.com/aarondl/null/v8"

type Employee struct {
	StaffNumber     int64       `json:"staffNumber" validate:"required,gt=0"`
	FirstName       string      `json:"firstName" validate:"required"`
	LastName        string      `json:"lastName" validate:"required"`
	Street          null.String `json:"street"`
	City            null.String `json:"city"`
	PostCode        null.String `json:"postCode"`
	Salary          float64     `json:"salary" validate:"gt=0"`
	TelephoneNumber string      `json:"telephoneNumber" validate:"required,digits"`
}
