package entities

import "github.com/aarondl/null/v8"

// ServiceRequirement - одна запланированная уборка у клиента.
type ServiceRequirement struct {
	RequirementID int64       `json:"requirementId" validate:"required,gt=0"`
	ClientNumber  int64       `json:"clientNumber" validate:"required,gt=0"`
	StartDate     string      `json:"startDate" validate:"required,datetime=2006-01-02"`
	StartTime     string      `json:"startTime" validate:"required,datetime=15:04"`
	Duration      int         `json:"duration" validate:"gt=0"` // минуты
	Comments      null.String `json:"comments"`
}

// ClientRequirementRow - строка выборки "заявки клиента".
type ClientRequirementRow struct {
	RequirementID int64
	StartDate     string
	StartTime     string
	Duration      int
	Comments      null.String
}

// EmployeeAssignmentRow - строка выборки "заявки, назначенные сотруднику".
type EmployeeAssignmentRow struct {
	RequirementID int64
	StartDate     string
	StartTime     string
	Duration      int
	FirstName     string
	LastName      string
}
