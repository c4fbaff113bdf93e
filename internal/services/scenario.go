package services

import (
	"github.com/aarondl/null/v8"

	"supermaids/internal/entities"
)

// Scenario - фиксированные значения пяти демонстрационных запросов.
type Scenario struct {
	NewClient      entities.Client
	NewRequirement entities.ServiceRequirement
	NewAssignment  entities.Assignment
	LookupClient   int64
	LookupEmployee int64
}

func DefaultScenario() Scenario {
	return Scenario{
		NewClient: entities.Client{
			ClientNumber:    1007,
			FirstName:       "Lisa",
			LastName:        "Garcia",
			Street:          null.StringFrom("888 Sunset Blvd"),
			City:            null.StringFrom("Boston"),
			PostCode:        null.StringFrom("02110"),
			TelephoneNumber: "6175551007",
		},
		NewRequirement: entities.ServiceRequirement{
			RequirementID: 2007,
			ClientNumber:  1007,
			StartDate:     "2024-12-14",
			StartTime:     "13:00",
			Duration:      90,
			Comments:      null.StringFrom("Initial consultation"),
		},
		NewAssignment:  entities.Assignment{StaffNumber: 5002, RequirementID: 2007},
		LookupClient:   1001,
		LookupEmployee: 5001,
	}
}
