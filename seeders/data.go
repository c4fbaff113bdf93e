package seeders

import (
	"github.com/aarondl/null/v8"

	"supermaids/internal/entities"
)

// Dataset - полный набор строк для наполнения шести таблиц.
type Dataset struct {
	Clients              []entities.Client
	Employees            []entities.Employee
	Requirements         []entities.ServiceRequirement
	Equipment            []entities.Equipment
	Assignments          []entities.Assignment
	RequirementEquipment []entities.RequirementEquipment
}

// DefaultDataset возвращает демонстрационные данные компании. Каждый вызов даёт новую копию.
func DefaultDataset() Dataset {
	return Dataset{
		Clients:              append([]entities.Client(nil), clientsData...),
		Employees:            append([]entities.Employee(nil), employeesData...),
		Requirements:         append([]entities.ServiceRequirement(nil), requirementsData...),
		Equipment:            append([]entities.Equipment(nil), equipmentData...),
		Assignments:          append([]entities.Assignment(nil), assignmentsData...),
		RequirementEquipment: append([]entities.RequirementEquipment(nil), requirementEquipmentData...),
	}
}

var clientsData = []entities.Client{
	{ClientNumber: 1001, FirstName: "John", LastName: "Doe", Street: null.StringFrom("123 Main St"), City: null.StringFrom("Boston"), PostCode: null.StringFrom("02101"), TelephoneNumber: "6175551001"},
	{ClientNumber: 1002, FirstName: "Jane", LastName: "Smith", Street: null.StringFrom("456 Oak Ave"), City: null.StringFrom("Cambridge"), PostCode: null.StringFrom("02138"), TelephoneNumber: "6175551002"},
	{ClientNumber: 1003, FirstName: "Robert", LastName: "Johnson", Street: null.StringFrom("789 Pine Rd"), City: null.StringFrom("Somerville"), PostCode: null.StringFrom("02143"), TelephoneNumber: "6175551003"},
	{ClientNumber: 1004, FirstName: "Sarah", LastName: "Williams", Street: null.StringFrom("321 Elm St"), City: null.StringFrom("Boston"), PostCode: null.StringFrom("02115"), TelephoneNumber: "6175551004"},
	{ClientNumber: 1005, FirstName: "Michael", LastName: "Brown", Street: null.StringFrom("654 Maple Dr"), City: null.StringFrom("Cambridge"), PostCode: null.StringFrom("02139"), TelephoneNumber: "6175551005"},
	{ClientNumber: 1006, FirstName: "Emily", LastName: "Davis", Street: null.StringFrom("987 Birch Ln"), City: null.StringFrom("Boston"), PostCode: null.StringFrom("02108"), TelephoneNumber: "6175551006"},
}

var employeesData = []entities.Employee{
	{StaffNumber: 5001, FirstName: "Alice", LastName: "Wilson", Street: null.StringFrom("111 First St"), City: null.StringFrom("Boston"), PostCode: null.StringFrom("02101"), Salary: 45000.00, TelephoneNumber: "6175552001"},
	{StaffNumber: 5002, FirstName: "Bob", LastName: "Miller", Street: null.StringFrom("222 Second Ave"), City: null.StringFrom("Cambridge"), PostCode: null.StringFrom("02138"), Salary: 42000.00, TelephoneNumber: "6175552002"},
	{StaffNumber: 5003, FirstName: "Carol", LastName: "Taylor", Street: null.StringFrom("333 Third Rd"), City: null.StringFrom("Somerville"), PostCode: null.StringFrom("02143"), Salary: 48000.00, TelephoneNumber: "6175552003"},
	{StaffNumber: 5004, FirstName: "David", LastName: "Anderson", Street: null.StringFrom("444 Fourth St"), City: null.StringFrom("Boston"), PostCode: null.StringFrom("02115"), Salary: 46000.00, TelephoneNumber: "6175552004"},
	{StaffNumber: 5005, FirstName: "Eva", LastName: "Thomas", Street: null.StringFrom("555 Fifth Dr"), City: null.StringFrom("Cambridge"), PostCode: null.StringFrom("02139"), Salary: 44000.00, TelephoneNumber: "6175552005"},
	{StaffNumber: 5006, FirstName: "Frank", LastName: "Jackson", Street: null.StringFrom("666 Sixth Ln"), City: null.StringFrom("Boston"), PostCode: null.StringFrom("02108"), Salary: 47000.00, TelephoneNumber: "6175552006"},
}

var requirementsData = []entities.ServiceRequirement{
	{RequirementID: 2001, ClientNumber: 1001, StartDate: "2024-12-09", StartTime: "07:00", Duration: 120, Comments: null.StringFrom("Morning cleaning")},
	{RequirementID: 2002, ClientNumber: 1001, StartDate: "2024-12-09", StartTime: "17:00", Duration: 120, Comments: null.StringFrom("Evening cleaning")},
	{RequirementID: 2003, ClientNumber: 1002, StartDate: "2024-12-10", StartTime: "10:00", Duration: 180, Comments: null.StringFrom("Weekly deep clean")},
	{RequirementID: 2004, ClientNumber: 1003, StartDate: "2024-12-11", StartTime: "08:00", Duration: 90, Comments: null.StringFrom("Kitchen cleaning")},
	{RequirementID: 2005, ClientNumber: 1004, StartDate: "2024-12-12", StartTime: "14:00", Duration: 60, Comments: null.StringFrom("Quick cleanup")},
	{RequirementID: 2006, ClientNumber: 1005, StartDate: "2024-12-13", StartTime: "09:00", Duration: 240, Comments: null.StringFrom("Full day service")},
}

var equipmentData = []entities.Equipment{
	{EquipmentID: 3001, Usage: null.StringFrom("Daily"), Cost: 1200.50, Description: "Industrial vacuum cleaner"},
	{EquipmentID: 3002, Usage: null.StringFrom("Weekly"), Cost: 850.00, Description: "Floor polisher"},
	{EquipmentID: 3003, Usage: null.StringFrom("As needed"), Cost: 350.75, Description: "Carpet cleaner"},
	{EquipmentID: 3004, Usage: null.StringFrom("Daily"), Cost: 200.00, Description: "High-pressure washer"},
	{EquipmentID: 3005, Usage: null.StringFrom("Monthly"), Cost: 1500.00, Description: "Window cleaning kit"},
	{EquipmentID: 3006, Usage: null.StringFrom("Weekly"), Cost: 600.25, Description: "Sanitizing sprayer"},
}

var assignmentsData = []entities.Assignment{
	{StaffNumber: 5001, RequirementID: 2001},
	{StaffNumber: 5002, RequirementID: 2001},
	{StaffNumber: 5003, RequirementID: 2002},
	{StaffNumber: 5004, RequirementID: 2003},
	{StaffNumber: 5005, RequirementID: 2004},
	{StaffNumber: 5006, RequirementID: 2005},
	{StaffNumber: 5001, RequirementID: 2006},
}

var requirementEquipmentData = []entities.RequirementEquipment{
	{RequirementID: 2001, EquipmentID: 3001, Quantity: 2},
	{RequirementID: 2001, EquipmentID: 3002, Quantity: 1},
	{RequirementID: 2002, EquipmentID: 3001, Quantity: 1},
	{RequirementID: 2003, EquipmentID: 3003, Quantity: 3},
	{RequirementID: 2004, EquipmentID: 3004, Quantity: 1},
	{RequirementID: 2005, EquipmentID: 3005, Quantity: 2},
	{RequirementID: 2006, EquipmentID: 3006, Quantity: 1},
}
