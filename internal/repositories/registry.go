package repositories

import "supermaids/pkg/database"

// Repositories - все репозитории над одним хранилищем.
type Repositories struct {
	Clients              ClientRepositoryInterface
	Employees            EmployeeRepositoryInterface
	Requirements         ServiceRequirementRepositoryInterface
	Equipment            EquipmentRepositoryInterface
	Assignments          AssignmentRepositoryInterface
	RequirementEquipment RequirementEquipmentRepositoryInterface
	Tables               TableRepositoryInterface
	Tx                   TxManagerInterface
}

func New(store *database.Store) *Repositories {
	return &Repositories{
		Clients:              NewClientRepository(store),
		Employees:            NewEmployeeRepository(store),
		Requirements:         NewServiceRequirementRepository(store),
		Equipment:            NewEquipmentRepository(store),
		Assignments:          NewAssignmentRepository(store),
		RequirementEquipment: NewRequirementEquipmentRepository(store),
		Tables:               NewTableRepository(store),
		Tx:                   NewTxManager(store.DB),
	}
}
