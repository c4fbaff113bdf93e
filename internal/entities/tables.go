package entities

const (
	TableClient               = "Client"
	TableEmployee             = "Employee"
	TableServiceRequirement   = "Service_Requirement"
	TableEquipment            = "Equipment"
	TableAssignment           = "Assignment"
	TableRequirementEquipment = "Requirement_Equipment"
)

// Tables - порядок вывода таблиц в отчёте (родители раньше детей).
var Tables = []string{
	TableClient,
	TableEmployee,
	TableServiceRequirement,
	TableEquipment,
	TableAssignment,
	TableRequirementEquipment,
}

// DeleteOrder - порядок очистки перед повторным наполнением: сначала дети, потом родители.
var DeleteOrder = []string{
	TableRequirementEquipment,
	TableAssignment,
	TableEquipment,
	TableServiceRequirement,
	TableEmployee,
	TableClient,
}

// TableSnapshot - всё содержимое одной таблицы в порядке, который вернул движок.
type TableSnapshot struct {
	Name    string
	Columns []string
	Rows    [][]interface{}
}
