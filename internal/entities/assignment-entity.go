package entities

// Assignment связывает сотрудника с заявкой (многие-ко-многим).
type Assignment struct {
	StaffNumber   int64 `json:"staffNumber" validate:"required,gt=0"`
	RequirementID int64 `json:"requirementId" validate:"required,gt=0"`
}

type RequirementEquipment struct {
	RequirementID int64 `json:"requirementId" validate:"required,gt=0"`
	EquipmentID   int64 `json:"equipmentId" validate:"required,gt=0"`
	Quantity      int   `json:"quantity" validate:"gt=0"`
}
