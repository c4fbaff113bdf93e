package entities

import "github.com/aarondl/null/v8"

type Equipment struct {
	EquipmentID int64       `json:"equipmentId" validate:"required,gt=0"`
	Usage       null.String `json:"usage"`
	Cost        float64     `json:"cost" validate:"gte=0"`
	Description string      `json:"description" validate:"required"`
}
