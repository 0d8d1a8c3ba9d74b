// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. Implements the repository pattern for the shipment
// aggregate, handling the conversion between domain entities and database rows.
package shipmentrepo

import (
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The tracking ID is the natural primary key; status is indexed for
// the non-compliance and tracking read models.
type ShipmentDTO struct {
	ID                   string `gorm:"primaryKey;size:64"`
	Origin               string `gorm:"size:128"`
	Destination          string `gorm:"size:128"`
	CurrentHandler       string `gorm:"size:128"`
	ProductType          string `gorm:"size:64"`
	MinTemp              int
	MaxTemp              int
	CurrentTemp          int
	Status               int `gorm:"index"`
	CreatedAt            int64
	UpdatedAt            int64
	BreachCount          int
	QualityScore         int
	EmergencyType        string `gorm:"size:64"`
	EmergencyDescription string `gorm:"size:256"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                   aggregate.ID().String(),
		Origin:               aggregate.Origin().String(),
		Destination:          aggregate.Destination().String(),
		CurrentHandler:       aggregate.CurrentHandler().String(),
		ProductType:          aggregate.ProductType(),
		MinTemp:              aggregate.TemperatureRange().Min(),
		MaxTemp:              aggregate.TemperatureRange().Max(),
		CurrentTemp:          aggregate.CurrentTemp(),
		Status:               int(aggregate.Status()),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
		BreachCount:          aggregate.BreachCount(),
		QualityScore:         aggregate.QualityScore(),
		EmergencyType:        aggregate.EmergencyType(),
		EmergencyDescription: aggregate.EmergencyDescription(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including the breach history using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.NewTrackingID(dto.ID)
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewPrincipal(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewPrincipal(dto.Destination)
	if err != nil {
		return nil, err
	}

	currentHandler, err := kernel.NewPrincipal(dto.CurrentHandler)
	if err != nil {
		return nil, err
	}

	tempRange, err := shipment.NewTemperatureRange(dto.MinTemp, dto.MaxTemp)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		origin,
		destination,
		currentHandler,
		dto.ProductType,
		tempRange,
		dto.CurrentTemp,
		shipment.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.BreachCount,
		dto.QualityScore,
		dto.EmergencyType,
		dto.EmergencyDescription,
	)
}
