// Package templogrepo provides persistence for the append-only temperature log.
// Entries are immutable once written: the repository exposes no update or
// delete, and the composite (shipment ID, sequence) key is enforced by the
// primary key.
package templogrepo

import (
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/templog"
)

// EntryDTO represents the database structure for persisting temperature log
// entries.
type EntryDTO struct {
	ShipmentID  string `gorm:"primaryKey;size:64"`
	Seq         uint64 `gorm:"primaryKey;autoIncrement:false"`
	Temperature int
	RecordedAt  int64
	Location    string `gorm:"size:128"`
	Handler     string `gorm:"size:128"`
	SensorID    string `gorm:"size:64"`
}

// TableName specifies the database table name for temperature log entries.
func (EntryDTO) TableName() string {
	return "temperature_logs"
}

func fromDomain(entry templog.Entry) EntryDTO {
	return EntryDTO{
		ShipmentID:  entry.ShipmentID().String(),
		Seq:         entry.Seq(),
		Temperature: entry.Temperature(),
		RecordedAt:  entry.RecordedAt(),
		Location:    entry.Location(),
		Handler:     entry.Handler().String(),
		SensorID:    entry.SensorID(),
	}
}

func toDomain(dto EntryDTO) (templog.Entry, error) {
	shipmentID, err := kernel.NewTrackingID(dto.ShipmentID)
	if err != nil {
		return templog.Entry{}, err
	}

	handler, err := kernel.NewPrincipal(dto.Handler)
	if err != nil {
		return templog.Entry{}, err
	}

	return templog.NewEntry(
		shipmentID,
		dto.Seq,
		dto.Temperature,
		dto.RecordedAt,
		dto.Location,
		handler,
		dto.SensorID,
	)
}
