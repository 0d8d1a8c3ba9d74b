package queries

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"
	"coldchain/internal/pkg/guard"
)

var (
	ErrGetTemperatureLogQueryIsNotConstructed = errors.New(
		"GetTemperatureLogQuery must be created via NewGetTemperatureLogQuery constructor",
	)
)

// GetTemperatureLogQuery retrieves a single temperature log entry by its
// (shipment ID, sequence number) key.
type GetTemperatureLogQuery struct {
	trackingID kernel.TrackingID
	seq        uint64

	guard guard.ConstructorGuard
}

// NewGetTemperatureLogQuery creates a query for a single log entry.
func NewGetTemperatureLogQuery(trackingID kernel.TrackingID, seq uint64) (GetTemperatureLogQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return GetTemperatureLogQuery{}, err
	}
	if seq == 0 {
		return GetTemperatureLogQuery{}, errs.NewValueIsRequiredError("sequence number")
	}
	return GetTemperatureLogQuery{
		trackingID: trackingID,
		seq:        seq,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTemperatureLogQuery) Validate() error {
	return q.guard.Validate(ErrGetTemperatureLogQueryIsNotConstructed)
}

// TrackingID returns the shipment identifier being queried.
func (q GetTemperatureLogQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// Seq returns the sequence number being queried.
func (q GetTemperatureLogQuery) Seq() uint64 {
	return q.seq
}

// GetTemperatureLogQueryResponse is the log entry read model.
type GetTemperatureLogQueryResponse struct {
	TrackingID  string
	Seq         uint64
	Temperature int
	RecordedAt  int64
	Location    string
	Handler     string
	SensorID    string
	IsBreach    bool
}
