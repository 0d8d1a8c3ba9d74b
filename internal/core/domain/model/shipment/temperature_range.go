package shipment

import (
	"fmt"

	"coldchain/internal/pkg/errs"
	"coldchain/internal/pkg/guard"
)

// ErrTemperatureRangeIsNotConstructed is returned when a TemperatureRange was not
// created through NewTemperatureRange.
var ErrTemperatureRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"TemperatureRange must be created via NewTemperatureRange",
)

// TemperatureRange is the inclusive [min, max] band a shipment must stay within.
// It is an immutable value object; min never exceeds max.
type TemperatureRange struct {
	minTemp int
	maxTemp int

	guard guard.ConstructorGuard
}

// NewTemperatureRange creates a temperature range.
// Fails when min exceeds max.
func NewTemperatureRange(minTemp, maxTemp int) (TemperatureRange, error) {
	if minTemp > maxTemp {
		return TemperatureRange{}, errs.NewValueIsInvalidErrorWithCause(
			"temperature range",
			fmt.Errorf("min %d exceeds max %d", minTemp, maxTemp),
		)
	}
	return TemperatureRange{
		minTemp: minTemp,
		maxTemp: maxTemp,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Min returns the lower inclusive bound.
func (r TemperatureRange) Min() int {
	return r.minTemp
}

// Max returns the upper inclusive bound.
func (r TemperatureRange) Max() int {
	return r.maxTemp
}

// Contains reports whether the temperature lies within [Min, Max].
func (r TemperatureRange) Contains(temperature int) bool {
	return temperature >= r.minTemp && temperature <= r.maxTemp
}

// Validate ensures the range was created via NewTemperatureRange.
func (r TemperatureRange) Validate() error {
	return r.guard.Validate(ErrTemperatureRangeIsNotConstructed)
}
