// Package shipment contains the Shipment aggregate root and its supporting value
// objects: the lifecycle Status state machine, the TemperatureRange band, and the
// quality scoring policy with its derived Assessment bands.
//
// The aggregate enforces the custody and lifecycle rules of the cold chain:
// who may transfer, log against, and complete a shipment, how breach events
// degrade the quality score, and which states are terminal. Temperature log
// entries themselves are a separate aggregate (package templog); the shipment
// only carries the derived counters.
package shipment
