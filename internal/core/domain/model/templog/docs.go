// Package templog contains the immutable temperature log entry. Entries form an
// append-only history keyed by (shipment tracking ID, sequence number); the
// sequence numbers come from a single process-wide counter so they are strictly
// increasing and globally unique across all shipments.
package templog
