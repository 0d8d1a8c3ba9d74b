package queries

// GetNonCompliantShipmentsQuery lists active shipments whose current
// temperature sits outside the declared safe range. The query has no
// parameters, so no constructor guard is needed.
type GetNonCompliantShipmentsQuery struct{}

// NewGetNonCompliantShipmentsQuery creates a non-compliant shipments query.
func NewGetNonCompliantShipmentsQuery() GetNonCompliantShipmentsQuery {
	return GetNonCompliantShipmentsQuery{}
}

// NonCompliantShipment is one row of the non-compliance read model.
type NonCompliantShipment struct {
	TrackingID     string
	CurrentHandler string
	CurrentTemp    int
	MinTemp        int
	MaxTemp        int
	QualityScore   int
}
