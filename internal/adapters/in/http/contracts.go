package http

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	TrackingID  string `json:"trackingId"`
	Destination string `json:"destination"`
	ProductType string `json:"productType"`
	MinTemp     int    `json:"minTemp"`
	MaxTemp     int    `json:"maxTemp"`
	InitialTemp int    `json:"initialTemp"`
}

// LogTemperatureRequest is the body of POST /api/v1/shipments/:id/temperatures.
type LogTemperatureRequest struct {
	Temperature int    `json:"temperature"`
	Location    string `json:"location"`
	SensorID    string `json:"sensorId"`
}

// LogTemperatureResponse reports the assigned sequence number. Breach is true
// when the reading fell outside the safe range; the reading was recorded and
// the quality penalty applied either way.
type LogTemperatureResponse struct {
	Seq    uint64 `json:"seq"`
	Breach bool   `json:"breach"`
}

// TransferCustodyRequest is the body of POST /api/v1/shipments/:id/transfer.
type TransferCustodyRequest struct {
	NewHandler string `json:"newHandler"`
}

// CompleteDeliveryResponse carries the quality score the delivery settled at.
type CompleteDeliveryResponse struct {
	FinalQualityScore int `json:"finalQualityScore"`
}

// ReportEmergencyRequest is the body of POST /api/v1/shipments/:id/emergency.
type ReportEmergencyRequest struct {
	EmergencyType string `json:"emergencyType"`
	Description   string `json:"description"`
}

// GrantHandlerRequest is the body of POST /api/v1/handlers.
type GrantHandlerRequest struct {
	Principal string `json:"principal"`
}

// Shipment is the full shipment read model returned by GET /api/v1/shipments/:id.
type Shipment struct {
	TrackingID           string `json:"trackingId"`
	Origin               string `json:"origin"`
	Destination          string `json:"destination"`
	CurrentHandler       string `json:"currentHandler"`
	ProductType          string `json:"productType"`
	MinTemp              int    `json:"minTemp"`
	MaxTemp              int    `json:"maxTemp"`
	CurrentTemp          int    `json:"currentTemp"`
	Status               string `json:"status"`
	CreatedAt            int64  `json:"createdAt"`
	UpdatedAt            int64  `json:"updatedAt"`
	BreachCount          int    `json:"breachCount"`
	QualityScore         int    `json:"qualityScore"`
	EmergencyType        string `json:"emergencyType,omitempty"`
	EmergencyDescription string `json:"emergencyDescription,omitempty"`
}

// ShipmentStatus is the tracking summary returned by GET /api/v1/shipments/:id/status.
type ShipmentStatus struct {
	Status         string `json:"status"`
	CurrentHandler string `json:"currentHandler"`
	CurrentTemp    int    `json:"currentTemp"`
	QualityScore   int    `json:"qualityScore"`
	LastUpdated    int64  `json:"lastUpdated"`
}

// TemperatureLogEntry is returned by GET /api/v1/shipments/:id/temperatures/:seq.
type TemperatureLogEntry struct {
	TrackingID  string `json:"trackingId"`
	Seq         uint64 `json:"seq"`
	Temperature int    `json:"temperature"`
	RecordedAt  int64  `json:"recordedAt"`
	Location    string `json:"location"`
	Handler     string `json:"handler"`
	SensorID    string `json:"sensorId"`
	IsBreach    bool   `json:"isBreach"`
}

// QualityAssessment is returned by GET /api/v1/shipments/:id/quality.
type QualityAssessment struct {
	QualityScore int    `json:"qualityScore"`
	BreachCount  int    `json:"breachCount"`
	Status       string `json:"status"`
	Assessment   string `json:"assessment"`
}

// ComplianceStatus is returned by GET /api/v1/shipments/:id/compliance.
type ComplianceStatus struct {
	Compliant bool `json:"compliant"`
}

// HandlerAuthorization is returned by GET /api/v1/handlers/:principal.
type HandlerAuthorization struct {
	Principal  string `json:"principal"`
	Authorized bool   `json:"authorized"`
}
