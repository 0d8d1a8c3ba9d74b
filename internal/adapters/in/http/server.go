// Package http exposes the tracking core over a JSON API. The adapter owns
// the two concerns the core keeps outside its boundary: who is calling (the
// X-Caller-Principal header) and when (the logical clock).
package http

import (
	"errors"
	"net/http"

	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/core/application/usecases/queries"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// CallerHeader names the request header carrying the caller principal.
const CallerHeader = "X-Caller-Principal"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	clock *LogicalClock

	// Command handlers
	createShipmentHandler   commands.CreateShipmentCommandHandler
	logTemperatureHandler   commands.LogTemperatureCommandHandler
	transferCustodyHandler  commands.TransferCustodyCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	reportEmergencyHandler  commands.ReportEmergencyCommandHandler
	grantHandlerHandler     commands.GrantHandlerCommandHandler
	revokeHandlerHandler    commands.RevokeHandlerCommandHandler

	// Query handlers
	getShipmentHandler            queries.GetShipmentQueryHandler
	getShipmentStatusHandler      queries.GetShipmentStatusQueryHandler
	getTemperatureLogHandler      queries.GetTemperatureLogQueryHandler
	getQualityAssessmentHandler   queries.GetQualityAssessmentQueryHandler
	isTemperatureCompliantHandler queries.IsTemperatureCompliantQueryHandler
	isAuthorizedHandlerHandler    queries.IsAuthorizedHandlerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	clock *LogicalClock,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	logTemperatureHandler commands.LogTemperatureCommandHandler,
	transferCustodyHandler commands.TransferCustodyCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	reportEmergencyHandler commands.ReportEmergencyCommandHandler,
	grantHandlerHandler commands.GrantHandlerCommandHandler,
	revokeHandlerHandler commands.RevokeHandlerCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getShipmentStatusHandler queries.GetShipmentStatusQueryHandler,
	getTemperatureLogHandler queries.GetTemperatureLogQueryHandler,
	getQualityAssessmentHandler queries.GetQualityAssessmentQueryHandler,
	isTemperatureCompliantHandler queries.IsTemperatureCompliantQueryHandler,
	isAuthorizedHandlerHandler queries.IsAuthorizedHandlerQueryHandler,
) *Server {
	return &Server{
		clock:                         clock,
		createShipmentHandler:         createShipmentHandler,
		logTemperatureHandler:         logTemperatureHandler,
		transferCustodyHandler:        transferCustodyHandler,
		completeDeliveryHandler:       completeDeliveryHandler,
		reportEmergencyHandler:        reportEmergencyHandler,
		grantHandlerHandler:           grantHandlerHandler,
		revokeHandlerHandler:          revokeHandlerHandler,
		getShipmentHandler:            getShipmentHandler,
		getShipmentStatusHandler:      getShipmentStatusHandler,
		getTemperatureLogHandler:      getTemperatureLogHandler,
		getQualityAssessmentHandler:   getQualityAssessmentHandler,
		isTemperatureCompliantHandler: isTemperatureCompliantHandler,
		isAuthorizedHandlerHandler:    isAuthorizedHandlerHandler,
	}
}

// RegisterRoutes binds all API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/:id", s.GetShipment)
	api.GET("/shipments/:id/status", s.GetShipmentStatus)
	api.POST("/shipments/:id/temperatures", s.LogTemperature)
	api.GET("/shipments/:id/temperatures/:seq", s.GetTemperatureLog)
	api.POST("/shipments/:id/transfer", s.TransferCustody)
	api.POST("/shipments/:id/complete", s.CompleteDelivery)
	api.POST("/shipments/:id/emergency", s.ReportEmergency)
	api.GET("/shipments/:id/quality", s.GetQualityAssessment)
	api.GET("/shipments/:id/compliance", s.IsTemperatureCompliant)
	api.POST("/handlers", s.GrantHandler)
	api.DELETE("/handlers/:principal", s.RevokeHandler)
	api.GET("/handlers/:principal", s.IsAuthorizedHandler)
}

// caller extracts and validates the caller principal from the request header.
func (s *Server) caller(ctx echo.Context) (kernel.Principal, error) {
	raw := ctx.Request().Header.Get(CallerHeader)
	return kernel.NewPrincipal(raw)
}

func trackingIDParam(ctx echo.Context) (kernel.TrackingID, error) {
	return kernel.NewTrackingID(ctx.Param("id"))
}

// CreateShipment handles POST /api/v1/shipments.
// The caller becomes origin and first handler of the new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid "+CallerHeader+" header")
	}

	var req CreateShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	trackingID, err := kernel.NewTrackingID(req.TrackingID)
	if err != nil {
		return writeError(ctx, err)
	}
	destination, err := kernel.NewPrincipal(req.Destination)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		trackingID,
		caller,
		destination,
		req.ProductType,
		req.MinTemp, req.MaxTemp, req.InitialTemp,
		s.clock.Tick(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// LogTemperature handles POST /api/v1/shipments/:id/temperatures.
// A breach reading is still a recorded reading: the response stays 200 and
// carries the breach flag instead of an error body.
func (s *Server) LogTemperature(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid "+CallerHeader+" header")
	}

	trackingID, err := trackingIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req LogTemperatureRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewLogTemperatureCommand(
		trackingID, caller, req.Temperature, req.Location, req.SensorID, s.clock.Tick(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	seq, err := s.logTemperatureHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil && !errors.Is(err, shipment.ErrTemperatureBreach) {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LogTemperatureResponse{
		Seq:    seq,
		Breach: errors.Is(err, shipment.ErrTemperatureBreach),
	})
}

// TransferCustody handles POST /api/v1/shipments/:id/transfer.
func (s *Server) TransferCustody(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid "+CallerHeader+" header")
	}

	trackingID, err := trackingIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req TransferCustodyRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	newHandler, err := kernel.NewPrincipal(req.NewHandler)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransferCustodyCommand(trackingID, caller, newHandler, s.clock.Tick())
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.transferCustodyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteDelivery handles POST /api/v1/shipments/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid "+CallerHeader+" header")
	}

	trackingID, err := trackingIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(trackingID, caller, s.clock.Tick())
	if err != nil {
		return writeError(ctx, err)
	}

	score, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CompleteDeliveryResponse{FinalQualityScore: score})
}

// ReportEmergency handles POST /api/v1/shipments/:id/emergency.
func (s *Server) ReportEmergency(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid "+CallerHeader+" header")
	}

	trackingID, err := trackingIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ReportEmergencyRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReportEmergencyCommand(
		trackingID, caller, req.EmergencyType, req.Description, s.clock.Tick(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reportEmergencyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GrantHandler handles POST /api/v1/handlers.
func (s *Server) GrantHandler(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid "+CallerHeader+" header")
	}

	var req GrantHandlerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	principal, err := kernel.NewPrincipal(req.Principal)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewGrantHandlerCommand(caller, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.grantHandlerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RevokeHandler handles DELETE /api/v1/handlers/:principal.
func (s *Server) RevokeHandler(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return badRequest(ctx, "missing or invalid "+CallerHeader+" header")
	}

	principal, err := kernel.NewPrincipal(ctx.Param("principal"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRevokeHandlerCommand(caller, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.revokeHandlerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	trackingID, err := trackingIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(trackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if resp == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "shipment not found",
		})
	}

	return ctx.JSON(http.StatusOK, Shipment{
		TrackingID:           resp.TrackingID,
		Origin:               resp.Origin,
		Destination:          resp.Destination,
		CurrentHandler:       resp.CurrentHandler,
		ProductType:          resp.ProductType,
		MinTemp:              resp.MinTemp,
		MaxTemp:              resp.MaxTemp,
		CurrentTemp:          resp.CurrentTemp,
		Status:               resp.Status.String(),
		CreatedAt:            resp.CreatedAt,
		UpdatedAt:            resp.UpdatedAt,
		BreachCount:          resp.BreachCount,
		QualityScore:         resp.QualityScore,
		EmergencyType:        resp.EmergencyType,
		EmergencyDescription: resp.EmergencyDescription,
	})
}

// GetShipmentStatus handles GET /api/v1/shipments/:id/status.
func (s *Server) GetShipmentStatus(ctx echo.Context) error {
	trackingID, err := trackingIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentStatusQuery(trackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getShipmentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentStatus{
		Status:         resp.Status.String(),
		CurrentHandler: resp.CurrentHandler,
		CurrentTemp:    resp.CurrentTemp,
		QualityScore:   resp.QualityScore,
		LastUpdated:    resp.LastUpdated,
	})
}

// GetTemperatureLog handles GET /api/v1/shipments/:id/temperatures/:seq.
func (s *Server) GetTemperatureLog(ctx echo.Context) error {
	trackingID, err := trackingIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var seq uint64
	if err = echo.PathParamsBinder(ctx).Uint64("seq", &seq).BindError(); err != nil {
		return badRequest(ctx, "invalid sequence number")
	}

	query, err := queries.NewGetTemperatureLogQuery(trackingID, seq)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getTemperatureLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TemperatureLogEntry{
		TrackingID:  resp.TrackingID,
		Seq:         resp.Seq,
		Temperature: resp.Temperature,
		RecordedAt:  resp.RecordedAt,
		Location:    resp.Location,
		Handler:     resp.Handler,
		SensorID:    resp.SensorID,
		IsBreach:    resp.IsBreach,
	})
}

// GetQualityAssessment handles GET /api/v1/shipments/:id/quality.
func (s *Server) GetQualityAssessment(ctx echo.Context) error {
	trackingID, err := trackingIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetQualityAssessmentQuery(trackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getQualityAssessmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, QualityAssessment{
		QualityScore: resp.QualityScore,
		BreachCount:  resp.BreachCount,
		Status:       resp.Status.String(),
		Assessment:   string(resp.Assessment),
	})
}

// IsTemperatureCompliant handles GET /api/v1/shipments/:id/compliance.
func (s *Server) IsTemperatureCompliant(ctx echo.Context) error {
	trackingID, err := trackingIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewIsTemperatureCompliantQuery(trackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	compliant, err := s.isTemperatureCompliantHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ComplianceStatus{Compliant: compliant})
}

// IsAuthorizedHandler handles GET /api/v1/handlers/:principal.
func (s *Server) IsAuthorizedHandler(ctx echo.Context) error {
	principal, err := kernel.NewPrincipal(ctx.Param("principal"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewIsAuthorizedHandlerQuery(principal)
	if err != nil {
		return writeError(ctx, err)
	}

	authorized, err := s.isAuthorizedHandlerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, HandlerAuthorization{
		Principal:  principal.String(),
		Authorized: authorized,
	})
}
