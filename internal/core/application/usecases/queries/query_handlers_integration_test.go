package queries_test

import (
	"context"
	"testing"
	"time"

	"coldchain/internal/adapters/out/postgres/handlerrepo"
	"coldchain/internal/adapters/out/postgres/shipmentrepo"
	"coldchain/internal/adapters/out/postgres/templogrepo"
	"coldchain/internal/core/application/usecases/queries"
	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL database. Rows are seeded through the DTOs directly: queries
// read whatever the write side committed, so the tests control the stored
// state precisely.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&templogrepo.EntryDTO{},
		&handlerrepo.AuthorizedHandlerDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, temperature_logs, authorized_handlers").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) seedShipment(dto shipmentrepo.ShipmentDTO) {
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *QueryHandlersIntegrationTestSuite) defaultShipment(id string) shipmentrepo.ShipmentDTO {
	return shipmentrepo.ShipmentDTO{
		ID:             id,
		Origin:         "producer-1",
		Destination:    "pharmacy-9",
		CurrentHandler: "producer-1",
		ProductType:    "Vaccines",
		MinTemp:        2,
		MaxTemp:        8,
		CurrentTemp:    5,
		Status:         int(shipment.Created),
		CreatedAt:      100,
		UpdatedAt:      100,
		BreachCount:    0,
		QualityScore:   100,
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShipment_ReturnsFullRecord() {
	ctx := context.Background()

	dto := suite.defaultShipment("SHIP-001")
	dto.BreachCount = 2
	dto.QualityScore = 80
	dto.EmergencyType = "cooling-failure"
	suite.seedShipment(dto)

	query, err := queries.NewGetShipmentQuery(mustTrackingID(suite.T(), "SHIP-001"))
	suite.Require().NoError(err)

	resp, err := queries.NewGetShipmentQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("SHIP-001", resp.TrackingID)
	suite.Equal("producer-1", resp.Origin)
	suite.Equal(2, resp.BreachCount)
	suite.Equal(80, resp.QualityScore)
	suite.Equal("cooling-failure", resp.EmergencyType)
	suite.Equal(shipment.Created, resp.Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShipment_UnknownID_ReturnsNilNotError() {
	ctx := context.Background()

	query, err := queries.NewGetShipmentQuery(mustTrackingID(suite.T(), "SHIP-MISSING"))
	suite.Require().NoError(err)

	resp, err := queries.NewGetShipmentQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Nil(resp, "absence is not an error for the full-record query")
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShipmentStatus_UnknownID_ReturnsNotFound() {
	ctx := context.Background()

	query, err := queries.NewGetShipmentStatusQuery(mustTrackingID(suite.T(), "SHIP-MISSING"))
	suite.Require().NoError(err)

	_, err = queries.NewGetShipmentStatusQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetTemperatureLog_DerivesBreachFromRange() {
	ctx := context.Background()

	suite.seedShipment(suite.defaultShipment("SHIP-001"))
	suite.Require().NoError(suite.db.Create(&templogrepo.EntryDTO{
		ShipmentID:  "SHIP-001",
		Seq:         1,
		Temperature: 5,
		RecordedAt:  100,
		Location:    "Origin",
		Handler:     "producer-1",
		SensorID:    "SENSOR-ORIGIN",
	}).Error)
	suite.Require().NoError(suite.db.Create(&templogrepo.EntryDTO{
		ShipmentID:  "SHIP-001",
		Seq:         2,
		Temperature: 12,
		RecordedAt:  110,
		Location:    "Truck 12",
		Handler:     "producer-1",
		SensorID:    "SNS-1",
	}).Error)

	handler := queries.NewGetTemperatureLogQueryHandler(suite.db)

	inRange, err := queries.NewGetTemperatureLogQuery(mustTrackingID(suite.T(), "SHIP-001"), 1)
	suite.Require().NoError(err)
	resp, err := handler.Handle(ctx, inRange)
	suite.Require().NoError(err)
	suite.False(resp.IsBreach)

	outOfRange, err := queries.NewGetTemperatureLogQuery(mustTrackingID(suite.T(), "SHIP-001"), 2)
	suite.Require().NoError(err)
	resp, err = handler.Handle(ctx, outOfRange)
	suite.Require().NoError(err)
	suite.True(resp.IsBreach)
	suite.Equal(12, resp.Temperature)
	suite.Equal("Truck 12", resp.Location)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetQualityAssessment_DerivesBand() {
	ctx := context.Background()

	dto := suite.defaultShipment("SHIP-001")
	dto.QualityScore = 55
	dto.BreachCount = 5
	suite.seedShipment(dto)

	query, err := queries.NewGetQualityAssessmentQuery(mustTrackingID(suite.T(), "SHIP-001"))
	suite.Require().NoError(err)

	resp, err := queries.NewGetQualityAssessmentQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(55, resp.QualityScore)
	suite.Equal(5, resp.BreachCount)
	suite.Equal(shipment.AssessQuality(55), resp.Assessment)
}

func (suite *QueryHandlersIntegrationTestSuite) TestIsTemperatureCompliant() {
	ctx := context.Background()

	compliant := suite.defaultShipment("SHIP-001")
	suite.seedShipment(compliant)

	breached := suite.defaultShipment("SHIP-002")
	breached.CurrentTemp = 15
	suite.seedShipment(breached)

	handler := queries.NewIsTemperatureCompliantQueryHandler(suite.db)

	query, err := queries.NewIsTemperatureCompliantQuery(mustTrackingID(suite.T(), "SHIP-001"))
	suite.Require().NoError(err)
	ok, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(ok)

	query, err = queries.NewIsTemperatureCompliantQuery(mustTrackingID(suite.T(), "SHIP-002"))
	suite.Require().NoError(err)
	ok, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *QueryHandlersIntegrationTestSuite) TestIsAuthorizedHandler_DefaultDeny() {
	ctx := context.Background()

	suite.Require().NoError(suite.db.Create(&handlerrepo.AuthorizedHandlerDTO{
		Principal:  "carrier-acme",
		Authorized: true,
	}).Error)

	handler := queries.NewIsAuthorizedHandlerQueryHandler(suite.db)

	query, err := queries.NewIsAuthorizedHandlerQuery(mustPrincipal(suite.T(), "carrier-acme"))
	suite.Require().NoError(err)
	ok, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(ok)

	query, err = queries.NewIsAuthorizedHandlerQuery(mustPrincipal(suite.T(), "unknown-carrier"))
	suite.Require().NoError(err)
	ok, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.False(ok, "absent principal is not authorized, never an error")
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetNonCompliantShipments_ExcludesCompleted() {
	ctx := context.Background()

	active := suite.defaultShipment("SHIP-001")
	active.CurrentTemp = 15
	suite.seedShipment(active)

	completed := suite.defaultShipment("SHIP-002")
	completed.CurrentTemp = 15
	completed.Status = int(shipment.Completed)
	suite.seedShipment(completed)

	fine := suite.defaultShipment("SHIP-003")
	suite.seedShipment(fine)

	rows, err := queries.NewGetNonCompliantShipmentsQueryHandler(suite.db).
		Handle(ctx, queries.NewGetNonCompliantShipmentsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("SHIP-001", rows[0].TrackingID)
	suite.Equal(15, rows[0].CurrentTemp)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
