package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// CourierRepositoryIntegrationTestSuite verifies courier persistence against
// a real PostgreSQL instance.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ValidCourier_Success() {
	ctx := context.Background()

	c := suite.createTestCourier("Moussa Diop")
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()

	err := suite.repository.Add(ctx, c)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&courierrepo.CourierDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_ExistingCourier_RoundTrip() {
	ctx := context.Background()

	c := suite.createTestCourier("Awa Ndiaye")
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	restored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)

	suite.True(c.IsEqual(restored))
	suite.Equal("Awa Ndiaye", restored.Name())
	suite.Equal(kernel.VehicleMotorcycle, restored.Vehicle())
	suite.Equal(courier.StatusPendingApproval, restored.Status())
	suite.Nil(restored.Location())
	suite.Equal(courier.RatingMax, restored.Rating())
	suite.Equal(0, restored.CompletedDeliveries())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NonExistentCourier_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndLocation() {
	ctx := context.Background()

	c := suite.createTestCourier("Ibrahima Fall")
	suite.tracker.On("TrackAggregate", c.ID(), c).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(c.Approve())
	point, err := kernel.NewGeoPoint(14.6928, -17.4467)
	suite.Require().NoError(err)
	suite.Require().NoError(c.UpdateLocation(point))
	suite.Require().NoError(c.MarkAvailable())
	c.RecordCompletedDelivery()

	suite.Require().NoError(suite.repository.Update(ctx, c))

	restored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.StatusAvailable, restored.Status())
	suite.Require().NotNil(restored.Location())
	suite.InDelta(14.6928, restored.Location().Latitude(), 1e-9)
	suite.InDelta(-17.4467, restored.Location().Longitude(), 1e-9)
	suite.Equal(1, restored.CompletedDeliveries())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_NonExistentCourier_ReturnsError() {
	ctx := context.Background()

	c := suite.createTestCourier("Cheikh Sow")

	err := suite.repository.Update(ctx, c)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAllAssignable_FiltersStatusAndPosition() {
	ctx := context.Background()

	assignable := suite.createAvailableCourier("On Shift", 14.70, -17.45)

	noPosition := suite.createTestCourier("No Position")
	suite.Require().NoError(noPosition.Approve())
	suite.Require().NoError(noPosition.MarkAvailable())

	busy := suite.createAvailableCourier("Busy", 14.71, -17.46)
	suite.Require().NoError(busy.MarkBusy())

	pending := suite.createTestCourier("Pending Approval")

	for _, c := range []*courier.Courier{assignable, noPosition, busy, pending} {
		suite.tracker.On("TrackAggregate", c.ID(), c).Once()
		suite.Require().NoError(suite.repository.Add(ctx, c))
	}

	couriers, err := suite.repository.GetAllAssignable(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(couriers, 1)
	suite.True(assignable.IsEqual(couriers[0]))
	suite.True(couriers[0].IsAssignable())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAllAssignable_NoCandidates_ReturnsEmptySlice() {
	ctx := context.Background()

	couriers, err := suite.repository.GetAllAssignable(ctx)

	suite.Require().NoError(err)
	suite.Empty(couriers)
}

func (suite *CourierRepositoryIntegrationTestSuite) createTestCourier(name string) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), name, kernel.VehicleMotorcycle)
	suite.Require().NoError(err)
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) createAvailableCourier(name string, lat, lon float64) *courier.Courier {
	c := suite.createTestCourier(name)
	suite.Require().NoError(c.Approve())

	point, err := kernel.NewGeoPoint(lat, lon)
	suite.Require().NoError(err)
	suite.Require().NoError(c.UpdateLocation(point))
	suite.Require().NoError(c.MarkAvailable())

	return c
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
