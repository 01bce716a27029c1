package registryrepo_test

import (
	"context"
	"testing"
	"time"

	"myfood/internal/adapters/out/postgres/registryrepo"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/registry"
	"myfood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RegistryIntegrationTestSuite provides integration tests for the read-only
// registry adapter using PostgreSQL containers.
type RegistryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	adapter   *registryrepo.GormRegistry
}

func (suite *RegistryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&registryrepo.UserDTO{},
		&registryrepo.CompanyDTO{},
		&registryrepo.ProductDTO{},
		&registryrepo.CourierCompanyDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *RegistryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users, companies, products, courier_companies").Error
	suite.Require().NoError(err)

	suite.adapter = registryrepo.NewGormRegistry(suite.db)
}

func (suite *RegistryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RegistryIntegrationTestSuite) TestGetUser_Courier() {
	err := suite.db.Create(&registryrepo.UserDTO{
		ID:      30,
		Kind:    int(registry.Courier),
		Name:    "Joao",
		Email:   "joao@exemplo.com",
		Address: "Rua A, 1",
		Vehicle: "moto",
		Plate:   "ABC1234",
	}).Error
	suite.Require().NoError(err)

	user, err := suite.adapter.GetUser(context.Background(), 30)
	suite.Require().NoError(err)

	suite.Equal(kernel.UserID(30), user.ID)
	suite.Equal(registry.Courier, user.Kind)
	suite.Equal("Joao", user.Name)
	suite.Equal("moto", user.Vehicle)
}

func (suite *RegistryIntegrationTestSuite) TestGetUser_NotFound() {
	_, err := suite.adapter.GetUser(context.Background(), 99)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RegistryIntegrationTestSuite) TestGetCompany_Pharmacy() {
	err := suite.db.Create(&registryrepo.CompanyDTO{
		ID:            20,
		Kind:          int(registry.Pharmacy),
		Name:          "Farmacia Boa",
		Address:       "Av. B, 2",
		OwnerID:       5,
		Open24Hours:   true,
		EmployeeCount: 12,
	}).Error
	suite.Require().NoError(err)

	company, err := suite.adapter.GetCompany(context.Background(), 20)
	suite.Require().NoError(err)

	suite.Equal(registry.Pharmacy, company.Kind)
	suite.Equal("Farmacia Boa", company.Name)
	suite.True(company.Open24Hours)
	suite.Equal(12, company.EmployeeCount)
}

func (suite *RegistryIntegrationTestSuite) TestGetCompany_NotFound() {
	_, err := suite.adapter.GetCompany(context.Background(), 99)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RegistryIntegrationTestSuite) TestGetProduct() {
	err := suite.db.Create(&registryrepo.ProductDTO{
		ID:        7,
		CompanyID: 20,
		Name:      "Dipirona",
		Price:     9.90,
		Category:  "remedio",
	}).Error
	suite.Require().NoError(err)

	product, err := suite.adapter.GetProduct(context.Background(), 7)
	suite.Require().NoError(err)

	suite.Equal(kernel.CompanyID(20), product.CompanyID)
	suite.Equal("Dipirona", product.Name)
	suite.InDelta(9.90, product.Price, 0.001)
}

func (suite *RegistryIntegrationTestSuite) TestCourierCompanies_SortedByCompany() {
	for _, companyID := range []int{21, 20} {
		err := suite.db.Create(&registryrepo.CourierCompanyDTO{CourierID: 30, CompanyID: companyID}).Error
		suite.Require().NoError(err)
	}

	companies, err := suite.adapter.CourierCompanies(context.Background(), 30)
	suite.Require().NoError(err)

	suite.Equal([]kernel.CompanyID{20, 21}, companies)
}

func (suite *RegistryIntegrationTestSuite) TestCouriers_ListsOnlyCouriersByID() {
	for _, fixture := range []struct {
		id   int
		kind registry.UserKind
		name string
	}{
		{31, registry.Courier, "Pedro"},
		{10, registry.Customer, "Maria"},
		{30, registry.Courier, "Joao"},
	} {
		err := suite.db.Create(&registryrepo.UserDTO{
			ID: fixture.id, Kind: int(fixture.kind), Name: fixture.name,
		}).Error
		suite.Require().NoError(err)
	}

	couriers, err := suite.adapter.Couriers(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(couriers, 2)
	suite.Equal("Joao", couriers[0].Name)
	suite.Equal("Pedro", couriers[1].Name)
}

func (suite *RegistryIntegrationTestSuite) TestCourierCompanies_Unaffiliated() {
	companies, err := suite.adapter.CourierCompanies(context.Background(), 30)

	suite.Require().NoError(err)
	suite.NotNil(companies)
	suite.Empty(companies)
}

func TestRegistryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RegistryIntegrationTestSuite))
}
