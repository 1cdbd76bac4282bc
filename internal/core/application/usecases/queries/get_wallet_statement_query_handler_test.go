package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/walletrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetWalletStatementQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetWalletStatementQueryHandler
}

func (suite *GetWalletStatementQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&walletrepo.WalletDTO{}, &walletrepo.TransactionDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetWalletStatementQueryHandler(db)
}

func (suite *GetWalletStatementQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetWalletStatementQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE wallets, wallet_transactions CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetWalletStatementQueryHandlerTestSuite) TestHandle_ReturnsBalanceAndLedgerInOrder() {
	repo := walletrepo.NewGormWalletRepository(suite.db, &noopTracker{})
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	courierID := kernel.NewUUID()
	owner, err := wallet.CourierOwner(courierID)
	suite.Require().NoError(err)

	w, err := wallet.NewWallet(kernel.NewUUID(), owner, "XOF")
	suite.Require().NoError(err)

	commissionAmount, err := kernel.NewMoneyFromString("1250.00", "XOF")
	suite.Require().NoError(err)
	deliveryID := kernel.NewUUID()
	credit, err := w.Credit(commissionAmount, "ORD-2031", wallet.CategoryCommission, &deliveryID, now)
	suite.Require().NoError(err)

	payout, err := kernel.NewMoneyFromString("1000.00", "XOF")
	suite.Require().NoError(err)
	debit, err := w.Debit(payout, "PAYOUT-77", wallet.CategoryWithdrawal, nil, now.Add(time.Minute))
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(context.Background(), w))
	suite.Require().NoError(repo.AddTransaction(context.Background(), credit))
	suite.Require().NoError(repo.AddTransaction(context.Background(), debit))

	query, err := queries.NewGetWalletStatementQuery(w.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.WalletID.IsEqual(w.ID()))
	suite.Equal("courier", result.OwnerKind)
	suite.Require().NotNil(result.OwnerID)
	suite.True(result.OwnerID.IsEqual(courierID))
	suite.Equal("250.00 XOF", result.Balance.String())

	suite.Require().Len(result.Entries, 2)

	suite.Equal("CREDIT", result.Entries[0].Type)
	suite.Equal("1250.00 XOF", result.Entries[0].Amount.String())
	suite.Equal("1250.00 XOF", result.Entries[0].BalanceAfter.String())
	suite.Equal("ORD-2031", result.Entries[0].Reference)
	suite.Equal(wallet.CategoryCommission, result.Entries[0].Category)
	suite.Require().NotNil(result.Entries[0].DeliveryID)
	suite.True(result.Entries[0].DeliveryID.IsEqual(deliveryID))

	suite.Equal("DEBIT", result.Entries[1].Type)
	suite.Equal("250.00 XOF", result.Entries[1].BalanceAfter.String())
	suite.Equal(wallet.CategoryWithdrawal, result.Entries[1].Category)
	suite.Nil(result.Entries[1].DeliveryID)
}

func (suite *GetWalletStatementQueryHandlerTestSuite) TestHandle_PlatformWallet_HasNoOwnerID() {
	repo := walletrepo.NewGormWalletRepository(suite.db, &noopTracker{})

	w, err := wallet.NewWallet(kernel.NewUUID(), wallet.PlatformOwner(), "XOF")
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(context.Background(), w))

	query, err := queries.NewGetWalletStatementQuery(w.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("platform", result.OwnerKind)
	suite.Nil(result.OwnerID)
	suite.Equal("0.00 XOF", result.Balance.String())
	suite.Empty(result.Entries)
}

func (suite *GetWalletStatementQueryHandlerTestSuite) TestHandle_UnknownWallet_ReturnsNotFound() {
	query, err := queries.NewGetWalletStatementQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetWalletStatementQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetWalletStatementQueryHandlerTestSuite))
}
