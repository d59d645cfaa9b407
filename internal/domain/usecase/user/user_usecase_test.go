package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/party-bank/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/party-bank/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/party-bank/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

type userFixture struct {
	useCase  *UserUseCase
	userRepo *persistencemocks.MockUserRepository
	txRepo   *persistencemocks.MockUserRepository
	txGate   *persistencemocks.MockReviveGateway
	uow      *persistencemocks.MockUnitOfWork
	guard    *usecasemocks.MockBalanceGuard
	idGen    *coremocks.MockIDGenerator
	logger   *coremocks.MockLogger
	txCtx    context.Context
	fixedNow time.Time
}

func newUserFixture(t *testing.T) *userFixture {
	f := &userFixture{
		userRepo: persistencemocks.NewMockUserRepository(t),
		txRepo:   persistencemocks.NewMockUserRepository(t),
		txGate:   persistencemocks.NewMockReviveGateway(t),
		uow:      persistencemocks.NewMockUnitOfWork(t),
		guard:    usecasemocks.NewMockBalanceGuard(t),
		idGen:    coremocks.NewMockIDGenerator(t),
		logger:   coremocks.NewMockLogger(t),
		txCtx:    context.WithValue(context.Background(), txKey{}, "tx"),
		fixedNow: time.Date(2026, 5, 1, 22, 0, 0, 0, time.UTC),
	}

	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(f.fixedNow).Maybe()

	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.useCase = NewUserUseCase(f.userRepo, f.uow, f.guard, f.idGen, timeProvider, f.logger, DefaultSettings())
	return f
}

func (f *userFixture) expectBegin() {
	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Once()
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates user and registration entry in one unit of work", func(t *testing.T) {
		f := newUserFixture(t)
		f.idGen.EXPECT().NewID().Return("guest-1").Once()
		f.expectBegin()
		f.uow.EXPECT().UserRepository(f.txCtx).Return(f.txRepo).Once()
		f.txRepo.EXPECT().Create(f.txCtx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "guest-1" && u.Name == "Robin" && u.Balance() == 20
		})).Return(nil).Once()
		f.uow.EXPECT().ReviveGateway(f.txCtx).Return(f.txGate).Once()
		f.txGate.EXPECT().AppendTransaction(f.txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.ToUserID == "guest-1" && tx.Amount == 20 && tx.Type == entity.TypeRegistration
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

		user, err := f.useCase.RegisterUser(ctx, " Robin ")

		require.NoError(t, err)
		assert.Equal(t, "guest-1", user.ID)
		assert.Equal(t, int64(20), user.Balance())
		assert.False(t, user.HasRevived)
	})

	t.Run("Invalid name never opens a unit of work", func(t *testing.T) {
		f := newUserFixture(t)
		f.idGen.EXPECT().NewID().Return("guest-1").Once()

		user, err := f.useCase.RegisterUser(ctx, "   ")

		assert.ErrorIs(t, err, errs.ErrInvalidName)
		assert.Nil(t, user)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Ledger failure rolls back the user row", func(t *testing.T) {
		f := newUserFixture(t)
		dbErr := errs.NewGatewayError("append_transaction", "guest-1", errors.New("broken pipe"))

		f.idGen.EXPECT().NewID().Return("guest-1").Once()
		f.expectBegin()
		f.uow.EXPECT().UserRepository(f.txCtx).Return(f.txRepo).Once()
		f.txRepo.EXPECT().Create(f.txCtx, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().ReviveGateway(f.txCtx).Return(f.txGate).Once()
		f.txGate.EXPECT().AppendTransaction(f.txCtx, mock.Anything).Return(dbErr).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		user, err := f.useCase.RegisterUser(ctx, "Robin")

		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
		assert.Nil(t, user)
	})

	t.Run("Duplicate ID is reported", func(t *testing.T) {
		f := newUserFixture(t)
		f.idGen.EXPECT().NewID().Return("guest-1").Once()
		f.expectBegin()
		f.uow.EXPECT().UserRepository(f.txCtx).Return(f.txRepo).Once()
		f.txRepo.EXPECT().Create(f.txCtx, mock.Anything).Return(errs.ErrDuplicateUser).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		_, err := f.useCase.RegisterUser(ctx, "Robin")

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})
}

func TestGetUserBalance(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		balance    int64
		hasRevived bool
		state      entity.FloorState
	}{
		{"Active guest", 12, false, entity.StateActive},
		{"At floor with revive left", 0, false, entity.StateAtFloorEligible},
		{"At floor after revive", 0, true, entity.StateAtFloorExhausted},
		{"Revived guest back in play", 3, true, entity.StateActive},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUserFixture(t)
			stored := entity.RestoreUser("guest-1", "Robin", tc.balance, tc.hasRevived, f.fixedNow, f.fixedNow)
			f.userRepo.EXPECT().GetByID(ctx, "guest-1").Return(stored, nil).Once()

			view, err := f.useCase.GetUserBalance(ctx, "guest-1")

			require.NoError(t, err)
			assert.Equal(t, "Robin", view.Name)
			assert.Equal(t, tc.balance, view.Balance)
			assert.Equal(t, tc.hasRevived, view.HasRevived)
			assert.Equal(t, tc.state, view.State)
		})
	}

	t.Run("Empty ID", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.useCase.GetUserBalance(ctx, "")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByID(ctx, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.useCase.GetUserBalance(ctx, "ghost")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUserExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByID(ctx, "guest-1").
			Return(entity.RestoreUser("guest-1", "Robin", 5, false, f.fixedNow, f.fixedNow), nil).Once()

		exists, err := f.useCase.UserExists(ctx, "guest-1")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Not found is not an error", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByID(ctx, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		exists, err := f.useCase.UserExists(ctx, "ghost")

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Store failure is surfaced", func(t *testing.T) {
		f := newUserFixture(t)
		dbErr := errors.New("database connection error")
		f.userRepo.EXPECT().GetByID(ctx, "guest-1").Return(nil, dbErr).Once()

		exists, err := f.useCase.UserExists(ctx, "guest-1")

		assert.Equal(t, dbErr, err)
		assert.False(t, exists)
	})
}
