package user

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestModifyBalance_Validation(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		userID   string
		delta    int64
		txType   entity.TransactionType
		expected error
	}{
		{"Empty user ID", "", 5, entity.TypeAdjustment, errs.ErrInvalidUserID},
		{"Zero delta", "guest-1", 0, entity.TypeAdjustment, errs.ErrInvalidAmount},
		{"Delta too large", "guest-1", MaxCoinChange + 1, entity.TypeAdjustment, errs.ErrInvalidAmount},
		{"Delta too small", "guest-1", -MaxCoinChange - 1, entity.TypeAdjustment, errs.ErrInvalidAmount},
		{"Unknown type", "guest-1", 5, entity.TransactionType("bribe"), errs.ErrInvalidRequest},
		{"Revive is reserved", "guest-1", 5, entity.TypeRevive, errs.ErrInvalidRequest},
		{"Registration is reserved", "guest-1", 5, entity.TypeRegistration, errs.ErrInvalidRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUserFixture(t)

			change, err := f.useCase.ModifyBalance(ctx, tc.userID, tc.delta, tc.txType, "test")

			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, change)
			f.uow.AssertNotCalled(t, "Begin", mock.Anything)
		})
	}
}

func TestModifyBalance_GainStaysAboveFloor(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	f.expectBegin()
	f.uow.EXPECT().UserRepository(f.txCtx).Return(f.txRepo).Once()
	f.txRepo.EXPECT().ApplyCoinChange(f.txCtx, "guest-1", int64(5), int64(0)).Return(int64(10), int64(15), nil).Once()
	f.uow.EXPECT().ReviveGateway(f.txCtx).Return(f.txGate).Once()
	f.txGate.EXPECT().AppendTransaction(f.txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Amount == 5 && tx.Type == entity.TypeRiskCard && tx.Description == "Lucky Jackpot"
	})).Return(nil).Once()
	f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()
	f.guard.EXPECT().SettleFloor(ctx, "guest-1", int64(15)).Return(entity.FloorOutcome{NewBalance: 15}).Once()

	change, err := f.useCase.ModifyBalance(ctx, "guest-1", 5, entity.TypeRiskCard, "Lucky Jackpot")

	require.NoError(t, err)
	assert.Equal(t, &usecase.BalanceChange{
		UserID:     "guest-1",
		Requested:  5,
		Applied:    5,
		RawBalance: 15,
		Balance:    15,
	}, change)
}

func TestModifyBalance_LossPastFloorRecordsAppliedAmountAndRevives(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	f.expectBegin()
	f.uow.EXPECT().UserRepository(f.txCtx).Return(f.txRepo).Once()
	f.txRepo.EXPECT().ApplyCoinChange(f.txCtx, "guest-1", int64(-8), int64(0)).Return(int64(3), int64(-5), nil).Once()
	f.uow.EXPECT().ReviveGateway(f.txCtx).Return(f.txGate).Once()
	f.txGate.EXPECT().AppendTransaction(f.txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Amount == -3 && tx.Type == entity.TypeAdjustment
	})).Return(nil).Once()
	f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()
	f.guard.EXPECT().SettleFloor(ctx, "guest-1", int64(-5)).
		Return(entity.FloorOutcome{Revived: true, NewBalance: entity.ReviveAmount}).Once()

	change, err := f.useCase.ModifyBalance(ctx, "guest-1", -8, entity.TypeAdjustment, "Spilled a drink")

	require.NoError(t, err)
	assert.Equal(t, int64(-8), change.Requested)
	assert.Equal(t, int64(-3), change.Applied)
	assert.Equal(t, int64(-5), change.RawBalance)
	assert.Equal(t, entity.ReviveAmount, change.Balance)
	assert.True(t, change.Revived)
	assert.False(t, change.GameOver)
}

func TestModifyBalance_LossAtFloorSkipsLedgerAndEndsGame(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	f.expectBegin()
	f.uow.EXPECT().UserRepository(f.txCtx).Return(f.txRepo).Once()
	f.txRepo.EXPECT().ApplyCoinChange(f.txCtx, "guest-1", int64(-2), int64(0)).Return(int64(0), int64(-2), nil).Once()
	f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()
	f.guard.EXPECT().SettleFloor(ctx, "guest-1", int64(-2)).
		Return(entity.FloorOutcome{GameOver: true, NewBalance: 0}).Once()

	change, err := f.useCase.ModifyBalance(ctx, "guest-1", -2, entity.TypeHiddenQR, "Trap")

	require.NoError(t, err)
	assert.Equal(t, int64(0), change.Applied)
	assert.True(t, change.GameOver)
	f.uow.AssertNotCalled(t, "ReviveGateway", mock.Anything)
}

func TestModifyBalance_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown user is returned unwrapped", func(t *testing.T) {
		f := newUserFixture(t)
		f.expectBegin()
		f.uow.EXPECT().UserRepository(f.txCtx).Return(f.txRepo).Once()
		f.txRepo.EXPECT().ApplyCoinChange(f.txCtx, "ghost", int64(3), int64(0)).Return(int64(0), int64(0), errs.ErrUserNotFound).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		change, err := f.useCase.ModifyBalance(ctx, "ghost", 3, entity.TypeMission, "Icebreaker")

		assert.Equal(t, errs.ErrUserNotFound, err)
		assert.Nil(t, change)
	})

	t.Run("Begin failure is wrapped as a balance error", func(t *testing.T) {
		f := newUserFixture(t)
		dbErr := errs.NewGatewayError("begin", "", errors.New("too many connections"))
		f.uow.EXPECT().Begin(mock.Anything).Return(nil, dbErr).Once()

		_, err := f.useCase.ModifyBalance(ctx, "guest-1", 3, entity.TypeMission, "Icebreaker")

		var balanceErr *errs.BalanceError
		require.ErrorAs(t, err, &balanceErr)
		assert.Equal(t, "guest-1", balanceErr.UserID)
		assert.Equal(t, int64(3), balanceErr.Amount)
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("Ledger failure rolls back and skips the floor", func(t *testing.T) {
		f := newUserFixture(t)
		f.expectBegin()
		f.uow.EXPECT().UserRepository(f.txCtx).Return(f.txRepo).Once()
		f.txRepo.EXPECT().ApplyCoinChange(f.txCtx, "guest-1", int64(-4), int64(0)).Return(int64(6), int64(2), nil).Once()
		f.uow.EXPECT().ReviveGateway(f.txCtx).Return(f.txGate).Once()
		f.txGate.EXPECT().AppendTransaction(f.txCtx, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		_, err := f.useCase.ModifyBalance(ctx, "guest-1", -4, entity.TypeRiskCard, "Dare")

		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		f.guard.AssertNotCalled(t, "SettleFloor", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Commit failure rolls back", func(t *testing.T) {
		f := newUserFixture(t)
		f.expectBegin()
		f.uow.EXPECT().UserRepository(f.txCtx).Return(f.txRepo).Once()
		f.txRepo.EXPECT().ApplyCoinChange(f.txCtx, "guest-1", int64(1), int64(0)).Return(int64(6), int64(7), nil).Once()
		f.uow.EXPECT().ReviveGateway(f.txCtx).Return(f.txGate).Once()
		f.txGate.EXPECT().AppendTransaction(f.txCtx, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(errors.New("serialization failure")).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(errors.New("transaction already closed")).Once()

		_, err := f.useCase.ModifyBalance(ctx, "guest-1", 1, entity.TypeScavengerHunt, "Step 1")

		assert.Error(t, err)
		f.guard.AssertNotCalled(t, "SettleFloor", mock.Anything, mock.Anything, mock.Anything)
	})
}
