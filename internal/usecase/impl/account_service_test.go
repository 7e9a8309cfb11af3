package impl

import (
	"context"
	"testing"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService(repo repository.AccountRepository) usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{AccountRepo: repo, Logger: discardLogger()})
}

func validAccountInput() usecase.AccountInput {
	return usecase.AccountInput{
		Name:          "Main",
		AccountNumber: "12345-6",
		Agency:        "0001",
		Balance:       100.5,
		IsActive:      true,
		AccountType:   entity.AccountTypeChecking,
		BankID:        "bank-1",
	}
}

func TestAccountService_List(t *testing.T) {
	t.Parallel()

	repo := &fakeAccountRepo{
		listFn: func(context.Context) ([]entity.Account, error) {
			return []entity.Account{{ID: "acc-1"}, {ID: "acc-2"}}, nil
		},
	}
	srv := newAccountService(repo)

	accounts, err := srv.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestAccountService_CreateForwardsForm(t *testing.T) {
	t.Parallel()

	var got repository.AccountForm
	repo := &fakeAccountRepo{
		createFn: func(_ context.Context, form repository.AccountForm) error {
			got = form

			return nil
		},
	}
	srv := newAccountService(repo)

	require.NoError(t, srv.Create(context.Background(), validAccountInput()))
	assert.Equal(t, "Main", got.Name)
	assert.Equal(t, entity.AccountTypeChecking, got.AccountType)
	assert.InDelta(t, 100.5, got.Balance, 0.0001)
}

func TestAccountService_CreateRejectsUnknownType(t *testing.T) {
	t.Parallel()

	repo := &fakeAccountRepo{
		createFn: func(context.Context, repository.AccountForm) error {
			t.Fatal("remote call must not happen on invalid input")

			return nil
		},
	}
	srv := newAccountService(repo)

	input := validAccountInput()
	input.AccountType = "Offshore Account"

	err := srv.Create(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	var updatedID, deletedID string
	repo := &fakeAccountRepo{
		updateFn: func(_ context.Context, id string, _ repository.AccountForm) error {
			updatedID = id

			return nil
		},
		deleteFn: func(_ context.Context, id string) error {
			deletedID = id

			return nil
		},
	}
	srv := newAccountService(repo)

	require.NoError(t, srv.Update(context.Background(), "acc-7", validAccountInput()))
	require.NoError(t, srv.Delete(context.Background(), "acc-7"))
	assert.Equal(t, "acc-7", updatedID)
	assert.Equal(t, "acc-7", deletedID)
}

func TestAccountService_ListPropagatesError(t *testing.T) {
	t.Parallel()

	repo := &fakeAccountRepo{
		listFn: func(context.Context) ([]entity.Account, error) {
			return nil, errors.Wrap(domainerrors.ErrAPIUnreachable, "dial tcp")
		},
	}
	srv := newAccountService(repo)

	_, err := srv.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAPIUnreachable))
}
