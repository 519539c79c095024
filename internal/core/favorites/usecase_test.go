package favorites

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*UseCase, *mocks.FavoriteRepository) {
	repo := mocks.NewFavoriteRepository(t)
	uc, err := NewUseCase(UseCaseDependencies{
		Repository: repo,
		Clock:      mocks.NewClock(testNow),
		Logger:     mocks.NewLogger(t).AllowAll(),
	})
	require.NoError(t, err)
	return uc, repo
}

func TestUseCase_AddFavorite_Success(t *testing.T) {
	uc, repo := newTestUseCase(t)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(f *ports.FavoriteData) bool {
		return f.UserID == 1 && f.CityName == "Tokyo" && f.CountryCode == "JP"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*ports.FavoriteData).ID = 42
	}).Return(nil)

	fav, err := uc.AddFavorite(context.Background(), AddFavoriteParams{UserID: 1, CityName: " Tokyo ", CountryCode: "jp"})

	require.NoError(t, err)
	assert.Equal(t, uint(42), fav.ID)
	assert.Equal(t, "Tokyo", fav.CityName)
	assert.Equal(t, "JP", fav.CountryCode)
	assert.True(t, fav.AddedAt.Equal(testNow))
}

func TestUseCase_AddFavorite_Duplicate(t *testing.T) {
	uc, repo := newTestUseCase(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(errors.NewConflictError("City is already a favorite", nil))

	fav, err := uc.AddFavorite(context.Background(), AddFavoriteParams{UserID: 1, CityName: "Tokyo", CountryCode: "JP"})

	assert.Nil(t, fav)
	assert.True(t, errors.IsConflictError(err))
}

func TestUseCase_AddFavorite_ValidationError(t *testing.T) {
	tests := []struct {
		name   string
		params AddFavoriteParams
	}{
		{name: "MissingCity", params: AddFavoriteParams{UserID: 1, CountryCode: "JP"}},
		{name: "BlankCity", params: AddFavoriteParams{UserID: 1, CityName: "   ", CountryCode: "JP"}},
		{name: "MissingCountry", params: AddFavoriteParams{UserID: 1, CityName: "Tokyo"}},
		{name: "MissingUser", params: AddFavoriteParams{CityName: "Tokyo", CountryCode: "JP"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestUseCase(t)

			_, err := uc.AddFavorite(context.Background(), tt.params)

			assert.True(t, errors.IsValidationError(err))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_AddFavorite_DatabaseError(t *testing.T) {
	uc, repo := newTestUseCase(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(errors.NewDatabaseError("failed to create favorite", fmt.Errorf("connection refused")))

	_, err := uc.AddFavorite(context.Background(), AddFavoriteParams{UserID: 1, CityName: "Tokyo", CountryCode: "JP"})

	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_ListFavorites(t *testing.T) {
	uc, repo := newTestUseCase(t)

	repo.EXPECT().ListByUser(mock.Anything, uint(1)).Return([]*ports.FavoriteData{
		{ID: 2, UserID: 1, CityName: "Paris", CountryCode: "FR", AddedAt: testNow},
		{ID: 1, UserID: 1, CityName: "Tokyo", CountryCode: "JP", AddedAt: testNow.Add(-time.Hour)},
	}, nil)

	favs, err := uc.ListFavorites(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "Paris", favs[0].CityName)
}

func TestUseCase_DeleteFavorite(t *testing.T) {
	uc, repo := newTestUseCase(t)

	repo.EXPECT().DeleteForUser(mock.Anything, uint(5), uint(1)).Return(nil)

	assert.NoError(t, uc.DeleteFavorite(context.Background(), 1, 5))
}

func TestUseCase_DeleteFavorite_NotOwned(t *testing.T) {
	uc, repo := newTestUseCase(t)

	repo.EXPECT().DeleteForUser(mock.Anything, uint(5), uint(2)).
		Return(errors.NewNotFoundError("Favorite not found or does not belong to user"))

	err := uc.DeleteFavorite(context.Background(), 2, 5)

	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_DeleteFavorite_InvalidID(t *testing.T) {
	uc, repo := newTestUseCase(t)

	err := uc.DeleteFavorite(context.Background(), 1, 0)

	assert.True(t, errors.IsValidationError(err))
	repo.AssertNotCalled(t, "DeleteForUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Constructor_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{Clock: mocks.NewClock(testNow), Logger: mocks.NewLogger(t)})
	assert.ErrorContains(t, err, "favorite repository is required")

	_, err = NewUseCase(UseCaseDependencies{Repository: mocks.NewFavoriteRepository(t), Logger: mocks.NewLogger(t)})
	assert.ErrorContains(t, err, "clock is required")
}
