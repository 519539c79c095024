package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/favorites"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func TestAddFavorite_Created(t *testing.T) {
	ts := newTestServer(t)

	ts.favoritesRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(data *ports.FavoriteData) bool {
		return data.UserID == 7 && data.CityName == "Tokyo" && data.CountryCode == "JP"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*ports.FavoriteData).ID = 11
	}).Return(nil).Once()

	w := ts.do(http.MethodPost, "/api/weather/favorites", "7", `{"city_name":" Tokyo ","country_code":"jp"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var response favorites.FavoriteCity
	decodeBody(t, w, &response)
	assert.Equal(t, uint(11), response.ID)
	assert.Equal(t, uint(7), response.UserID)
	assert.Equal(t, "Tokyo", response.CityName)
	assert.Equal(t, "JP", response.CountryCode)
	assert.True(t, testNow.Equal(response.AddedAt))
}

func TestAddFavorite_MissingFields(t *testing.T) {
	bodies := map[string]string{
		"NoCountry":     `{"city_name":"Tokyo"}`,
		"NoCity":        `{"country_code":"JP"}`,
		"BlankCity":     `{"city_name":"   ","country_code":"JP"}`,
		"EmptyObject":   `{}`,
		"MalformedJSON": `{"city_name":`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			ts := newTestServer(t)

			w := ts.do(http.MethodPost, "/api/weather/favorites", "7", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "city_name and country_code are required", errorMessage(t, w))
			ts.favoritesRepo.AssertNumberOfCalls(t, "Create", 0)
		})
	}
}

func TestAddFavorite_Duplicate(t *testing.T) {
	ts := newTestServer(t)

	ts.favoritesRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(errors.NewConflictError("City is already a favorite", nil)).Once()

	w := ts.do(http.MethodPost, "/api/weather/favorites", "7", `{"city_name":"Tokyo","country_code":"JP"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "City is already a favorite", errorMessage(t, w))
}

func TestListFavorites(t *testing.T) {
	ts := newTestServer(t)

	ts.favoritesRepo.EXPECT().ListByUser(mock.Anything, uint(7)).Return([]*ports.FavoriteData{
		{ID: 2, UserID: 7, CityName: "Paris", CountryCode: "FR", AddedAt: testNow},
		{ID: 1, UserID: 7, CityName: "Tokyo", CountryCode: "JP", AddedAt: testNow.Add(-time.Hour)},
	}, nil).Once()

	w := ts.do(http.MethodGet, "/api/weather/favorites", "7", "")

	require.Equal(t, http.StatusOK, w.Code)
	var response FavoritesResponse
	decodeBody(t, w, &response)
	require.Len(t, response.Favorites, 2)
	assert.Equal(t, "Paris", response.Favorites[0].CityName)
	assert.Equal(t, "Tokyo", response.Favorites[1].CityName)
}

func TestListFavorites_EmptyIsArray(t *testing.T) {
	ts := newTestServer(t)

	ts.favoritesRepo.EXPECT().ListByUser(mock.Anything, uint(9)).Return(nil, nil).Once()

	w := ts.do(http.MethodGet, "/api/weather/favorites", "9", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"favorites":[]}`, w.Body.String())
}

func TestDeleteFavorite(t *testing.T) {
	ts := newTestServer(t)

	ts.favoritesRepo.EXPECT().DeleteForUser(mock.Anything, uint(5), uint(7)).Return(nil).Once()

	w := ts.do(http.MethodDelete, "/api/weather/favorites/5", "7", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Favorite removed successfully","id":5}`, w.Body.String())
}

func TestDeleteFavorite_NotOwned(t *testing.T) {
	ts := newTestServer(t)

	ts.favoritesRepo.EXPECT().DeleteForUser(mock.Anything, uint(5), uint(8)).
		Return(errors.NewNotFoundError("Favorite not found or does not belong to user")).Once()

	w := ts.do(http.MethodDelete, "/api/weather/favorites/5", "8", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Favorite not found or does not belong to user", errorMessage(t, w))
}

func TestDeleteFavorite_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-1", "1.5", "9223372036854775808", "18446744073709551615"} {
		t.Run(id, func(t *testing.T) {
			ts := newTestServer(t)

			w := ts.do(http.MethodDelete, "/api/weather/favorites/"+id, "7", "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid favorite ID", errorMessage(t, w))
			ts.favoritesRepo.AssertNumberOfCalls(t, "DeleteForUser", 0)
		})
	}
}
