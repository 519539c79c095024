package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/favorites"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

// FavoriteRequest represents the HTTP request for saving a favorite city
type FavoriteRequest struct {
	CityName    string `json:"city_name" binding:"required,notblank"`
	CountryCode string `json:"country_code" binding:"required,notblank"`
}

type FavoritesResponse struct {
	Favorites []*favorites.FavoriteCity `json:"favorites"`
}

type DeleteFavoriteResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// addFavorite handles POST /api/weather/favorites requests
func (s *HTTPServerAdapter) addFavorite(c *gin.Context) {
	var httpReq FavoriteRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		abortWithError(c, errors.NewValidationError("city_name and country_code are required"))
		return
	}

	favorite, err := s.favoritesUseCase.AddFavorite(c.Request.Context(), favorites.AddFavoriteParams{
		UserID:      userIDFrom(c),
		CityName:    httpReq.CityName,
		CountryCode: httpReq.CountryCode,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// listFavorites handles GET /api/weather/favorites requests
func (s *HTTPServerAdapter) listFavorites(c *gin.Context) {
	items, err := s.favoritesUseCase.ListFavorites(c.Request.Context(), userIDFrom(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if items == nil {
		items = []*favorites.FavoriteCity{}
	}

	c.JSON(http.StatusOK, FavoritesResponse{Favorites: items})
}

// deleteFavorite handles DELETE /api/weather/favorites/:id requests
func (s *HTTPServerAdapter) deleteFavorite(c *gin.Context) {
	favoriteID, ok := validation.ParsePositiveID(c.Param("id"))
	if !ok {
		abortWithError(c, errors.NewValidationError("Invalid favorite ID"))
		return
	}

	if err := s.favoritesUseCase.DeleteFavorite(c.Request.Context(), userIDFrom(c), favoriteID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteFavoriteResponse{Message: "Favorite removed successfully", ID: favoriteID})
}
