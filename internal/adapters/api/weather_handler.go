package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/weather"
)

// getCurrentWeather handles GET /api/weather/current/:city requests
func (s *HTTPServerAdapter) getCurrentWeather(c *gin.Context) {
	request := weather.WeatherRequest{UserID: userIDFrom(c), City: c.Param("city")}

	snapshot, err := s.weatherUseCase.GetCurrentWeather(c.Request.Context(), request)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// getForecast handles GET /api/weather/forecast/:city requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	request := weather.WeatherRequest{UserID: userIDFrom(c), City: c.Param("city")}

	snapshot, err := s.weatherUseCase.GetForecast(c.Request.Context(), request)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
