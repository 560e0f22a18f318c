package handlers

import (
	"net/http"

	"github.com/abrshewube/Google-Flights-Clone/internal/api/http/dto"
	"github.com/abrshewube/Google-Flights-Clone/internal/domain/ports"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	registry ports.AirportRegistry
}

func NewAirportHandler(registry ports.AirportRegistry) *AirportHandler {
	return &AirportHandler{registry: registry}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("/airports", h.GetAirports)
}

func (h *AirportHandler) GetAirports(c *gin.Context) {
	writeJSON(c, http.StatusOK, dto.AirportsResponse{Airports: h.registry.All()})
}
