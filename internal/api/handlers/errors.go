package handlers

import (
	"errors"
	"net/http"

	"capsim-round/internal/api/models"
	"capsim-round/internal/market"

	"github.com/gin-gonic/gin"
)

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// writeError maps domain errors to the API error envelope.
// Unknown segments are 404 on lookups and 400 on simulation requests.
func writeError(c *gin.Context, catalog *market.Catalog, err error) {
	var unknown *market.UnknownSegmentError
	if errors.As(err, &unknown) {
		status := http.StatusBadRequest
		if c.Request.Method == http.MethodGet {
			status = http.StatusNotFound
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_SEGMENT",
				Message: err.Error(),
				Details: map[string]interface{}{
					"segment":   unknown.Name,
					"available": catalog.Names(),
				},
			},
		})
		return
	}
	badRequest(c, "SIMULATION_ERROR", err)
}
