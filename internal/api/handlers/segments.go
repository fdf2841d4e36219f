package handlers

import (
	"net/http"

	"capsim-round/internal/api/models"
	"capsim-round/internal/market"
	"capsim-round/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SegmentHandler handles market segment requests
type SegmentHandler struct {
	catalog *market.Catalog
}

// NewSegmentHandler creates a new segment handler
func NewSegmentHandler(catalog *market.Catalog) *SegmentHandler {
	if catalog == nil {
		catalog = market.Default()
	}
	return &SegmentHandler{catalog: catalog}
}

// ListSegments handles GET /api/v1/segments
func (h *SegmentHandler) ListSegments(c *gin.Context) {
	segs := h.catalog.Segments()
	out := make([]models.SegmentInfo, 0, len(segs))
	for _, s := range segs {
		out = append(out, toSegmentInfo(s))
	}
	logrus.Debugf("SegmentHandler: returning %d segments", len(out))
	c.JSON(http.StatusOK, gin.H{"segments": out})
}

// GetSegment handles GET /api/v1/segments/:name
func (h *SegmentHandler) GetSegment(c *gin.Context) {
	s, err := h.catalog.Lookup(c.Param("name"))
	if err != nil {
		writeError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, toSegmentInfo(s))
}

func toSegmentInfo(s model.SegmentProfile) models.SegmentInfo {
	return models.SegmentInfo{
		Name:             s.Name,
		MarketSize:       s.MarketSize,
		IdealPrice:       models.PriceRange{Min: s.IdealPrice.Min, Max: s.IdealPrice.Max},
		IdealPerformance: s.IdealPerformance,
		IdealSize:        s.IdealSize,
	}
}
