package handlers

import (
	"net/http"
	"time"

	"capsim-round/internal/analysis"
	"capsim-round/internal/api/models"
	"capsim-round/internal/config"
	"capsim-round/internal/model"
	"capsim-round/internal/report"
	"capsim-round/internal/simulation"
	"capsim-round/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RoundHandler handles round simulation requests
type RoundHandler struct {
	engine *simulation.Engine
	cache  *store.RoundCache
}

// NewRoundHandler creates a new round handler. A nil cache disables GetRound.
func NewRoundHandler(engine *simulation.Engine, cache *store.RoundCache) *RoundHandler {
	if engine == nil {
		engine = simulation.New(nil)
	}
	return &RoundHandler{engine: engine, cache: cache}
}

// SimulateRound handles POST /api/v1/rounds
func (h *RoundHandler) SimulateRound(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	inputs := make([]model.ProductInput, 0, len(req.Products))
	for i, p := range req.Products {
		in := toProductConfig(p).ToModelInput()
		if in.Name == "" {
			in.Name = defaultName(i)
		}
		inputs = append(inputs, in)
	}

	round, err := h.engine.SimulateRounds(inputs)
	if err != nil {
		logrus.WithError(err).Warn("RoundHandler: simulation rejected")
		writeError(c, h.engine.Catalog(), err)
		return
	}

	id := uuid.NewString()
	resp := buildRoundResponse(id, round)
	resp.CreatedAt = time.Now().UTC()
	if entry := h.cache.Set(id, round); entry != nil {
		resp.CreatedAt = entry.CreatedAt
	}
	logrus.WithFields(logrus.Fields{
		"round_id":         id,
		"products":         len(round.Results),
		"total_net_profit": round.TotalNetProfit,
	}).Info("round simulated")

	c.JSON(http.StatusOK, resp)
}

// GetRound handles GET /api/v1/rounds/:id
func (h *RoundHandler) GetRound(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.cache.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ROUND_NOT_FOUND",
				Message: "round not found or expired",
				Details: map[string]interface{}{"id": id},
			},
		})
		return
	}
	resp := buildRoundResponse(entry.ID, entry.Round)
	resp.CreatedAt = entry.CreatedAt
	c.JSON(http.StatusOK, resp)
}

// CompareProducts handles POST /api/v1/rounds/compare
func (h *RoundHandler) CompareProducts(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	base := toProductConfig(req.Base)
	results := make([]model.RoundResult, 0, len(req.Variations))
	for _, v := range req.Variations {
		merged := config.MergeProduct(base, config.ProductConfig{
			Name:            v.Name,
			Segment:         v.Product.Segment,
			Price:           v.Product.Price,
			Performance:     v.Product.Performance,
			Size:            v.Product.Size,
			MarketingBudget: v.Product.MarketingBudget,
			Capacity:        v.Product.Capacity,
		})
		res, err := h.engine.SimulateRound(merged.ToModelInput())
		if err != nil {
			writeError(c, h.engine.Catalog(), err)
			return
		}
		results = append(results, *res)
	}

	ranked := analysis.RankByNetProfit(results)
	comparison := make([]models.ComparisonResult, 0, len(ranked))
	for _, r := range ranked {
		comparison = append(comparison, models.ComparisonResult{
			Rank:   r.Rank,
			Name:   r.Product,
			Result: toProductResult(r.RoundResult),
		})
	}
	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

func toProductConfig(p models.ProductRequest) config.ProductConfig {
	return config.ProductConfig{
		Name:            p.Name,
		Segment:         p.Segment,
		Price:           p.Price,
		Performance:     p.Performance,
		Size:            p.Size,
		MarketingBudget: p.MarketingBudget,
		Capacity:        p.Capacity,
	}
}

func defaultName(i int) string {
	return "Product " + string(rune('A'+i%26))
}

func buildRoundResponse(id string, round *simulation.Round) models.RoundResponse {
	results := make([]models.ProductResult, 0, len(round.Results))
	for _, r := range round.Results {
		results = append(results, toProductResult(r))
	}
	return models.RoundResponse{
		ID:      id,
		Status:  "completed",
		Results: results,
		Summary: models.RoundSummary{
			TotalRevenue:   round.TotalRevenue,
			TotalNetProfit: round.TotalNetProfit,
			Products:       len(round.Results),
		},
	}
}

func toProductResult(r model.RoundResult) models.ProductResult {
	return models.ProductResult{
		Product: r.Product,
		Segment: r.Segment,
		Scores: models.Scores{
			Price:        r.Scores.Price,
			Performance:  r.Scores.Performance,
			Size:         r.Scores.Size,
			Satisfaction: r.Scores.Satisfaction,
		},
		DemandShare:        r.DemandShare,
		PotentialSales:     r.PotentialSales,
		UnitsSold:          r.UnitsSold,
		Revenue:            r.Revenue,
		COGS:               r.COGS,
		ContributionMargin: r.ContributionMargin,
		NetProfit:          r.NetProfit,
		InventoryRemaining: r.InventoryRemaining,
		MarketSharePercent: r.MarketSharePercent,
		Outcome:            string(r.Outcome),
		Display:            report.Format(r),
	}
}
