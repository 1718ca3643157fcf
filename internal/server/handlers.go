package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kshitizgarg19/payoff-builder/internal/errors"
	"github.com/kshitizgarg19/payoff-builder/internal/models"
	"github.com/kshitizgarg19/payoff-builder/internal/payoff"
	"github.com/kshitizgarg19/payoff-builder/internal/strategy"
)

// PayoffRequest is the body of POST /api/v1/payoff.
type PayoffRequest struct {
	Market models.MarketContext `json:"market" binding:"required"`
	Legs   models.Strategy      `json:"legs" binding:"required"`
	Params *CurveParamsRequest  `json:"params,omitempty"`
}

// CurveParamsRequest overrides the configured sweep parameters. Nil
// fields fall back to the server configuration.
type CurveParamsRequest struct {
	LowFactor   *float64 `json:"low_factor,omitempty"`
	HighFactor  *float64 `json:"high_factor,omitempty"`
	Samples     *int     `json:"samples,omitempty"`
	Tolerance   *float64 `json:"tolerance,omitempty"`
	Interpolate *bool    `json:"interpolate,omitempty"`
}

// PayoffResponse carries everything the browser chart needs in one shot.
type PayoffResponse struct {
	Market  models.MarketContext `json:"market"`
	Legs    models.Strategy      `json:"legs"`
	Curve   payoff.Curve         `json:"curve"`
	Summary payoff.Summary       `json:"summary"`
	Table   payoff.PnLTable      `json:"table"`
}

func (s *Server) resolveParams(req *CurveParamsRequest) (payoff.CurveParams, float64, bool) {
	params := payoff.CurveParams{
		LowFactor:  s.cfg.Curve.LowFactor,
		HighFactor: s.cfg.Curve.HighFactor,
		Samples:    s.cfg.Curve.Samples,
	}
	tolerance := s.cfg.Curve.BreakevenTolerance
	interpolate := s.cfg.Curve.InterpolateBreakeven
	if req != nil {
		if req.LowFactor != nil {
			params.LowFactor = *req.LowFactor
		}
		if req.HighFactor != nil {
			params.HighFactor = *req.HighFactor
		}
		if req.Samples != nil {
			params.Samples = *req.Samples
		}
		if req.Tolerance != nil {
			tolerance = *req.Tolerance
		}
		if req.Interpolate != nil {
			interpolate = *req.Interpolate
		}
	}
	return params, tolerance, interpolate
}

func (s *Server) evaluate(mc models.MarketContext, legs models.Strategy, paramsReq *CurveParamsRequest) (PayoffResponse, error) {
	params, tolerance, interpolate := s.resolveParams(paramsReq)
	if err := params.Validate(); err != nil {
		return PayoffResponse{}, err
	}
	if tolerance < 0 {
		return PayoffResponse{}, apperrors.NewValidationError("tolerance", tolerance, "must be non-negative")
	}
	curve := payoff.ComputeCurve(legs, mc.SpotPrice, params)
	summary := payoff.SummaryMetrics(curve.Prices, curve.PnLs, tolerance)
	if interpolate {
		summary.Breakevens = payoff.InterpolatedBreakevens(curve.Prices, curve.PnLs)
	}
	return PayoffResponse{
		Market:  mc,
		Legs:    legs,
		Curve:   curve,
		Summary: summary,
		Table:   payoff.BuildPnLTable(legs, mc),
	}, nil
}

// computePayoff handles POST /api/v1/payoff: a stateless evaluation of
// the strategy supplied in the request body.
func (s *Server) computePayoff(c *gin.Context) {
	var req PayoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	mc, err := models.NewMarketContext(req.Market.Underlying, req.Market.SpotPrice, req.Market.LivePrice)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_MARKET", err)
		return
	}
	mc.Expiry = req.Market.Expiry

	if err := req.Legs.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_LEG", err)
		return
	}

	resp, err := s.evaluate(mc, req.Legs, req.Params)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_PARAMS", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listLegs handles GET /api/v1/strategy/legs.
func (s *Server) listLegs(c *gin.Context) {
	s.mu.Lock()
	legs := s.session.Legs()
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"legs": legs})
}

// addLeg handles POST /api/v1/strategy/legs.
func (s *Server) addLeg(c *gin.Context) {
	var leg models.Leg
	if err := c.ShouldBindJSON(&leg); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	s.mu.Lock()
	err := s.session.Add(leg)
	count := s.session.Len()
	s.mu.Unlock()

	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_LEG", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"index": count - 1, "legs": count})
}

// updateLeg handles PATCH /api/v1/strategy/legs/:index.
func (s *Server) updateLeg(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_INDEX", err)
		return
	}

	var patch strategy.LegPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	s.mu.Lock()
	err = s.session.Update(index, patch)
	s.mu.Unlock()

	if err != nil {
		if apperrors.Is(err, apperrors.ErrLegIndexOutOfRange) {
			abortWithError(c, http.StatusNotFound, "LEG_NOT_FOUND", err)
			return
		}
		abortWithError(c, http.StatusBadRequest, "INVALID_LEG", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// removeLeg handles DELETE /api/v1/strategy/legs/:index.
func (s *Server) removeLeg(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_INDEX", err)
		return
	}

	s.mu.Lock()
	err = s.session.Remove(index)
	s.mu.Unlock()

	if err != nil {
		abortWithError(c, http.StatusNotFound, "LEG_NOT_FOUND", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// clearStrategy handles DELETE /api/v1/strategy.
func (s *Server) clearStrategy(c *gin.Context) {
	s.mu.Lock()
	s.session.Clear()
	s.mu.Unlock()

	c.Status(http.StatusNoContent)
}

// sessionPayoff handles GET /api/v1/strategy/payoff. Market inputs come
// from query parameters; the legs are the session strategy.
func (s *Server) sessionPayoff(c *gin.Context) {
	spot, err := strconv.ParseFloat(c.Query("spot"), 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_MARKET",
			apperrors.NewValidationError("spot", c.Query("spot"), "not a number"))
		return
	}
	var live float64
	if v := c.Query("live"); v != "" {
		live, err = strconv.ParseFloat(v, 64)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "INVALID_MARKET",
				apperrors.NewValidationError("live", v, "not a number"))
			return
		}
	}

	mc, err := models.NewMarketContext(c.Query("underlying"), spot, live)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_MARKET", err)
		return
	}

	s.mu.Lock()
	legs := s.session.Legs()
	s.mu.Unlock()

	resp, err := s.evaluate(mc, legs, nil)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_PARAMS", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
