package server

import (
	"errors"
	"net/http"
	"time"

	"HexOracle/internal/collector"
	"HexOracle/internal/divination"
	"HexOracle/internal/hexagram"
	"HexOracle/internal/model"

	"github.com/gin-gonic/gin"
)

type marketRequest struct {
	Symbol string `json:"symbol" binding:"required"`
	Date   string `json:"date"` // YYYY-MM-DD, defaults to today
}

type castRequest struct {
	Question string `json:"question"`
}

// readingResponse pairs the raw result with the two renderable cards.
type readingResponse struct {
	Result    *model.DivinationResult `json:"result"`
	Present   hexagram.Card           `json:"present"`
	Projected hexagram.Card           `json:"projected"`
}

func (s *Server) handleIndex(c *gin.Context) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSymbols(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symbols": s.svc.Symbols()})
}

func (s *Server) handleMarketReading(c *gin.Context) {
	var req marketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "symbol is required"})
		return
	}

	ref := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "date must be YYYY-MM-DD"})
			return
		}
		ref = parsed
	}

	res, err := s.svc.MarketReading(c.Request.Context(), req.Symbol, ref)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}

func (s *Server) handleCastReading(c *gin.Context) {
	var req castRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "invalid request body"})
		return
	}

	res, err := s.svc.CastReading(req.Question)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}

func toResponse(res *model.DivinationResult) readingResponse {
	return readingResponse{
		Result:    res,
		Present:   hexagram.NewCard("本卦 (现状)", res.Present, res.PresentKey, true),
		Projected: hexagram.NewCard("之卦 (变数)", res.Projected, res.ProjectedKey, res.Changed),
	}
}

// writeError converts every error kind to a readable message and status.
// Nothing here crashes the process; the system stays ready for the next
// action.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, divination.ErrEmptyQuestion):
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty_question", "message": "请先输入问题"})
	case errors.Is(err, divination.ErrUnknownSymbol):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_symbol", "message": err.Error()})
	case errors.Is(err, hexagram.ErrInsufficientData):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "insufficient_data", "message": "数据不足，无法生成卦象 (需至少6个交易日)"})
	case errors.Is(err, hexagram.ErrInvalidBar):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid_bar", "message": err.Error()})
	case errors.Is(err, collector.ErrDataSource):
		c.JSON(http.StatusBadGateway, gin.H{"error": "data_source", "message": err.Error()})
	case errors.Is(err, hexagram.ErrUnknownHexagram):
		s.log.Error().Err(err).Msg("knowledge base incomplete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "internal data error"})
	default:
		s.log.Error().Err(err).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": err.Error()})
	}
}
