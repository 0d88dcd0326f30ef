package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"astroguru-backend-go/internal/ai"
	"astroguru-backend-go/internal/core"
	"astroguru-backend-go/internal/models"
)

// ReadingHandler handles the astrology reading endpoints.
type ReadingHandler struct {
	readingService core.ReadingService
}

// NewReadingHandler creates a new ReadingHandler.
func NewReadingHandler(rs core.ReadingService) *ReadingHandler {
	return &ReadingHandler{readingService: rs}
}

// respondReading writes the reading or maps the service error to a status
// code: client-side payload problems are 400s, generation failures 502s.
func respondReading(c *gin.Context, reading string, err error) {
	if err != nil {
		switch {
		case errors.Is(err, core.ErrImageTooLarge),
			errors.Is(err, core.ErrInvalidChatRole),
			errors.Is(err, ai.ErrMalformedDataURI):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid reading request", Details: err.Error()})
		default:
			// Generation API failures propagate unmodified from the
			// service; the UI is expected to present them.
			log.Printf("Reading generation failed: %v", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Reading generation failed", Details: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, ReadingResponse{Reading: reading})
}

// Chat handles POST /api/v1/readings/chat — the multi-turn advanced
// reading with replayed history and optional inline images.
func (h *ReadingHandler) Chat(c *gin.Context) {
	var req models.ChatReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid chat reading request", Details: err.Error()})
		return
	}
	reading, err := h.readingService.AnalyzeHoroscopeAdvanced(c.Request.Context(), req)
	respondReading(c, reading, err)
}

// Horoscope handles POST /api/v1/readings/horoscope.
func (h *ReadingHandler) Horoscope(c *gin.Context) {
	var req models.HoroscopeReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid horoscope request", Details: err.Error()})
		return
	}
	reading, err := h.readingService.GetHoroscopeReading(c.Request.Context(), req.HoroscopeData, req.Lang)
	respondReading(c, reading, err)
}

// Porondam handles POST /api/v1/readings/porondam.
func (h *ReadingHandler) Porondam(c *gin.Context) {
	var req models.PorondamReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid porondam request", Details: err.Error()})
		return
	}
	reading, err := h.readingService.GetPorondamReading(c.Request.Context(), req.PorondamData, req.Lang)
	respondReading(c, reading, err)
}

// Manuscript handles POST /api/v1/readings/manuscript — one manuscript
// image analysed in a single shot.
func (h *ReadingHandler) Manuscript(c *gin.Context) {
	var req models.ManuscriptReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid manuscript request", Details: err.Error()})
		return
	}
	reading, err := h.readingService.AnalyzeAncientManuscript(c.Request.Context(), req.Image, req.Lang)
	respondReading(c, reading, err)
}
