package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/bastiangx/typeahead/pkg/config"
	"github.com/bastiangx/typeahead/pkg/server"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// CompleteRequest is the POST /complete body.
type CompleteRequest struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit"`
}

// Suggestion is one ranked word in a CompleteResponse.
type Suggestion struct {
	Word      string  `json:"word"`
	Rank      uint16  `json:"rank"`
	Score     float64 `json:"score"`
	Frequency int     `json:"frequency"`
}

// CompleteResponse lists the predictions for a prefix.
type CompleteResponse struct {
	RequestID   string       `json:"request_id"`
	Prefix      string       `json:"prefix"`
	Suggestions []Suggestion `json:"suggestions"`
	Count       int          `json:"count"`
	TimeTaken   int64        `json:"time_us"`
}

// Handler answers the /api/v1 routes.
type Handler struct {
	completer suggest.ICompleter
	config    *config.Config
	logger    *log.Logger
}

// NewHandler creates a Handler. cfg is read only.
func NewHandler(completer suggest.ICompleter, cfg *config.Config, l *log.Logger) *Handler {
	return &Handler{
		completer: completer,
		config:    cfg,
		logger:    l,
	}
}

// CompleteQuery answers GET /complete?p=&l=.
func (h *Handler) CompleteQuery(c *gin.Context) {
	req := CompleteRequest{Prefix: c.Query("p")}
	if raw := c.Query("l"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid limit",
				"details": err.Error(),
			})
			return
		}
		req.Limit = limit
	}
	h.complete(c, req)
}

// CompleteJSON answers POST /complete with a CompleteRequest body.
func (h *Handler) CompleteJSON(c *gin.Context) {
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid request payload", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}
	h.complete(c, req)
}

func (h *Handler) complete(c *gin.Context, req CompleteRequest) {
	start := time.Now()

	limit, filtered, err := server.CheckRequest(h.config, req.Prefix, req.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var results []suggest.Suggestion
	if filtered {
		h.logger.Debugf("Filtered prefix '%s'", req.Prefix)
	} else {
		results = h.completer.Complete(req.Prefix, limit)
	}

	ranks := utils.CreateRankList(len(results))
	suggestions := make([]Suggestion, len(results))
	for i, s := range results {
		suggestions[i] = Suggestion{
			Word:      s.Word,
			Rank:      ranks[i],
			Score:     s.Score,
			Frequency: s.Frequency,
		}
	}

	c.JSON(http.StatusOK, CompleteResponse{
		RequestID:   c.GetString("request_id"),
		Prefix:      req.Prefix,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

// Info reports completer statistics and the active request limits.
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"stats":  h.completer.Stats(),
		"limits": gin.H{
			"max_limit":     h.config.Server.MaxLimit,
			"min_prefix":    h.config.Server.MinPrefix,
			"max_prefix":    h.config.Server.MaxPrefix,
			"enable_filter": h.config.Server.EnableFilter,
		},
	})
}
