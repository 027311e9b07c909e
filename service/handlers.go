package service

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/potfield/field"
	"github.com/katalvlaran/potfield/route"
)

// FieldResponse describes a stored field. Values is only set on request.
type FieldResponse struct {
	ID         string      `json:"id"`
	Size       int         `json:"size"`
	Complexity int         `json:"complexity"`
	Seed       uint64      `json:"seed,omitempty"`
	Stats      field.Stats `json:"stats"`
	Goal       Cell        `json:"goal"`
	CreatedAt  time.Time   `json:"created_at"`
	Values     [][]float64 `json:"values,omitempty"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Handlers binds a Service to gin routes.
type Handlers struct {
	svc *Service
}

// NewHandlers returns route handlers for svc.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// RegisterRoutes mounts the field routes on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.POST("/fields", h.HandleRegenerate)
	rg.GET("/fields/:id", h.HandleGetField)
	rg.DELETE("/fields/:id", h.HandleDeleteField)
	rg.POST("/fields/:id/paths", h.HandleSearch)
}

// NewRouter builds the full engine: /healthz, /metrics and the /v1 API.
func NewRouter(svc *Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "fields": svc.Store().Len()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	RegisterRoutes(r.Group("/v1"), NewHandlers(svc))

	return r
}

// HandleRegenerate handles POST /fields.
func (h *Handlers) HandleRegenerate(c *gin.Context) {
	var req RegenerateRequest
	// An empty body, sized or chunked, keeps the configured defaults.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	sess, err := h.svc.Regenerate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewFieldResponse(sess, false))
}

// HandleGetField handles GET /fields/:id[?values=true].
func (h *Handlers) HandleGetField(c *gin.Context) {
	sess, err := h.svc.Field(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewFieldResponse(sess, c.Query("values") == "true"))
}

// HandleDeleteField handles DELETE /fields/:id.
func (h *Handlers) HandleDeleteField(c *gin.Context) {
	if !h.svc.Store().Delete(c.Param("id")) {
		writeError(c, ErrFieldNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleSearch handles POST /fields/:id/paths.
func (h *Handlers) HandleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	res, err := h.svc.Search(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// NewFieldResponse renders s; the full value matrix is included only when withValues is set.
func NewFieldResponse(s *Session, withValues bool) FieldResponse {
	goal := s.Grid.ArgMin()
	resp := FieldResponse{
		ID:         s.ID,
		Size:       s.Grid.Size(),
		Complexity: s.Complexity,
		Seed:       s.Seed,
		Stats:      s.Stats,
		Goal:       Cell{Row: goal.Row, Col: goal.Col},
		CreatedAt:  s.CreatedAt,
	}
	if withValues {
		resp.Values = s.Grid.Rows()
	}
	return resp
}

// writeError maps sentinel errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrFieldNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "FIELD_NOT_FOUND"})
	case errors.Is(err, field.ErrOutOfRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "OUT_OF_RANGE"})
	case errors.Is(err, field.ErrInvalidParameter), errors.Is(err, ErrBadRequest):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_PARAMETER"})
	case errors.Is(err, route.ErrNoPath):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "NO_PATH"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
	}
}
