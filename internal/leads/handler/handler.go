package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadgenie_backend/internal/leads/repository"
	"leadgenie_backend/internal/leads/service"
	"leadgenie_backend/internal/leads/transport"
	"leadgenie_backend/platform/httpkit"
	"leadgenie_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.GET("/:id/processing-logs", h.ListProcessingLogs)
	rg.POST("/qualify", h.Qualify)
	rg.POST("/qualify/batch", h.QualifyBatch)
}

// Create accepts a lead and queues it for background qualification.
func (h *Handler) Create(c *gin.Context) {
	req, ok := h.bindLead(c)
	if !ok {
		return
	}

	lead, err := h.svc.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.JSON(c, http.StatusAccepted, transport.FromLead(lead))
}

// Qualify accepts a lead and qualifies it synchronously.
func (h *Handler) Qualify(c *gin.Context) {
	req, ok := h.bindLead(c)
	if !ok {
		return
	}

	lead, err := h.svc.QualifyNow(c.Request.Context(), req.ToParams())
	if err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.FromLead(lead))
}

// QualifyBatch qualifies up to 50 leads in one request, preserving order.
func (h *Handler) QualifyBatch(c *gin.Context) {
	var req transport.QualifyBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	params := make([]repository.CreateLeadParams, 0, len(req.Leads))
	for _, leadReq := range req.Leads {
		params = append(params, leadReq.ToParams())
	}

	leads, err := h.svc.QualifyBatch(c.Request.Context(), params)
	if err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.JSON(c, http.StatusCreated, gin.H{"leads": transport.FromLeads(leads)})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	lead, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.OK(c, transport.FromLead(lead))
}

func (h *Handler) List(c *gin.Context) {
	params := repository.ListLeadsParams{
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	}
	if status := c.Query("status"); status != "" {
		params.Status = &status
	}
	if category := c.Query("category"); category != "" {
		params.Category = &category
	}

	leads, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.OK(c, gin.H{"leads": transport.FromLeads(leads)})
}

func (h *Handler) ListProcessingLogs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	logs, err := h.svc.ProcessingLogs(c.Request.Context(), id, queryInt(c, "limit", 20))
	if err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.OK(c, gin.H{"logs": transport.FromProcessingLogs(logs)})
}

func (h *Handler) bindLead(c *gin.Context) (transport.CreateLeadRequest, bool) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return req, false
	}
	return req, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value := c.Query(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
