package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadgenie_backend/internal/admin/service"
	"leadgenie_backend/internal/admin/transport"
	leadsrepo "leadgenie_backend/internal/leads/repository"
	leadstransport "leadgenie_backend/internal/leads/transport"
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
	rg.GET("/users", h.ListUsers)
	rg.GET("/leads", h.ListLeads)
	rg.PUT("/leads/:id", h.UpdateLead)
	rg.DELETE("/leads/:id", h.DeleteLead)
	rg.GET("/stats", h.Stats)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.Users(c.Request.Context(), queryInt(c, "limit", 100), queryInt(c, "offset", 0))
	if err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.OK(c, gin.H{"users": transport.FromUsers(users)})
}

func (h *Handler) ListLeads(c *gin.Context) {
	params := leadsrepo.ListLeadsParams{
		Limit:  queryInt(c, "limit", 100),
		Offset: queryInt(c, "offset", 0),
	}
	if status := c.Query("status"); status != "" {
		params.Status = &status
	}
	if category := c.Query("category"); category != "" {
		params.Category = &category
	}

	leads, err := h.svc.Leads(c.Request.Context(), params)
	if err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.OK(c, gin.H{"leads": leadstransport.FromLeads(leads)})
}

func (h *Handler) UpdateLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.UpdateLead(c.Request.Context(), id, req.ToParams())
	if err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.OK(c, leadstransport.FromLead(lead))
}

func (h *Handler) DeleteLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if err := h.svc.DeleteLead(c.Request.Context(), id); err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.OK(c, gin.H{"message": "lead deleted"})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		httpkit.FromError(c, err)
		return
	}

	httpkit.OK(c, transport.FromStats(stats))
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
