package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/application/service"
	"github.com/autocarcare/garage-api/internal/presentation/http/dto/response"
)

// TermsHandler handles terms-and-conditions HTTP requests
type TermsHandler struct {
	termsService *service.TermsService
}

// NewTermsHandler creates a new terms handler
func NewTermsHandler(termsService *service.TermsService) *TermsHandler {
	return &TermsHandler{termsService: termsService}
}

// TermRequest represents the create clause request body
type TermRequest struct {
	Content   string `json:"content" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// List handles listing all clauses
// @Summary List Terms
// @Description Get all terms and conditions clauses
// @Tags terms
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /terms [get]
func (h *TermsHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	terms, err := h.termsService.ListTerms(c.Request.Context(), *userID, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Terms retrieved successfully", terms)
}

// Active handles listing the clauses printed on documents
// @Summary List Active Terms
// @Description Get the active clauses printed on invoices and quotations
// @Tags terms
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /terms/active [get]
func (h *TermsHandler) Active(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	terms, err := h.termsService.ActiveTerms(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active terms retrieved successfully", terms)
}

// Create handles creating a clause
// @Summary Create Term
// @Description Create a new terms and conditions clause
// @Tags terms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body TermRequest true "Clause data"
// @Success 201 {object} response.APIResponse
// @Router /terms [post]
func (h *TermsHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	term, err := h.termsService.CreateTerm(c.Request.Context(), &service.CreateTermInput{
		UserID:    *userID,
		Content:   req.Content,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Term created successfully", term)
}

// Update handles updating a clause
// @Summary Update Term
// @Description Update an existing terms and conditions clause
// @Tags terms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Term ID"
// @Success 200 {object} response.APIResponse
// @Router /terms/{id} [put]
func (h *TermsHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid term ID")
		return
	}

	var req struct {
		Content   *string `json:"content"`
		SortOrder *int    `json:"sort_order"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	term, err := h.termsService.UpdateTerm(c.Request.Context(), &service.UpdateTermInput{
		ID:           id,
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Content:      req.Content,
		SortOrder:    req.SortOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Term updated successfully", term)
}

// Delete handles deleting a clause
// @Summary Delete Term
// @Description Delete a terms and conditions clause by ID
// @Tags terms
// @Security BearerAuth
// @Param id path string true "Term ID"
// @Success 204
// @Router /terms/{id} [delete]
func (h *TermsHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid term ID")
		return
	}

	if err := h.termsService.DeleteTerm(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
