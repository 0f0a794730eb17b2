package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/application/service"
	"github.com/autocarcare/garage-api/internal/presentation/http/dto/response"
)

// SparePartHandler handles spare part inventory HTTP requests
type SparePartHandler struct {
	sparePartService *service.SparePartService
}

// NewSparePartHandler creates a new spare part handler
func NewSparePartHandler(sparePartService *service.SparePartService) *SparePartHandler {
	return &SparePartHandler{sparePartService: sparePartService}
}

// SparePartRequest represents the create spare part request body
type SparePartRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	PartNumber    *string `json:"part_number"`
	HSNCode       *string `json:"hsn_code"`
	PurchasePrice float64 `json:"purchase_price" binding:"min=0"`
	SellingPrice  float64 `json:"selling_price" binding:"min=0"`
	CGSTPercent   float64 `json:"cgst_percent" binding:"min=0,max=100"`
	SGSTPercent   float64 `json:"sgst_percent" binding:"min=0,max=100"`
	IGSTPercent   float64 `json:"igst_percent" binding:"min=0,max=100"`
	Quantity      float64 `json:"quantity" binding:"min=0"`
}

// List handles listing spare parts
// @Summary List Spare Parts
// @Description Get all spare parts with pagination and search
// @Tags spare-parts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search by name or part number"
// @Success 200 {object} response.APIResponse
// @Router /spare-parts [get]
func (h *SparePartHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.sparePartService.ListSpareParts(c.Request.Context(), &service.ListSparePartsInput{
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Pagination:   paginationFromQuery(c),
		Search:       c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Spare parts retrieved successfully", result)
}

// Get handles getting a single spare part
// @Summary Get Spare Part
// @Description Get a spare part by ID
// @Tags spare-parts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Spare part ID"
// @Success 200 {object} response.APIResponse
// @Router /spare-parts/{id} [get]
func (h *SparePartHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid spare part ID")
		return
	}

	part, err := h.sparePartService.GetSparePart(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Spare part retrieved successfully", part)
}

// Create handles creating a spare part
// @Summary Create Spare Part
// @Description Create a new spare part
// @Tags spare-parts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SparePartRequest true "Spare part data"
// @Success 201 {object} response.APIResponse
// @Router /spare-parts [post]
func (h *SparePartHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req SparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	part, err := h.sparePartService.CreateSparePart(c.Request.Context(), &service.CreateSparePartInput{
		UserID:        *userID,
		Name:          req.Name,
		PartNumber:    req.PartNumber,
		HSNCode:       req.HSNCode,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		CGSTPercent:   req.CGSTPercent,
		SGSTPercent:   req.SGSTPercent,
		IGSTPercent:   req.IGSTPercent,
		Quantity:      req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Spare part created successfully", part)
}

// Update handles updating a spare part
// @Summary Update Spare Part
// @Description Update an existing spare part
// @Tags spare-parts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Spare part ID"
// @Success 200 {object} response.APIResponse
// @Router /spare-parts/{id} [put]
func (h *SparePartHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid spare part ID")
		return
	}

	var req struct {
		Name          *string  `json:"name"`
		PartNumber    *string  `json:"part_number"`
		HSNCode       *string  `json:"hsn_code"`
		PurchasePrice *float64 `json:"purchase_price" binding:"omitempty,min=0"`
		SellingPrice  *float64 `json:"selling_price" binding:"omitempty,min=0"`
		CGSTPercent   *float64 `json:"cgst_percent" binding:"omitempty,min=0,max=100"`
		SGSTPercent   *float64 `json:"sgst_percent" binding:"omitempty,min=0,max=100"`
		IGSTPercent   *float64 `json:"igst_percent" binding:"omitempty,min=0,max=100"`
		Quantity      *float64 `json:"quantity" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	part, err := h.sparePartService.UpdateSparePart(c.Request.Context(), &service.UpdateSparePartInput{
		ID:            id,
		UserID:        *userID,
		IsSuperAdmin:  IsSuperAdmin(c),
		Name:          req.Name,
		PartNumber:    req.PartNumber,
		HSNCode:       req.HSNCode,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		CGSTPercent:   req.CGSTPercent,
		SGSTPercent:   req.SGSTPercent,
		IGSTPercent:   req.IGSTPercent,
		Quantity:      req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Spare part updated successfully", part)
}

// Delete handles deleting a spare part
// @Summary Delete Spare Part
// @Description Delete a spare part by ID
// @Tags spare-parts
// @Security BearerAuth
// @Param id path string true "Spare part ID"
// @Success 204
// @Router /spare-parts/{id} [delete]
func (h *SparePartHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid spare part ID")
		return
	}

	if err := h.sparePartService.DeleteSparePart(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
