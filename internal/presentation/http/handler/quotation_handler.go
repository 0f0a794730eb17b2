package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/application/service"
	"github.com/autocarcare/garage-api/internal/presentation/http/dto/response"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
	documentService  *service.DocumentService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(
	quotationService *service.QuotationService,
	documentService *service.DocumentService,
) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		documentService:  documentService,
	}
}

// QuotationRequest represents the create/update quotation request body
type QuotationRequest struct {
	CustomerID    *string `json:"customer_id"`
	QuotationDate string  `json:"quotation_date" binding:"required"`

	CustomerName    string  `json:"customer_name"`
	CustomerAddress *string `json:"customer_address"`
	CustomerMobile  *string `json:"customer_mobile"`
	CustomerGSTIN   *string `json:"customer_gstin"`

	VehicleNo    *string `json:"vehicle_no"`
	VehicleModel *string `json:"vehicle_model"`

	GlobalDiscountPercent float64 `json:"global_discount_percent" binding:"min=0,max=100"`
	ValidUntil            *string `json:"valid_until"`
	Notes                 *string `json:"notes"`

	Parts   []LineItemRequest `json:"parts"`
	Labours []LineItemRequest `json:"labours"`
}

// List handles listing quotations
// @Summary List Quotations
// @Description Get all quotations with pagination and filtering
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search by number, customer or vehicle"
// @Param customer_id query string false "Customer filter"
// @Success 200 {object} response.APIResponse
// @Router /quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var customerID *uuid.UUID
	if s := c.Query("customer_id"); s != "" {
		parsed, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		customerID = &parsed
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), &service.ListQuotationsInput{
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Pagination:   paginationFromQuery(c),
		Search:       c.Query("search"),
		CustomerID:   customerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotations retrieved successfully", result)
}

// Get handles getting a single quotation with its lines
// @Summary Get Quotation
// @Description Get a quotation by ID
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// Create handles creating a quotation
// @Summary Create Quotation
// @Description Create a new quotation with part and labour lines
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body QuotationRequest true "Quotation data"
// @Success 201 {object} response.APIResponse
// @Router /quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, ok := h.quotationInput(c, &req)
	if !ok {
		return
	}
	input.UserID = *userID

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// Update handles updating a quotation
// @Summary Update Quotation
// @Description Update an existing quotation and replace its lines
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body QuotationRequest true "Quotation data"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id} [put]
func (h *QuotationHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, ok := h.quotationInput(c, &req)
	if !ok {
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), &service.UpdateQuotationInput{
		ID:           id,
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),

		CustomerID:    input.CustomerID,
		QuotationDate: input.QuotationDate,

		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		CustomerMobile:  input.CustomerMobile,
		CustomerGSTIN:   input.CustomerGSTIN,

		VehicleNo:    input.VehicleNo,
		VehicleModel: input.VehicleModel,

		GlobalDiscountPercent: input.GlobalDiscountPercent,
		ValidUntil:            input.ValidUntil,
		Notes:                 input.Notes,

		Parts:   input.Parts,
		Labours: input.Labours,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// Delete handles deleting a quotation
// @Summary Delete Quotation
// @Description Delete a quotation by ID
// @Tags quotations
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 204
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DownloadPDF streams the quotation as a PDF attachment
// @Summary Download Quotation PDF
// @Description Render the quotation as a PDF document
// @Tags quotations
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Quotation ID"
// @Success 200 {file} binary
// @Router /quotations/{id}/pdf [get]
func (h *QuotationHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	pdf, filename, err := h.documentService.QuotationPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/pdf", pdf)
}

// quotationInput converts a request body into a service input. It
// writes the error response itself and returns ok=false on bad input.
func (h *QuotationHandler) quotationInput(c *gin.Context, req *QuotationRequest) (*service.CreateQuotationInput, bool) {
	quotationDate, err := time.Parse("2006-01-02", req.QuotationDate)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return nil, false
	}

	var customerID *uuid.UUID
	if req.CustomerID != nil && *req.CustomerID != "" {
		parsed, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return nil, false
		}
		customerID = &parsed
	}

	validUntil, ok := parseOptionalDate(c, req.ValidUntil)
	if !ok {
		return nil, false
	}

	parts, ok := lineItems(c, req.Parts)
	if !ok {
		return nil, false
	}
	labours, ok := lineItems(c, req.Labours)
	if !ok {
		return nil, false
	}

	return &service.CreateQuotationInput{
		CustomerID:    customerID,
		QuotationDate: quotationDate,

		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerMobile:  req.CustomerMobile,
		CustomerGSTIN:   req.CustomerGSTIN,

		VehicleNo:    req.VehicleNo,
		VehicleModel: req.VehicleModel,

		GlobalDiscountPercent: req.GlobalDiscountPercent,
		ValidUntil:            validUntil,
		Notes:                 req.Notes,

		Parts:   parts,
		Labours: labours,
	}, true
}
