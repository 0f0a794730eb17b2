package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/application/service"
	"github.com/autocarcare/garage-api/internal/domain/enum"
	"github.com/autocarcare/garage-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService  *service.InvoiceService
	documentService *service.DocumentService
	printerService  *service.PrinterService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(
	invoiceService *service.InvoiceService,
	documentService *service.DocumentService,
	printerService *service.PrinterService,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		documentService: documentService,
		printerService:  printerService,
	}
}

// LineItemRequest represents one billed line in a request body
type LineItemRequest struct {
	SparePartID     *string `json:"spare_part_id"`
	Name            string  `json:"name" binding:"required"`
	Quantity        float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice       float64 `json:"unit_price" binding:"min=0"`
	DiscountPercent float64 `json:"discount_percent" binding:"min=0,max=100"`
	CGSTPercent     float64 `json:"cgst_percent" binding:"min=0,max=100"`
	SGSTPercent     float64 `json:"sgst_percent" binding:"min=0,max=100"`
	IGSTPercent     float64 `json:"igst_percent" binding:"min=0,max=100"`
}

// InvoiceRequest represents the create/update invoice request body
type InvoiceRequest struct {
	CustomerID    *string `json:"customer_id"`
	InvoiceDate   string  `json:"invoice_date" binding:"required"`
	JobCardNumber *string `json:"job_card_number"`

	CustomerName    string  `json:"customer_name"`
	CustomerAddress *string `json:"customer_address"`
	CustomerMobile  *string `json:"customer_mobile"`
	CustomerAadhar  *string `json:"customer_aadhar"`
	CustomerGSTIN   *string `json:"customer_gstin"`

	VehicleNo    *string `json:"vehicle_no"`
	VehicleModel *string `json:"vehicle_model"`
	KmsDriven    *int    `json:"kms_driven"`

	GlobalDiscountPercent float64 `json:"global_discount_percent" binding:"min=0,max=100"`
	AdvanceAmount         float64 `json:"advance_amount" binding:"min=0"`
	Notes                 *string `json:"notes"`

	Parts   []LineItemRequest `json:"parts"`
	Labours []LineItemRequest `json:"labours"`
}

// List handles listing invoices
// @Summary List Invoices
// @Description Get all invoices with pagination and filtering
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search by number, customer or vehicle"
// @Param payment_status query int false "Payment status filter (0=unpaid 1=partial 2=paid)"
// @Param customer_id query string false "Customer filter"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var paymentStatus *enum.PaymentStatus
	if s := c.Query("payment_status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.PaymentStatus(parsed)
			paymentStatus = &st
		}
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

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), &service.ListInvoicesInput{
		UserID:        *userID,
		IsSuperAdmin:  IsSuperAdmin(c),
		Pagination:    paginationFromQuery(c),
		Search:        c.Query("search"),
		PaymentStatus: paymentStatus,
		CustomerID:    customerID,
		From:          from,
		To:            to,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles getting a single invoice with its lines
// @Summary Get Invoice
// @Description Get an invoice by ID
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Create handles creating an invoice
// @Summary Create Invoice
// @Description Create a new invoice with part and labour lines
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body InvoiceRequest true "Invoice data"
// @Success 201 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, ok := h.invoiceInput(c, &req)
	if !ok {
		return
	}
	input.UserID = *userID

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Update handles updating an invoice
// @Summary Update Invoice
// @Description Update an existing invoice and replace its lines
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body InvoiceRequest true "Invoice data"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, ok := h.invoiceInput(c, &req)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), &service.UpdateInvoiceInput{
		ID:           id,
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),

		CustomerID:    input.CustomerID,
		InvoiceDate:   input.InvoiceDate,
		JobCardNumber: input.JobCardNumber,

		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		CustomerMobile:  input.CustomerMobile,
		CustomerAadhar:  input.CustomerAadhar,
		CustomerGSTIN:   input.CustomerGSTIN,

		VehicleNo:    input.VehicleNo,
		VehicleModel: input.VehicleModel,
		KmsDriven:    input.KmsDriven,

		GlobalDiscountPercent: input.GlobalDiscountPercent,
		AdvanceAmount:         input.AdvanceAmount,
		Notes:                 input.Notes,

		Parts:   input.Parts,
		Labours: input.Labours,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// Delete handles deleting an invoice
// @Summary Delete Invoice
// @Description Delete an invoice by ID and restore consumed stock
// @Tags invoices
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 204
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// RecordPayment handles recording a payment against an invoice
// @Summary Record Payment
// @Description Add a received amount to an invoice's advance
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.invoiceService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		ID:           id,
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Amount:       req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", invoice)
}

// DownloadPDF streams the invoice as a PDF attachment
// @Summary Download Invoice PDF
// @Description Render the invoice as a PDF document
// @Tags invoices
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	pdf, filename, err := h.documentService.InvoicePDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/pdf", pdf)
}

// Email sends the invoice PDF to the customer
// @Summary Email Invoice
// @Description Send the invoice PDF to the customer's email address
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/email [post]
func (h *InvoiceHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req struct {
		To string `json:"to" binding:"omitempty,email"`
	}
	// Body is optional; an empty body means "use the customer's address"
	_ = c.ShouldBindJSON(&req)

	if err := h.documentService.EmailInvoice(c.Request.Context(), &service.EmailInvoiceInput{
		InvoiceID: id,
		To:        req.To,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice emailed successfully", nil)
}

// PrintReceipt prints the invoice's counter receipt
// @Summary Print Invoice Receipt
// @Description Print the invoice as a thermal counter receipt
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/receipt [post]
func (h *InvoiceHandler) PrintReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	receipt, err := h.printerService.PrintInvoiceReceipt(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			// Printing failed but the receipt data is still usable client-side
			response.OK(c, "Printer unavailable, returning receipt data", gin.H{"receipt": receipt})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{"receipt": receipt})
}

// invoiceInput converts a request body into a service input. It writes
// the error response itself and returns ok=false on bad input.
func (h *InvoiceHandler) invoiceInput(c *gin.Context, req *InvoiceRequest) (*service.CreateInvoiceInput, bool) {
	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
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

	parts, ok := lineItems(c, req.Parts)
	if !ok {
		return nil, false
	}
	labours, ok := lineItems(c, req.Labours)
	if !ok {
		return nil, false
	}

	return &service.CreateInvoiceInput{
		CustomerID:    customerID,
		InvoiceDate:   invoiceDate,
		JobCardNumber: req.JobCardNumber,

		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerMobile:  req.CustomerMobile,
		CustomerAadhar:  req.CustomerAadhar,
		CustomerGSTIN:   req.CustomerGSTIN,

		VehicleNo:    req.VehicleNo,
		VehicleModel: req.VehicleModel,
		KmsDriven:    req.KmsDriven,

		GlobalDiscountPercent: req.GlobalDiscountPercent,
		AdvanceAmount:         req.AdvanceAmount,
		Notes:                 req.Notes,

		Parts:   parts,
		Labours: labours,
	}, true
}

// lineItems converts request lines into service inputs
func lineItems(c *gin.Context, reqs []LineItemRequest) ([]service.LineItemInput, bool) {
	items := make([]service.LineItemInput, 0, len(reqs))
	for _, r := range reqs {
		item := service.LineItemInput{
			Name:            r.Name,
			Quantity:        r.Quantity,
			UnitPrice:       r.UnitPrice,
			DiscountPercent: r.DiscountPercent,
			CGSTPercent:     r.CGSTPercent,
			SGSTPercent:     r.SGSTPercent,
			IGSTPercent:     r.IGSTPercent,
		}
		if r.SparePartID != nil && *r.SparePartID != "" {
			parsed, err := uuid.Parse(*r.SparePartID)
			if err != nil {
				response.BadRequest(c, "Invalid spare part ID")
				return nil, false
			}
			item.SparePartID = &parsed
		}
		items = append(items, item)
	}
	return items, true
}
