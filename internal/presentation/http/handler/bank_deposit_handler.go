package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/application/service"
	"github.com/autocarcare/garage-api/internal/presentation/http/dto/response"
)

// BankDepositHandler handles bank deposit HTTP requests
type BankDepositHandler struct {
	depositService *service.BankDepositService
}

// NewBankDepositHandler creates a new bank deposit handler
func NewBankDepositHandler(depositService *service.BankDepositService) *BankDepositHandler {
	return &BankDepositHandler{depositService: depositService}
}

// BankDepositRequest represents the create deposit request body
type BankDepositRequest struct {
	DepositDate   string  `json:"deposit_date" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	BankName      string  `json:"bank_name" binding:"required"`
	AccountNumber *string `json:"account_number"`
	Mode          *string `json:"mode"`
	ReferenceNo   *string `json:"reference_no"`
	Notes         *string `json:"notes"`
}

// List handles listing deposits over an optional date range
// @Summary List Bank Deposits
// @Description Get all bank deposits with pagination and date filtering
// @Tags bank-deposits
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /bank-deposits [get]
func (h *BankDepositHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	output, err := h.depositService.ListBankDeposits(c.Request.Context(), &service.ListBankDepositsInput{
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Pagination:   paginationFromQuery(c),
		From:         from,
		To:           to,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank deposits retrieved successfully", gin.H{
		"deposits":     output.Result.Items,
		"pagination":   output.Result.Pagination,
		"period_total": output.PeriodTotal,
	})
}

// Get handles getting a single deposit
// @Summary Get Bank Deposit
// @Description Get a bank deposit by ID
// @Tags bank-deposits
// @Security BearerAuth
// @Produce json
// @Param id path string true "Deposit ID"
// @Success 200 {object} response.APIResponse
// @Router /bank-deposits/{id} [get]
func (h *BankDepositHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deposit ID")
		return
	}

	deposit, err := h.depositService.GetBankDeposit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank deposit retrieved successfully", deposit)
}

// Create handles recording a deposit
// @Summary Create Bank Deposit
// @Description Record a new bank deposit
// @Tags bank-deposits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BankDepositRequest true "Deposit data"
// @Success 201 {object} response.APIResponse
// @Router /bank-deposits [post]
func (h *BankDepositHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req BankDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	depositDate, err := time.Parse("2006-01-02", req.DepositDate)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	deposit, err := h.depositService.CreateBankDeposit(c.Request.Context(), &service.CreateBankDepositInput{
		UserID:        *userID,
		DepositDate:   depositDate,
		Amount:        req.Amount,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Mode:          req.Mode,
		ReferenceNo:   req.ReferenceNo,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bank deposit recorded successfully", deposit)
}

// Update handles updating a deposit
// @Summary Update Bank Deposit
// @Description Update an existing bank deposit
// @Tags bank-deposits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Deposit ID"
// @Success 200 {object} response.APIResponse
// @Router /bank-deposits/{id} [put]
func (h *BankDepositHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deposit ID")
		return
	}

	var req struct {
		DepositDate   *string  `json:"deposit_date"`
		Amount        *float64 `json:"amount" binding:"omitempty,gt=0"`
		BankName      *string  `json:"bank_name"`
		AccountNumber *string  `json:"account_number"`
		Mode          *string  `json:"mode"`
		ReferenceNo   *string  `json:"reference_no"`
		Notes         *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	depositDate, ok := parseOptionalDate(c, req.DepositDate)
	if !ok {
		return
	}

	deposit, err := h.depositService.UpdateBankDeposit(c.Request.Context(), &service.UpdateBankDepositInput{
		ID:            id,
		UserID:        *userID,
		IsSuperAdmin:  IsSuperAdmin(c),
		DepositDate:   depositDate,
		Amount:        req.Amount,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Mode:          req.Mode,
		ReferenceNo:   req.ReferenceNo,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank deposit updated successfully", deposit)
}

// Delete handles deleting a deposit
// @Summary Delete Bank Deposit
// @Description Delete a bank deposit by ID
// @Tags bank-deposits
// @Security BearerAuth
// @Param id path string true "Deposit ID"
// @Success 204
// @Router /bank-deposits/{id} [delete]
func (h *BankDepositHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deposit ID")
		return
	}

	if err := h.depositService.DeleteBankDeposit(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// parseDateQuery parses an optional YYYY-MM-DD query value. A zero time
// means the bound was not given.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	s := c.Query(name)
	if s == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		response.BadRequest(c, "Invalid "+name+" date. Use YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed, true
}
