package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/application/service"
	"github.com/autocarcare/garage-api/internal/presentation/http/dto/response"
)

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// EmployeeRequest represents the create employee request body
type EmployeeRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=255"`
	MobileNo    *string  `json:"mobile_no"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Address     *string  `json:"address"`
	AadharNo    *string  `json:"aadhar_no"`
	Designation *string  `json:"designation"`
	Salary      *float64 `json:"salary"`
	JoinedAt    *string  `json:"joined_at"`
}

// List handles listing employees
// @Summary List Employees
// @Description Get all employees with pagination and search
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Success 200 {object} response.APIResponse
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.employeeService.ListEmployees(c.Request.Context(), &service.ListEmployeesInput{
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Pagination:   paginationFromQuery(c),
		Search:       c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Employees retrieved successfully", result)
}

// Get handles getting a single employee
// @Summary Get Employee
// @Description Get an employee by ID
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.APIResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// Create handles creating an employee
// @Summary Create Employee
// @Description Create a new employee
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EmployeeRequest true "Employee data"
// @Success 201 {object} response.APIResponse
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	joinedAt, ok := parseOptionalDate(c, req.JoinedAt)
	if !ok {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		UserID:      *userID,
		Name:        req.Name,
		MobileNo:    req.MobileNo,
		Email:       req.Email,
		Address:     req.Address,
		AadharNo:    req.AadharNo,
		Designation: req.Designation,
		Salary:      req.Salary,
		JoinedAt:    joinedAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// Update handles updating an employee
// @Summary Update Employee
// @Description Update an existing employee
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.APIResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		MobileNo    *string  `json:"mobile_no"`
		Email       *string  `json:"email" binding:"omitempty,email"`
		Address     *string  `json:"address"`
		AadharNo    *string  `json:"aadhar_no"`
		Designation *string  `json:"designation"`
		Salary      *float64 `json:"salary"`
		JoinedAt    *string  `json:"joined_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	joinedAt, ok := parseOptionalDate(c, req.JoinedAt)
	if !ok {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), &service.UpdateEmployeeInput{
		ID:           id,
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Name:         req.Name,
		MobileNo:     req.MobileNo,
		Email:        req.Email,
		Address:      req.Address,
		AadharNo:     req.AadharNo,
		Designation:  req.Designation,
		Salary:       req.Salary,
		JoinedAt:     joinedAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// Delete handles deleting an employee
// @Summary Delete Employee
// @Description Delete an employee by ID
// @Tags employees
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 204
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// parseOptionalDate parses an optional YYYY-MM-DD date string. It writes
// the error response itself and returns ok=false on bad input.
func parseOptionalDate(c *gin.Context, s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", *s)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return nil, false
	}
	return &parsed, true
}
