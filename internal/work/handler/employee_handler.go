package handler

import (
	"net/http"

	"github.com/bitfantasy/worktrack/internal/work/service"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler 员工处理器
type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// List 员工列表
// GET /api/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

// Get 员工详情
// GET /api/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		NotFound(c, "Employee not found")
		return
	}

	employee, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "Employee not found")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// Create 创建员工
// POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if !bindJSON(c, &req, "Invalid employee data") {
		return
	}

	employee := h.svc.Create(c.Request.Context(), &req)
	c.JSON(http.StatusCreated, employee)
}

// Update 局部更新员工
// PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		NotFound(c, "Employee not found")
		return
	}

	var req service.UpdateEmployeeRequest
	if !bindJSON(c, &req, "Invalid employee data") {
		return
	}

	employee, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		NotFound(c, "Employee not found")
		return
	}
	c.JSON(http.StatusOK, employee)
}
