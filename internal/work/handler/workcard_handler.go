package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bitfantasy/worktrack/internal/work/repository"
	"github.com/bitfantasy/worktrack/internal/work/service"
	"github.com/gin-gonic/gin"
)

// WorkCardHandler 工单处理器
type WorkCardHandler struct {
	svc *service.WorkCardService
}

func NewWorkCardHandler(svc *service.WorkCardService) *WorkCardHandler {
	return &WorkCardHandler{svc: svc}
}

// List 工单列表，带指派员工摘要
// GET /api/work-cards?status=xxx&employeeId=1
func (h *WorkCardHandler) List(c *gin.Context) {
	status := c.Query("status")

	var employeeID *int
	if raw := c.Query("employeeId"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			employeeID = &id
		}
	}

	c.JSON(http.StatusOK, h.svc.List(c.Request.Context(), status, employeeID))
}

// Get 工单详情
// GET /api/work-cards/:id
func (h *WorkCardHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		NotFound(c, "Work card not found")
		return
	}

	card, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "Work card not found")
		return
	}
	c.JSON(http.StatusOK, card)
}

// GetByQRCode 扫码查找工单
// GET /api/work-cards/qr/:qrCode
func (h *WorkCardHandler) GetByQRCode(c *gin.Context) {
	card, err := h.svc.GetByQRCode(c.Request.Context(), c.Param("qrCode"))
	if err != nil {
		NotFound(c, "Work card not found")
		return
	}
	c.JSON(http.StatusOK, card)
}

// Create 创建工单
// POST /api/work-cards
func (h *WorkCardHandler) Create(c *gin.Context) {
	var req service.CreateWorkCardRequest
	if !bindJSON(c, &req, "Invalid work card data") {
		return
	}

	card := h.svc.Create(c.Request.Context(), &req)
	c.JSON(http.StatusCreated, card)
}

// QRImage 工单二维码图片
// GET /api/work-cards/:id/qr
func (h *WorkCardHandler) QRImage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		NotFound(c, "Work card not found")
		return
	}

	image, err := h.svc.QRImage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Work card not found")
			return
		}
		InternalError(c, "Failed to generate QR code")
		return
	}
	c.JSON(http.StatusOK, image)
}

// Complete 完成表单提交
// POST /api/work-cards/:id/complete
func (h *WorkCardHandler) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		NotFound(c, "Work card not found")
		return
	}

	var req service.WorkCompletionRequest
	if !bindJSON(c, &req, "Invalid completion data") {
		return
	}

	card, err := h.svc.Complete(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Work card not found")
			return
		}
		InternalError(c, "Failed to complete work card")
		return
	}
	c.JSON(http.StatusOK, card)
}
