package handler

import (
	"net/http"
	"os"

	"github.com/bitfantasy/worktrack/internal/work/entity"
	"github.com/bitfantasy/worktrack/internal/work/service"
	"github.com/gin-gonic/gin"
)

// ReportHandler 报表处理器
type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// List 报表列表
// GET /api/reports
func (h *ReportHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

// Create 创建报表任务，立即返回 generating 状态的记录
// POST /api/reports
func (h *ReportHandler) Create(c *gin.Context) {
	var req service.CreateReportRequest
	if !bindJSON(c, &req, "Invalid report data") {
		return
	}

	report := h.svc.Create(c.Request.Context(), &req)
	c.JSON(http.StatusCreated, report)
}

// Download 下载已生成的报表文件
// GET /api/reports/:id/download
func (h *ReportHandler) Download(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		NotFound(c, "Report not found")
		return
	}

	report, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "Report not found")
		return
	}

	if report.Status != entity.ReportStatusReady || report.FilePath == nil {
		BadRequest(c, "Report not ready for download")
		return
	}

	if _, err := os.Stat(*report.FilePath); err != nil {
		NotFound(c, "Report file not found")
		return
	}

	c.FileAttachment(*report.FilePath, report.Name+".xlsx")
}
