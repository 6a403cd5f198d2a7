package service

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bitfantasy/worktrack/internal/work/entity"
	"github.com/bitfantasy/worktrack/internal/work/repository"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReportService 报表服务
// 创建报表后在后台渲染 Excel 文件；渲染任务没有句柄、不取消、不重试，
// 失败的报表永久停留在 failed，只能通过轮询状态观察结果。
type ReportService struct {
	reportRepo   *repository.ReportRepository
	cardRepo     *repository.WorkCardRepository
	employeeRepo *repository.EmployeeRepository
	dir          string
	logger       *zap.Logger
}

func NewReportService(reportRepo *repository.ReportRepository, cardRepo *repository.WorkCardRepository, employeeRepo *repository.EmployeeRepository, dir string, logger *zap.Logger) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		cardRepo:     cardRepo,
		employeeRepo: employeeRepo,
		dir:          dir,
		logger:       logger,
	}
}

// CreateReportRequest 创建报表请求
type CreateReportRequest struct {
	Name     string                 `json:"name" binding:"required"`
	Type     string                 `json:"type" binding:"required"`
	DateFrom time.Time              `json:"dateFrom" binding:"required"`
	DateTo   time.Time              `json:"dateTo" binding:"required"`
	Filters  map[string]interface{} `json:"filters"`
}

// List 报表列表
func (s *ReportService) List(ctx context.Context) []entity.Report {
	items := s.reportRepo.FindAll(ctx)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Get 报表详情
func (s *ReportService) Get(ctx context.Context, id int) (*entity.Report, error) {
	return s.reportRepo.FindByID(ctx, id)
}

// Create 创建报表任务并启动后台渲染
func (s *ReportService) Create(ctx context.Context, req *CreateReportRequest) *entity.Report {
	report := s.reportRepo.Create(ctx, &entity.Report{
		Name:     req.Name,
		Type:     req.Type,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Filters:  req.Filters,
	})

	go s.generate(report.ID)

	return report
}

// generate 后台渲染，完成后恰好更新一次报表状态
func (s *ReportService) generate(id int) {
	ctx := context.Background()

	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Report vanished before rendering", zap.Int("report_id", id))
		return
	}

	filePath, err := s.render(ctx, report)
	if err != nil {
		s.logger.Error("Failed to generate report",
			zap.Int("report_id", id),
			zap.String("type", report.Type),
			zap.Error(err),
		)
		failed := entity.ReportStatusFailed
		s.reportRepo.Update(ctx, id, &repository.ReportUpdate{Status: &failed})
		return
	}

	ready := entity.ReportStatusReady
	s.reportRepo.Update(ctx, id, &repository.ReportUpdate{Status: &ready, FilePath: &filePath})
	s.logger.Info("Report generated", zap.Int("report_id", id), zap.String("file", filePath))
}

var reportColumns = []struct {
	Header string
	Width  float64
}{
	{"Card ID", 15},
	{"Title", 30},
	{"Employee", 20},
	{"Status", 15},
	{"Progress %", 12},
	{"Hours Worked", 15},
	{"Location", 20},
	{"Notes", 40},
}

func (s *ReportService) render(ctx context.Context, report *entity.Report) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Work Summary"
	f.SetSheetName("Sheet1", sheet)

	if report.Type == "daily-summary" {
		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#2563EB"}},
		})
		if err != nil {
			return "", fmt.Errorf("header style: %w", err)
		}

		for i, col := range reportColumns {
			name, _ := excelize.ColumnNumberToName(i + 1)
			cell := name + "1"
			f.SetCellValue(sheet, cell, col.Header)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
			f.SetColWidth(sheet, name, name, col.Width)
		}

		cards := s.cardRepo.FindAll(ctx)
		sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })

		row := 2
		for _, card := range cards {
			if card.CreatedAt.Before(report.DateFrom) || card.CreatedAt.After(report.DateTo) {
				continue
			}

			employeeName := "Unassigned"
			if card.AssignedToID != nil {
				if emp, err := s.employeeRepo.FindByID(ctx, *card.AssignedToID); err == nil {
					employeeName = emp.Name
				}
			}

			notes := ""
			if card.Notes != nil {
				notes = *card.Notes
			}

			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), card.CardID)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), card.Title)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), employeeName)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), card.Status)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), card.ProgressPercent)
			// 分钟换算为小时，保留一位小数
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), math.Round(float64(card.HoursWorked)/60*10)/10)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), card.Location)
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), notes)
			row++
		}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	fileName := fmt.Sprintf("report_%d_%d.xlsx", report.ID, time.Now().UnixMilli())
	filePath := filepath.Join(s.dir, fileName)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	return filePath, nil
}
