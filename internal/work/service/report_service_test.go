package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitfantasy/worktrack/internal/work/entity"
	"github.com/bitfantasy/worktrack/internal/work/repository"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newReportTestService(t *testing.T, dir string) (*ReportService, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(repository.NewStore())
	svc := NewReportService(repos.Report, repos.WorkCard, repos.Employee, dir, zap.NewNop())
	return svc, repos
}

func TestRenderDailySummary(t *testing.T) {
	dir := t.TempDir()
	svc, repos := newReportTestService(t, dir)
	ctx := context.Background()

	report := repos.Report.Create(ctx, &entity.Report{
		Name:     "Daily Summary",
		Type:     "daily-summary",
		DateFrom: time.Now().Add(-24 * time.Hour),
		DateTo:   time.Now().Add(24 * time.Hour),
	})

	svc.generate(report.ID)

	rendered, err := repos.Report.FindByID(ctx, report.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if rendered.Status != entity.ReportStatusReady {
		t.Fatalf("status = %q, want ready", rendered.Status)
	}
	if rendered.FilePath == nil {
		t.Fatal("filePath not set on ready report")
	}

	f, err := excelize.OpenFile(*rendered.FilePath)
	if err != nil {
		t.Fatalf("Open generated workbook: %v", err)
	}
	defer f.Close()

	header, _ := f.GetCellValue("Work Summary", "A1")
	if header != "Card ID" {
		t.Errorf("A1 = %q, want Card ID", header)
	}
	// 种子工单落在日期范围内，按 id 升序第一行是 WC-001
	firstCard, _ := f.GetCellValue("Work Summary", "A2")
	if firstCard != "WC-001" {
		t.Errorf("A2 = %q, want WC-001", firstCard)
	}
	employee, _ := f.GetCellValue("Work Summary", "C2")
	if employee != "Mike Rodriguez" {
		t.Errorf("C2 = %q, want Mike Rodriguez", employee)
	}
	// 480 分钟换算为 8 小时
	hours, _ := f.GetCellValue("Work Summary", "F2")
	if hours != "8" {
		t.Errorf("F2 = %q, want 8", hours)
	}
}

func TestRenderDateRangeFilter(t *testing.T) {
	dir := t.TempDir()
	svc, repos := newReportTestService(t, dir)
	ctx := context.Background()

	// 范围在种子数据之前，不应有任何数据行
	report := repos.Report.Create(ctx, &entity.Report{
		Name:     "Empty Range",
		Type:     "daily-summary",
		DateFrom: time.Now().Add(-72 * time.Hour),
		DateTo:   time.Now().Add(-48 * time.Hour),
	})

	svc.generate(report.ID)

	rendered, err := repos.Report.FindByID(ctx, report.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if rendered.Status != entity.ReportStatusReady {
		t.Fatalf("status = %q, want ready", rendered.Status)
	}

	f, err := excelize.OpenFile(*rendered.FilePath)
	if err != nil {
		t.Fatalf("Open generated workbook: %v", err)
	}
	defer f.Close()

	row2, _ := f.GetCellValue("Work Summary", "A2")
	if row2 != "" {
		t.Errorf("A2 = %q, want empty (no cards in range)", row2)
	}
}

func TestRenderFailureLeavesFailedStatus(t *testing.T) {
	// 把输出目录指到一个普通文件上，MkdirAll 必然失败
	dir := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(dir, []byte("x"), 0o644); err != nil {
		t.Fatalf("prepare blocking file: %v", err)
	}
	svc, repos := newReportTestService(t, dir)
	ctx := context.Background()

	report := repos.Report.Create(ctx, &entity.Report{
		Name:     "Doomed",
		Type:     "daily-summary",
		DateFrom: time.Now().Add(-24 * time.Hour),
		DateTo:   time.Now(),
	})

	svc.generate(report.ID)

	failed, err := repos.Report.FindByID(ctx, report.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if failed.Status != entity.ReportStatusFailed {
		t.Fatalf("status = %q, want failed", failed.Status)
	}
	if failed.FilePath != nil {
		t.Errorf("filePath = %v, want nil on failed report", *failed.FilePath)
	}
}
