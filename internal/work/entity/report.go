package entity

import "time"

// 报表状态
const (
	ReportStatusGenerating = "generating"
	ReportStatusReady      = "ready"
	ReportStatusFailed     = "failed"
)

// Report 报表任务
// 创建即进入 generating，后台渲染完成后恰好更新一次为 ready 或 failed。
type Report struct {
	ID          int                    `json:"id"`
	Name        string                 `json:"name"`
	Type        string                 `json:"type"` // daily-summary, weekly-summary, employee-performance
	DateFrom    time.Time              `json:"dateFrom"`
	DateTo      time.Time              `json:"dateTo"`
	Filters     map[string]interface{} `json:"filters"`
	Status      string                 `json:"status"` // generating, ready, failed
	FilePath    *string                `json:"filePath"`
	GeneratedAt time.Time              `json:"generatedAt"`
}

// DashboardStats 看板统计
// Overdue 是查询时由截止时间推导出的计数，与工单自身的 Status 字段相互独立。
type DashboardStats struct {
	ActiveWorkers  int `json:"activeWorkers"`
	CompletedToday int `json:"completedToday"`
	InProgress     int `json:"inProgress"`
	Overdue        int `json:"overdue"`
}
