package service

import (
	"github.com/bitfantasy/worktrack/internal/config"
	"github.com/bitfantasy/worktrack/internal/work/repository"
	"go.uber.org/zap"
)

// Services 服务集合
type Services struct {
	Employee  *EmployeeService
	WorkCard  *WorkCardService
	Session   *SessionService
	Dashboard *DashboardService
	Report    *ReportService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, cfg *config.Config, logger *zap.Logger) *Services {
	return &Services{
		Employee:  NewEmployeeService(repos.Employee),
		WorkCard:  NewWorkCardService(repos.WorkCard, repos.Employee),
		Session:   NewSessionService(repos.Session, repos.WorkCard, repos.Employee),
		Dashboard: NewDashboardService(repos.Store()),
		Report:    NewReportService(repos.Report, repos.WorkCard, repos.Employee, cfg.Report.Dir, logger),
	}
}

// EmployeeSummary 员工摘要，列表接口内嵌返回
type EmployeeSummary struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
}

// WorkCardSummary 工单摘要，作业记录接口内嵌返回
type WorkCardSummary struct {
	ID     int    `json:"id"`
	CardID string `json:"cardId"`
	Title  string `json:"title"`
}
