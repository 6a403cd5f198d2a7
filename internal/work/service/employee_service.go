package service

import (
	"context"
	"sort"
	"time"

	"github.com/bitfantasy/worktrack/internal/work/entity"
	"github.com/bitfantasy/worktrack/internal/work/repository"
)

// EmployeeService 员工服务
type EmployeeService struct {
	repo *repository.EmployeeRepository
}

func NewEmployeeService(repo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	EmployeeID string  `json:"employeeId" binding:"required"`
	Department string  `json:"department" binding:"required"`
	Location   *string `json:"location"`
	Status     string  `json:"status" binding:"omitempty,oneof=active on-break off-site unavailable"`
}

// UpdateEmployeeRequest 更新员工请求，缺省字段保持原值
type UpdateEmployeeRequest struct {
	Name       *string    `json:"name"`
	EmployeeID *string    `json:"employeeId"`
	Department *string    `json:"department"`
	Location   *string    `json:"location"`
	Status     *string    `json:"status" binding:"omitempty,oneof=active on-break off-site unavailable"`
	LastSeen   *time.Time `json:"lastSeen"`
}

// List 员工列表
func (s *EmployeeService) List(ctx context.Context) []entity.Employee {
	items := s.repo.FindAll(ctx)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Get 员工详情
func (s *EmployeeService) Get(ctx context.Context, id int) (*entity.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByEmployeeID 按工号查找员工
func (s *EmployeeService) GetByEmployeeID(ctx context.Context, employeeID string) (*entity.Employee, error) {
	return s.repo.FindByEmployeeID(ctx, employeeID)
}

// Create 创建员工，状态缺省为 active
func (s *EmployeeService) Create(ctx context.Context, req *CreateEmployeeRequest) *entity.Employee {
	emp := &entity.Employee{
		Name:       req.Name,
		EmployeeID: req.EmployeeID,
		Department: req.Department,
		Location:   req.Location,
		Status:     req.Status,
	}
	return s.repo.Create(ctx, emp)
}

// Update 局部更新员工
func (s *EmployeeService) Update(ctx context.Context, id int, req *UpdateEmployeeRequest) (*entity.Employee, error) {
	return s.repo.Update(ctx, id, &repository.EmployeeUpdate{
		Name:       req.Name,
		EmployeeID: req.EmployeeID,
		Department: req.Department,
		Location:   req.Location,
		Status:     req.Status,
		LastSeen:   req.LastSeen,
	})
}

// Delete 删除员工
func (s *EmployeeService) Delete(ctx context.Context, id int) bool {
	return s.repo.Delete(ctx, id)
}
