package repository

import (
	"context"
	"time"

	"github.com/bitfantasy/worktrack/internal/work/entity"
)

// EmployeeRepository 员工仓库
type EmployeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

// FindAll 查询全部员工
func (r *EmployeeRepository) FindAll(ctx context.Context) []entity.Employee {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entity.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		items = append(items, *emp)
	}
	return items
}

// FindByID 根据 id 查找员工
func (r *EmployeeRepository) FindByID(ctx context.Context, id int) (*entity.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *emp
	return &out, nil
}

// FindByEmployeeID 根据工号查找员工，线性扫描
func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*entity.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, emp := range s.employees {
		if emp.EmployeeID == employeeID {
			out := *emp
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Create 创建员工，分配 id 并打创建时间戳
func (r *EmployeeRepository) Create(ctx context.Context, emp *entity.Employee) *entity.Employee {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	emp.ID = s.newID()
	if emp.Status == "" {
		emp.Status = entity.EmployeeStatusActive
	}
	emp.LastSeen = now
	emp.CreatedAt = now

	stored := *emp
	s.employees[stored.ID] = &stored
	return emp
}

// EmployeeUpdate 员工局部更新，nil 字段保持原值
type EmployeeUpdate struct {
	Name       *string
	EmployeeID *string
	Department *string
	Location   *string
	Status     *string
	LastSeen   *time.Time
}

// Update 浅合并给定字段
func (r *EmployeeRepository) Update(ctx context.Context, id int, upd *EmployeeUpdate) (*entity.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[id]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.Name != nil {
		emp.Name = *upd.Name
	}
	if upd.EmployeeID != nil {
		emp.EmployeeID = *upd.EmployeeID
	}
	if upd.Department != nil {
		emp.Department = *upd.Department
	}
	if upd.Location != nil {
		emp.Location = upd.Location
	}
	if upd.Status != nil {
		emp.Status = *upd.Status
	}
	if upd.LastSeen != nil {
		emp.LastSeen = *upd.LastSeen
	}

	out := *emp
	return &out, nil
}

// Delete 删除员工，返回记录是否存在
func (r *EmployeeRepository) Delete(ctx context.Context, id int) bool {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.employees[id]
	delete(s.employees, id)
	return ok
}
