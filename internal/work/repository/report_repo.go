package repository

import (
	"context"
	"time"

	"github.com/bitfantasy/worktrack/internal/work/entity"
)

// ReportRepository 报表仓库
type ReportRepository struct {
	store *Store
}

func NewReportRepository(store *Store) *ReportRepository {
	return &ReportRepository{store: store}
}

// FindAll 查询全部报表
func (r *ReportRepository) FindAll(ctx context.Context) []entity.Report {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entity.Report, 0, len(s.reports))
	for _, report := range s.reports {
		items = append(items, *report)
	}
	return items
}

// FindByID 根据 id 查找报表
func (r *ReportRepository) FindByID(ctx context.Context, id int) (*entity.Report, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *report
	return &out, nil
}

// Create 创建报表任务，初始状态为 generating
func (r *ReportRepository) Create(ctx context.Context, report *entity.Report) *entity.Report {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	report.ID = s.newID()
	report.Status = entity.ReportStatusGenerating
	report.FilePath = nil
	report.GeneratedAt = time.Now()

	stored := *report
	s.reports[stored.ID] = &stored
	return report
}

// ReportUpdate 报表局部更新，nil 字段保持原值
type ReportUpdate struct {
	Status   *string
	FilePath *string
}

// Update 浅合并给定字段，后台渲染完成时恰好调用一次
func (r *ReportRepository) Update(ctx context.Context, id int, upd *ReportUpdate) (*entity.Report, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Status != nil {
		report.Status = *upd.Status
	}
	if upd.FilePath != nil {
		report.FilePath = upd.FilePath
	}
	out := *report
	return &out, nil
}

// Delete 删除报表，返回记录是否存在
func (r *ReportRepository) Delete(ctx context.Context, id int) bool {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.reports[id]
	delete(s.reports, id)
	return ok
}
