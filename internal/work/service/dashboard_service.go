package service

import (
	"context"
	"time"

	"github.com/bitfantasy/worktrack/internal/work/entity"
	"github.com/bitfantasy/worktrack/internal/work/repository"
)

// DashboardService 看板服务
type DashboardService struct {
	store *repository.Store
}

func NewDashboardService(store *repository.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Stats 看板统计
func (s *DashboardService) Stats(ctx context.Context) entity.DashboardStats {
	return s.store.DashboardStats(time.Now())
}
