package repository

import (
	"context"
	"sort"
	"time"

	"github.com/bitfantasy/worktrack/internal/work/entity"
)

// SessionRepository 作业记录仓库，只追加
type SessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// FindByID 根据 id 查找作业记录
func (r *SessionRepository) FindByID(ctx context.Context, id int) (*entity.WorkSession, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *session
	return &out, nil
}

// FindByCard 查询某工单的作业记录
func (r *SessionRepository) FindByCard(ctx context.Context, workCardID int) []entity.WorkSession {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []entity.WorkSession
	for _, session := range s.sessions {
		if session.WorkCardID != nil && *session.WorkCardID == workCardID {
			items = append(items, *session)
		}
	}
	return items
}

// FindByEmployee 查询某员工的作业记录
func (r *SessionRepository) FindByEmployee(ctx context.Context, employeeID int) []entity.WorkSession {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []entity.WorkSession
	for _, session := range s.sessions {
		if session.EmployeeID != nil && *session.EmployeeID == employeeID {
			items = append(items, *session)
		}
	}
	return items
}

// Recent 按时间倒序返回最多 limit 条作业记录
// 同一时间戳按 id 倒序，保证后写入的记录排在前面。
func (r *SessionRepository) Recent(ctx context.Context, limit int) []entity.WorkSession {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entity.WorkSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		items = append(items, *session)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Timestamp.Equal(items[j].Timestamp) {
			return items[i].ID > items[j].ID
		}
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Create 追加作业记录，分配 id 并打时间戳
func (r *SessionRepository) Create(ctx context.Context, session *entity.WorkSession) *entity.WorkSession {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	session.ID = s.newID()
	session.Timestamp = time.Now()

	stored := *session
	s.sessions[stored.ID] = &stored
	return session
}
