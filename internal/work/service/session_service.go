package service

import (
	"context"

	"github.com/bitfantasy/worktrack/internal/work/entity"
	"github.com/bitfantasy/worktrack/internal/work/repository"
)

// SessionService 作业记录服务
type SessionService struct {
	sessionRepo  *repository.SessionRepository
	cardRepo     *repository.WorkCardRepository
	employeeRepo *repository.EmployeeRepository
}

func NewSessionService(sessionRepo *repository.SessionRepository, cardRepo *repository.WorkCardRepository, employeeRepo *repository.EmployeeRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo, cardRepo: cardRepo, employeeRepo: employeeRepo}
}

// SessionDetail 作业记录 + 工单与员工摘要
type SessionDetail struct {
	entity.WorkSession
	WorkCard *WorkCardSummary `json:"workCard"`
	Employee *EmployeeSummary `json:"employee"`
}

// Recent 最近作业记录，时间倒序
func (s *SessionService) Recent(ctx context.Context, limit int) []SessionDetail {
	sessions := s.sessionRepo.Recent(ctx, limit)

	items := make([]SessionDetail, 0, len(sessions))
	for _, session := range sessions {
		detail := SessionDetail{WorkSession: session}
		if session.WorkCardID != nil {
			if card, err := s.cardRepo.FindByID(ctx, *session.WorkCardID); err == nil {
				detail.WorkCard = &WorkCardSummary{ID: card.ID, CardID: card.CardID, Title: card.Title}
			}
		}
		if session.EmployeeID != nil {
			if emp, err := s.employeeRepo.FindByID(ctx, *session.EmployeeID); err == nil {
				detail.Employee = &EmployeeSummary{ID: emp.ID, Name: emp.Name, EmployeeID: emp.EmployeeID}
			}
		}
		items = append(items, detail)
	}
	return items
}
