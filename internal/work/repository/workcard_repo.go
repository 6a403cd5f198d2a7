package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bitfantasy/worktrack/internal/work/entity"
	"github.com/google/uuid"
)

// WorkCardRepository 工单仓库
type WorkCardRepository struct {
	store *Store
}

func NewWorkCardRepository(store *Store) *WorkCardRepository {
	return &WorkCardRepository{store: store}
}

// FindAll 查询全部工单
func (r *WorkCardRepository) FindAll(ctx context.Context) []entity.WorkCard {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entity.WorkCard, 0, len(s.workCards))
	for _, card := range s.workCards {
		items = append(items, *card)
	}
	return items
}

// FindByID 根据 id 查找工单
func (r *WorkCardRepository) FindByID(ctx context.Context, id int) (*entity.WorkCard, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.workCards[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *card
	return &out, nil
}

// FindByCardID 根据卡号查找工单，线性扫描
func (r *WorkCardRepository) FindByCardID(ctx context.Context, cardID string) (*entity.WorkCard, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, card := range s.workCards {
		if card.CardID == cardID {
			out := *card
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// FindByQRCode 根据二维码令牌查找工单，线性扫描
func (r *WorkCardRepository) FindByQRCode(ctx context.Context, qrCode string) (*entity.WorkCard, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, card := range s.workCards {
		if card.QRCode == qrCode {
			out := *card
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// FindByEmployee 查询指派给某员工的工单
func (r *WorkCardRepository) FindByEmployee(ctx context.Context, employeeID int) []entity.WorkCard {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []entity.WorkCard
	for _, card := range s.workCards {
		if card.AssignedToID != nil && *card.AssignedToID == employeeID {
			items = append(items, *card)
		}
	}
	return items
}

// FindByStatus 查询指定状态的工单
func (r *WorkCardRepository) FindByStatus(ctx context.Context, status string) []entity.WorkCard {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []entity.WorkCard
	for _, card := range s.workCards {
		if card.Status == status {
			items = append(items, *card)
		}
	}
	return items
}

// Create 创建工单，分配 id、生成不可变二维码令牌并补默认值
func (r *WorkCardRepository) Create(ctx context.Context, card *entity.WorkCard) *entity.WorkCard {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	card.ID = s.newID()
	card.QRCode = fmt.Sprintf("QR-%s-%s", card.CardID, qrToken())
	if card.Status == "" {
		card.Status = entity.WorkCardStatusAssigned
	}
	if card.Priority == "" {
		card.Priority = entity.PriorityNormal
	}
	if card.TimeLossActivities == nil {
		card.TimeLossActivities = []entity.TimeLossActivity{}
	}
	if card.DefectivePartNumbers == nil {
		card.DefectivePartNumbers = []string{}
	}
	if card.MachineSlots == nil {
		card.MachineSlots = []entity.MachineSlot{}
	}
	if card.OvertimeMachineSlots == nil {
		card.OvertimeMachineSlots = []entity.MachineSlot{}
	}
	if card.OvertimeTimeLossActivities == nil {
		card.OvertimeTimeLossActivities = []entity.TimeLossActivity{}
	}
	if card.OvertimeDefectivePartNumbers == nil {
		card.OvertimeDefectivePartNumbers = []string{}
	}
	card.CreatedAt = time.Now()

	stored := *card
	s.workCards[stored.ID] = &stored
	return card
}

// WorkCardUpdate 工单局部更新，nil 字段保持原值
// 数组字段是整体替换而不是追加，与完成提交的语义一致。
type WorkCardUpdate struct {
	Title           *string
	Description     *string
	AssignedToID    *int
	Location        *string
	Status          *string
	Priority        *string
	Deadline        *time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
	ProgressPercent *int
	HoursWorked     *int
	Notes           *string
	Materials       []entity.Material
	PhotoURLs       []string
}

// Update 浅合并给定字段
func (r *WorkCardRepository) Update(ctx context.Context, id int, upd *WorkCardUpdate) (*entity.WorkCard, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.workCards[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyWorkCardUpdate(card, upd)
	out := *card
	return &out, nil
}

// Delete 删除工单，返回记录是否存在
func (r *WorkCardRepository) Delete(ctx context.Context, id int) bool {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.workCards[id]
	delete(s.workCards, id)
	return ok
}

// CompletionDelta 一次完成提交对工单的增量
type CompletionDelta struct {
	Status          string
	ProgressPercent int
	MinutesWorked   int
	Notes           string
	Materials       []entity.Material
	PhotoURLs       []string
}

// Complete 完成提交：追加作业记录并更新工单，两者在同一次加锁内生效。
// 状态机规则在这里落地：startedAt 只在首次 started 时写入，
// completedAt 只在首次 completed 时写入且进度强制为 100。
func (r *WorkCardRepository) Complete(ctx context.Context, id int, delta *CompletionDelta) (*entity.WorkCard, *entity.WorkSession, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.workCards[id]
	if !ok {
		return nil, nil, ErrNotFound
	}

	now := time.Now()
	prev := card.Status
	minutes := delta.MinutesWorked
	progress := delta.ProgressPercent
	session := &entity.WorkSession{
		ID:             s.newID(),
		WorkCardID:     intp(card.ID),
		EmployeeID:     card.AssignedToID,
		Action:         delta.Status,
		PreviousStatus: strp(prev),
		NewStatus:      strp(delta.Status),
		ProgressUpdate: intp(progress),
		HoursWorked:    intp(minutes),
		Notes:          strp(delta.Notes),
		Materials:      delta.Materials,
		PhotoURLs:      delta.PhotoURLs,
		Timestamp:      now,
	}
	s.sessions[session.ID] = session

	card.Status = delta.Status
	card.ProgressPercent = delta.ProgressPercent
	card.HoursWorked += minutes
	card.Notes = strp(delta.Notes)
	card.Materials = delta.Materials
	card.PhotoURLs = delta.PhotoURLs

	if delta.Status == "started" && card.StartedAt == nil {
		card.StartedAt = timep(now)
	}
	if delta.Status == entity.WorkCardStatusCompleted {
		card.ProgressPercent = 100
		if card.CompletedAt == nil {
			card.CompletedAt = timep(now)
		}
	}

	cardOut := *card
	sessionOut := *session
	return &cardOut, &sessionOut, nil
}

func applyWorkCardUpdate(card *entity.WorkCard, upd *WorkCardUpdate) {
	if upd.Title != nil {
		card.Title = *upd.Title
	}
	if upd.Description != nil {
		card.Description = *upd.Description
	}
	if upd.AssignedToID != nil {
		card.AssignedToID = upd.AssignedToID
	}
	if upd.Location != nil {
		card.Location = *upd.Location
	}
	if upd.Status != nil {
		card.Status = *upd.Status
	}
	if upd.Priority != nil {
		card.Priority = *upd.Priority
	}
	if upd.Deadline != nil {
		card.Deadline = upd.Deadline
	}
	if upd.StartedAt != nil {
		card.StartedAt = upd.StartedAt
	}
	if upd.CompletedAt != nil {
		card.CompletedAt = upd.CompletedAt
	}
	if upd.ProgressPercent != nil {
		card.ProgressPercent = *upd.ProgressPercent
	}
	if upd.HoursWorked != nil {
		card.HoursWorked = *upd.HoursWorked
	}
	if upd.Notes != nil {
		card.Notes = upd.Notes
	}
	if upd.Materials != nil {
		card.Materials = upd.Materials
	}
	if upd.PhotoURLs != nil {
		card.PhotoURLs = upd.PhotoURLs
	}
}

// qrToken 二维码令牌的 8 位大写随机后缀
func qrToken() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:8])
}
