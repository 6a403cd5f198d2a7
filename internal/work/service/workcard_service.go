package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bitfantasy/worktrack/internal/work/entity"
	"github.com/bitfantasy/worktrack/internal/work/repository"
	qrcode "github.com/skip2/go-qrcode"
)

// WorkCardService 工单服务
type WorkCardService struct {
	cardRepo     *repository.WorkCardRepository
	employeeRepo *repository.EmployeeRepository
}

func NewWorkCardService(cardRepo *repository.WorkCardRepository, employeeRepo *repository.EmployeeRepository) *WorkCardService {
	return &WorkCardService{cardRepo: cardRepo, employeeRepo: employeeRepo}
}

// CreateWorkCardRequest 创建工单请求
// 二维码令牌由存储层生成，不接受外部传入。
type CreateWorkCardRequest struct {
	CardID          string     `json:"cardId" binding:"required"`
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	AssignedToID    *int       `json:"assignedToId"`
	Location        string     `json:"location" binding:"required"`
	Status          string     `json:"status" binding:"omitempty,oneof=assigned in-progress completed overdue on-hold"`
	Priority        string     `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	Deadline        *time.Time `json:"deadline"`
	StartedAt       *time.Time `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
	ProgressPercent int        `json:"progressPercent" binding:"min=0,max=100"`
	HoursWorked     int        `json:"hoursWorked" binding:"min=0"` // 分钟
	Notes           *string    `json:"notes"`
	Materials       []entity.Material `json:"materials" binding:"omitempty,dive"`
	PhotoURLs       []string          `json:"photoUrls"`

	ShiftTime            *string                   `json:"shiftTime"`
	MachineSlots         []entity.MachineSlot      `json:"machineSlots" binding:"omitempty,max=4"`
	MachineNumber        *string                   `json:"machineNumber"`
	OperationNumber      *string                   `json:"operationNumber"`
	TimeLossActivities   []entity.TimeLossActivity `json:"timeLossActivities"`
	DefectivePartNumbers []string                  `json:"defectivePartNumbers"`
	TotalWorkHours       int                       `json:"totalWorkHours" binding:"min=0"` // 分钟

	IsOvertime                   bool                      `json:"isOvertime"`
	OvertimeHours                int                       `json:"overtimeHours" binding:"min=0"` // 分钟
	OvertimeShiftTime            *string                   `json:"overtimeShiftTime"`
	OvertimeMachineSlots         []entity.MachineSlot      `json:"overtimeMachineSlots" binding:"omitempty,max=4"`
	OvertimeMachineNumber        *string                   `json:"overtimeMachineNumber"`
	OvertimeOperationNumber      *string                   `json:"overtimeOperationNumber"`
	OvertimeTimeLossActivities   []entity.TimeLossActivity `json:"overtimeTimeLossActivities"`
	OvertimeDefectivePartNumbers []string                  `json:"overtimeDefectivePartNumbers"`
}

// WorkCompletionRequest 完成表单提交
type WorkCompletionRequest struct {
	Status          string            `json:"status" binding:"required,oneof=started in-progress completed on-hold requires-review"`
	ProgressPercent int               `json:"progressPercent" binding:"min=0,max=100"`
	HoursWorked     float64           `json:"hoursWorked" binding:"min=0"` // 小时，入库前换算为分钟
	Notes           string            `json:"notes" binding:"required"`
	Materials       []entity.Material `json:"materials" binding:"omitempty,dive"`
	PhotoURLs       []string          `json:"photoUrls"`
}

// WorkCardDetail 工单 + 指派员工摘要
type WorkCardDetail struct {
	entity.WorkCard
	AssignedTo *EmployeeSummary `json:"assignedTo"`
}

// QRImage 工单二维码图片
type QRImage struct {
	QRCode string `json:"qrCode"` // PNG data URL
	QRData string `json:"qrData"` // 原始令牌
}

// List 工单列表，支持按状态或指派员工过滤
func (s *WorkCardService) List(ctx context.Context, status string, employeeID *int) []WorkCardDetail {
	var cards []entity.WorkCard
	switch {
	case status != "":
		cards = s.cardRepo.FindByStatus(ctx, status)
	case employeeID != nil:
		cards = s.cardRepo.FindByEmployee(ctx, *employeeID)
	default:
		cards = s.cardRepo.FindAll(ctx)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })

	items := make([]WorkCardDetail, 0, len(cards))
	for _, card := range cards {
		items = append(items, s.withAssignee(ctx, card))
	}
	return items
}

// Get 工单详情
func (s *WorkCardService) Get(ctx context.Context, id int) (*WorkCardDetail, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := s.withAssignee(ctx, *card)
	return &detail, nil
}

// GetByQRCode 扫码查找工单
func (s *WorkCardService) GetByQRCode(ctx context.Context, qrCode string) (*WorkCardDetail, error) {
	card, err := s.cardRepo.FindByQRCode(ctx, qrCode)
	if err != nil {
		return nil, err
	}
	detail := s.withAssignee(ctx, *card)
	return &detail, nil
}

// Create 创建工单
// assignedToId 不校验员工是否存在，维持宽松的引用语义。
func (s *WorkCardService) Create(ctx context.Context, req *CreateWorkCardRequest) *entity.WorkCard {
	card := &entity.WorkCard{
		CardID:          req.CardID,
		Title:           req.Title,
		Description:     req.Description,
		AssignedToID:    req.AssignedToID,
		Location:        req.Location,
		Status:          req.Status,
		Priority:        req.Priority,
		Deadline:        req.Deadline,
		StartedAt:       req.StartedAt,
		CompletedAt:     req.CompletedAt,
		ProgressPercent: req.ProgressPercent,
		HoursWorked:     req.HoursWorked,
		Notes:           req.Notes,
		Materials:       req.Materials,
		PhotoURLs:       req.PhotoURLs,

		ShiftTime:            req.ShiftTime,
		MachineSlots:         req.MachineSlots,
		MachineNumber:        req.MachineNumber,
		OperationNumber:      req.OperationNumber,
		TimeLossActivities:   req.TimeLossActivities,
		DefectivePartNumbers: req.DefectivePartNumbers,
		TotalWorkHours:       req.TotalWorkHours,

		IsOvertime:                   req.IsOvertime,
		OvertimeHours:                req.OvertimeHours,
		OvertimeShiftTime:            req.OvertimeShiftTime,
		OvertimeMachineSlots:         req.OvertimeMachineSlots,
		OvertimeMachineNumber:        req.OvertimeMachineNumber,
		OvertimeOperationNumber:      req.OvertimeOperationNumber,
		OvertimeTimeLossActivities:   req.OvertimeTimeLossActivities,
		OvertimeDefectivePartNumbers: req.OvertimeDefectivePartNumbers,
	}
	return s.cardRepo.Create(ctx, card)
}

// QRImage 渲染工单二维码为 256x256 PNG data URL
func (s *WorkCardService) QRImage(ctx context.Context, id int) (*QRImage, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(card.QRCode, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr image: %w", err)
	}

	return &QRImage{
		QRCode: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		QRData: card.QRCode,
	}, nil
}

// Complete 完成提交：追加作业记录并按状态机规则更新工单
// 工时按小时提交，累加进 hoursWorked 前换算为分钟。
func (s *WorkCardService) Complete(ctx context.Context, id int, req *WorkCompletionRequest) (*entity.WorkCard, error) {
	materials := req.Materials
	if materials == nil {
		materials = []entity.Material{}
	}
	photos := req.PhotoURLs
	if photos == nil {
		photos = []string{}
	}

	card, _, err := s.cardRepo.Complete(ctx, id, &repository.CompletionDelta{
		Status:          req.Status,
		ProgressPercent: req.ProgressPercent,
		MinutesWorked:   int(math.Round(req.HoursWorked * 60)),
		Notes:           req.Notes,
		Materials:       materials,
		PhotoURLs:       photos,
	})
	return card, err
}

// Delete 删除工单
func (s *WorkCardService) Delete(ctx context.Context, id int) bool {
	return s.cardRepo.Delete(ctx, id)
}

func (s *WorkCardService) withAssignee(ctx context.Context, card entity.WorkCard) WorkCardDetail {
	detail := WorkCardDetail{WorkCard: card}
	if card.AssignedToID != nil {
		if emp, err := s.employeeRepo.FindByID(ctx, *card.AssignedToID); err == nil {
			detail.AssignedTo = &EmployeeSummary{ID: emp.ID, Name: emp.Name, EmployeeID: emp.EmployeeID}
		}
	}
	return detail
}
