package entity

import "time"

// 工单状态
// "overdue" 仅作为看板统计里由截止时间推导的条件，任何写路径都不会把它写入 Status。
const (
	WorkCardStatusAssigned   = "assigned"
	WorkCardStatusInProgress = "in-progress"
	WorkCardStatusCompleted  = "completed"
	WorkCardStatusOverdue    = "overdue"
	WorkCardStatusOnHold     = "on-hold"
)

// 工单优先级
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Material 物料消耗
type Material struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"min=0"`
}

// MachineSlot 机台工序槽位
type MachineSlot struct {
	MachineNumber   string `json:"machineNumber"`
	OperationNumber string `json:"operationNumber"`
	TimeWorked      int    `json:"timeWorked"` // 分钟
}

// TimeLossActivity 工时损失记录
type TimeLossActivity struct {
	Activity  string `json:"activity"`
	Duration  int    `json:"duration"` // 分钟
	IssueType string `json:"issueType"`
}

// WorkCard 工单卡，扫码作业的基本单元
type WorkCard struct {
	ID              int        `json:"id"`
	CardID          string     `json:"cardId"` // 业务唯一键
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	AssignedToID    *int       `json:"assignedToId"`
	Location        string     `json:"location"`
	Status          string     `json:"status"`   // assigned, in-progress, completed, overdue, on-hold
	Priority        string     `json:"priority"` // low, normal, high, urgent
	Deadline        *time.Time `json:"deadline"`
	StartedAt       *time.Time `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
	ProgressPercent int        `json:"progressPercent"`
	HoursWorked     int        `json:"hoursWorked"` // 分钟
	Notes           *string    `json:"notes"`
	Materials       []Material `json:"materials"`
	PhotoURLs       []string   `json:"photoUrls"`
	QRCode          string     `json:"qrCode"` // 创建时生成，不可变

	// 制造相关字段
	ShiftTime            *string            `json:"shiftTime"` // first-shift, general-shift, second-shift, night-shift
	MachineSlots         []MachineSlot      `json:"machineSlots"`
	MachineNumber        *string            `json:"machineNumber"`
	OperationNumber      *string            `json:"operationNumber"`
	TimeLossActivities   []TimeLossActivity `json:"timeLossActivities"`
	DefectivePartNumbers []string           `json:"defectivePartNumbers"`
	TotalWorkHours       int                `json:"totalWorkHours"` // 分钟

	// 加班字段，结构上与制造字段互为镜像
	IsOvertime                   bool               `json:"isOvertime"`
	OvertimeHours                int                `json:"overtimeHours"` // 分钟
	OvertimeShiftTime            *string            `json:"overtimeShiftTime"` // extended-day, extended-evening, overnight, weekend
	OvertimeMachineSlots         []MachineSlot      `json:"overtimeMachineSlots"`
	OvertimeMachineNumber        *string            `json:"overtimeMachineNumber"`
	OvertimeOperationNumber      *string            `json:"overtimeOperationNumber"`
	OvertimeTimeLossActivities   []TimeLossActivity `json:"overtimeTimeLossActivities"`
	OvertimeDefectivePartNumbers []string           `json:"overtimeDefectivePartNumbers"`

	CreatedAt time.Time `json:"createdAt"`
}
