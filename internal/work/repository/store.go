package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/bitfantasy/worktrack/internal/work/entity"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// Store 进程内存储
// 四个集合共享同一把互斥锁和同一个自增 id 计数器；所有读写都经由仓库方法串行化。
type Store struct {
	mu        sync.Mutex
	employees map[int]*entity.Employee
	workCards map[int]*entity.WorkCard
	sessions  map[int]*entity.WorkSession
	reports   map[int]*entity.Report
	nextID    int
}

// NewStore 创建并填充初始示例数据
func NewStore() *Store {
	s := &Store{
		employees: make(map[int]*entity.Employee),
		workCards: make(map[int]*entity.WorkCard),
		sessions:  make(map[int]*entity.WorkSession),
		reports:   make(map[int]*entity.Report),
		nextID:    1,
	}
	s.seed()
	return s
}

// newID 分配下一个进程级唯一 id，调用方必须持有 s.mu
func (s *Store) newID() int {
	id := s.nextID
	s.nextID++
	return id
}

// DashboardStats 看板聚合统计
func (s *Store) DashboardStats(now time.Time) entity.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats entity.DashboardStats

	for _, emp := range s.employees {
		if emp.Status == entity.EmployeeStatusActive {
			stats.ActiveWorkers++
		}
	}

	// 当天零点（本地时间）
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, card := range s.workCards {
		if card.Status == entity.WorkCardStatusCompleted &&
			card.CompletedAt != nil && !card.CompletedAt.Before(today) {
			stats.CompletedToday++
		}
		if card.Status == entity.WorkCardStatusInProgress {
			stats.InProgress++
		}
		// 逾期是推导条件：有截止时间、已过期且未完成，与 Status 字段取值无关
		if card.Deadline != nil && card.Deadline.Before(now) &&
			card.Status != entity.WorkCardStatusCompleted {
			stats.Overdue++
		}
	}

	return stats
}

func (s *Store) seed() {
	now := time.Now()

	emp1 := &entity.Employee{
		ID:         s.newID(),
		Name:       "Mike Rodriguez",
		EmployeeID: "EMP-001",
		Department: "Construction",
		Location:   strp("Site Block A"),
		Status:     entity.EmployeeStatusActive,
		LastSeen:   now.Add(-2 * time.Minute),
		CreatedAt:  now,
	}
	s.employees[emp1.ID] = emp1

	emp2 := &entity.Employee{
		ID:         s.newID(),
		Name:       "Sarah Chen",
		EmployeeID: "EMP-002",
		Department: "Electrical",
		Location:   strp("Building B - Floor 2"),
		Status:     entity.EmployeeStatusActive,
		LastSeen:   now.Add(-15 * time.Minute),
		CreatedAt:  now,
	}
	s.employees[emp2.ID] = emp2

	emp3 := &entity.Employee{
		ID:         s.newID(),
		Name:       "James Wilson",
		EmployeeID: "EMP-003",
		Department: "Plumbing",
		Location:   strp("Building C - All Floors"),
		Status:     entity.EmployeeStatusActive,
		LastSeen:   now.Add(-5 * time.Minute),
		CreatedAt:  now,
	}
	s.employees[emp3.ID] = emp3

	card1 := &entity.WorkCard{
		ID:              s.newID(),
		CardID:          "WC-001",
		Title:           "Foundation Pour - Section A",
		Description:     "Complete concrete foundation pour for building section A with proper curing procedures",
		AssignedToID:    intp(emp1.ID),
		Location:        "Site Block A",
		Status:          entity.WorkCardStatusCompleted,
		Priority:        entity.PriorityHigh,
		Deadline:        timep(now.Add(24 * time.Hour)),
		StartedAt:       timep(now.Add(-8 * time.Hour)),
		CompletedAt:     timep(now.Add(-30 * time.Minute)),
		ProgressPercent: 100,
		HoursWorked:     480,
		Notes:           strp("Foundation pour completed successfully. Concrete properly mixed and cured."),
		Materials: []entity.Material{
			{Name: "Concrete", Quantity: 50},
			{Name: "Rebar", Quantity: 100},
		},
		PhotoURLs:       []string{},
		QRCode:          "QR-WC-001-ABCD1234",
		ShiftTime:       strp("day"),
		MachineSlots:    []entity.MachineSlot{},
		MachineNumber:   strp("PUMP-01"),
		OperationNumber: strp("POUR-001"),
		TimeLossActivities: []entity.TimeLossActivity{
			{Activity: "Equipment setup", Duration: 15, IssueType: "setup"},
			{Activity: "Material delivery delay", Duration: 30, IssueType: "material-shortage"},
		},
		DefectivePartNumbers:         []string{},
		TotalWorkHours:               480,
		OvertimeMachineSlots:         []entity.MachineSlot{},
		OvertimeTimeLossActivities:   []entity.TimeLossActivity{},
		OvertimeDefectivePartNumbers: []string{},
		CreatedAt:                    now,
	}
	s.workCards[card1.ID] = card1

	card2 := &entity.WorkCard{
		ID:              s.newID(),
		CardID:          "WC-002",
		Title:           "Electrical Installation - Floor 2",
		Description:     "Install electrical wiring and outlets for second floor residential units",
		AssignedToID:    intp(emp2.ID),
		Location:        "Building B - Floor 2",
		Status:          entity.WorkCardStatusInProgress,
		Priority:        entity.PriorityNormal,
		Deadline:        timep(now.Add(48 * time.Hour)),
		StartedAt:       timep(now.Add(-6 * time.Hour)),
		ProgressPercent: 67,
		HoursWorked:     360,
		Notes:           strp("Wiring installation in progress. 2 of 3 units completed."),
		Materials: []entity.Material{
			{Name: "Electrical Wire", Quantity: 500},
			{Name: "Outlets", Quantity: 24},
		},
		PhotoURLs:       []string{},
		QRCode:          "QR-WC-002-EFGH5678",
		ShiftTime:       strp("evening"),
		MachineSlots:    []entity.MachineSlot{},
		MachineNumber:   strp("DRILL-05"),
		OperationNumber: strp("WIRE-002"),
		TimeLossActivities: []entity.TimeLossActivity{
			{Activity: "Circuit breaker issue", Duration: 45, IssueType: "maintenance"},
		},
		DefectivePartNumbers:    []string{"OUTLET-4521"},
		TotalWorkHours:          360,
		IsOvertime:              true,
		OvertimeHours:           120,
		OvertimeShiftTime:       strp("extended-evening"),
		OvertimeMachineSlots:    []entity.MachineSlot{},
		OvertimeMachineNumber:   strp("DRILL-05"),
		OvertimeOperationNumber: strp("WIRE-OT-002"),
		OvertimeTimeLossActivities: []entity.TimeLossActivity{
			{Activity: "Overtime setup delay", Duration: 20, IssueType: "setup"},
		},
		OvertimeDefectivePartNumbers: []string{},
		CreatedAt:                    now,
	}
	s.workCards[card2.ID] = card2

	card3 := &entity.WorkCard{
		ID:                           s.newID(),
		CardID:                       "WC-003",
		Title:                        "Plumbing Rough-in - Building C",
		Description:                  "Install rough plumbing lines for bathroom and kitchen areas",
		AssignedToID:                 intp(emp3.ID),
		Location:                     "Building C - All Floors",
		Status:                       entity.WorkCardStatusAssigned,
		Priority:                     entity.PriorityNormal,
		Deadline:                     timep(now.Add(36 * time.Hour)),
		Materials:                    []entity.Material{},
		PhotoURLs:                    []string{},
		QRCode:                       "QR-WC-003-IJKL9012",
		MachineSlots:                 []entity.MachineSlot{},
		TimeLossActivities:           []entity.TimeLossActivity{},
		DefectivePartNumbers:         []string{},
		OvertimeMachineSlots:         []entity.MachineSlot{},
		OvertimeTimeLossActivities:   []entity.TimeLossActivity{},
		OvertimeDefectivePartNumbers: []string{},
		CreatedAt:                    now,
	}
	s.workCards[card3.ID] = card3
}

func strp(s string) *string       { return &s }
func intp(i int) *int             { return &i }
func timep(t time.Time) *time.Time { return &t }
