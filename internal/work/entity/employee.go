package entity

import "time"

// 员工状态
const (
	EmployeeStatusActive      = "active"
	EmployeeStatusOnBreak     = "on-break"
	EmployeeStatusOffSite     = "off-site"
	EmployeeStatusUnavailable = "unavailable"
)

// Employee 员工
type Employee struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	EmployeeID string    `json:"employeeId"` // 工号，业务唯一键
	Department string    `json:"department"`
	Location   *string   `json:"location"`
	Status     string    `json:"status"` // active, on-break, off-site, unavailable
	LastSeen   time.Time `json:"lastSeen"`
	CreatedAt  time.Time `json:"createdAt"`
}
