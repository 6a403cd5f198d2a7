package entity

import "time"

// WorkSession 作业记录，只追加不修改的审计日志
type WorkSession struct {
	ID             int        `json:"id"`
	WorkCardID     *int       `json:"workCardId"`
	EmployeeID     *int       `json:"employeeId"`
	Action         string     `json:"action"` // started, updated, completed, paused
	PreviousStatus *string    `json:"previousStatus"`
	NewStatus      *string    `json:"newStatus"`
	ProgressUpdate *int       `json:"progressUpdate"`
	HoursWorked    *int       `json:"hoursWorked"` // 分钟
	Notes          *string    `json:"notes"`
	Materials      []Material `json:"materials"`
	PhotoURLs      []string   `json:"photoUrls"`
	Timestamp      time.Time  `json:"timestamp"`
}
