package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bitfantasy/worktrack/internal/work/testutil"
)

func TestRecentSessions(t *testing.T) {
	env := setupAPI(t)

	// 对种子工单 WC-003（指派给员工 3）连续提交，生成作业记录
	notes := []string{"kickoff", "halfway", "wrap-up"}
	for i, n := range notes {
		w := testutil.DoRequest(env.Router, "POST", "/api/work-cards/6/complete", map[string]interface{}{
			"status":          "in-progress",
			"progressPercent": (i + 1) * 30,
			"hoursWorked":     1,
			"notes":           n,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("Completion %d failed: %d %s", i, w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(env.Router, "GET", "/api/work-sessions/recent?limit=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	items := testutil.ParseList(w)
	if len(items) != 2 {
		t.Fatalf("Expected 2 sessions with limit=2, got %d", len(items))
	}

	first := items[0].(map[string]interface{})
	if first["notes"] != "wrap-up" {
		t.Errorf("Most recent session notes = %v, want wrap-up", first["notes"])
	}
	workCard, ok := first["workCard"].(map[string]interface{})
	if !ok {
		t.Fatalf("workCard summary missing: %v", first["workCard"])
	}
	if workCard["cardId"] != "WC-003" {
		t.Errorf("workCard.cardId = %v, want WC-003", workCard["cardId"])
	}
	employee, ok := first["employee"].(map[string]interface{})
	if !ok {
		t.Fatalf("employee summary missing: %v", first["employee"])
	}
	if employee["employeeId"] != "EMP-003" {
		t.Errorf("employee.employeeId = %v, want EMP-003", employee["employeeId"])
	}
}

func TestRecentSessionsDefaultLimit(t *testing.T) {
	env := setupAPI(t)

	for i := 0; i < 12; i++ {
		w := testutil.DoRequest(env.Router, "POST", "/api/work-cards/6/complete", map[string]interface{}{
			"status":          "in-progress",
			"progressPercent": 50,
			"hoursWorked":     0.5,
			"notes":           fmt.Sprintf("update %d", i),
		})
		if w.Code != http.StatusOK {
			t.Fatalf("Completion %d failed: %d", i, w.Code)
		}
	}

	w := testutil.DoRequest(env.Router, "GET", "/api/work-sessions/recent", nil)
	items := testutil.ParseList(w)
	if len(items) != 10 {
		t.Fatalf("Expected default limit of 10, got %d", len(items))
	}
}
