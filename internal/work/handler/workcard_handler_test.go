package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/bitfantasy/worktrack/internal/work/testutil"
)

func createTestCard(t *testing.T, env *testutil.TestEnv) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(env.Router, "POST", "/api/work-cards", map[string]interface{}{
		"cardId":      "WC-100",
		"title":       "Conveyor Belt Alignment",
		"description": "Align and tension the line 2 conveyor belt",
		"location":    "Line 2",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseMap(w)
}

func TestCreateWorkCardGeneratesQRCode(t *testing.T) {
	env := setupAPI(t)
	card := createTestCard(t, env)

	qr, _ := card["qrCode"].(string)
	if !regexp.MustCompile(`^QR-WC-100-[A-Z0-9]{8}$`).MatchString(qr) {
		t.Fatalf("qrCode = %q, want QR-WC-100-<8 uppercase alnum>", qr)
	}
	if card["status"] != "assigned" {
		t.Errorf("status = %v, want default assigned", card["status"])
	}
	if card["priority"] != "normal" {
		t.Errorf("priority = %v, want default normal", card["priority"])
	}

	// 扫码查找回到同一张工单
	w := testutil.DoRequest(env.Router, "GET", "/api/work-cards/qr/"+qr, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	found := testutil.ParseMap(w)
	if found["id"] != card["id"] {
		t.Errorf("QR lookup returned card %v, want %v", found["id"], card["id"])
	}
	if _, hasKey := found["assignedTo"]; !hasKey {
		t.Error("QR lookup response missing assignedTo summary")
	}

	w2 := testutil.DoRequest(env.Router, "GET", "/api/work-cards/qr/QR-WC-100-XXXXXXXX", nil)
	if w2.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown QR, got %d", w2.Code)
	}
}

func TestWorkCardListFilters(t *testing.T) {
	env := setupAPI(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/work-cards?status=in-progress", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	items := testutil.ParseList(w)
	if len(items) != 1 {
		t.Fatalf("Expected 1 seeded in-progress card, got %d", len(items))
	}
	card := items[0].(map[string]interface{})
	if card["cardId"] != "WC-002" {
		t.Errorf("cardId = %v, want WC-002", card["cardId"])
	}
	assignedTo, ok := card["assignedTo"].(map[string]interface{})
	if !ok {
		t.Fatalf("assignedTo = %v, want employee summary", card["assignedTo"])
	}
	if assignedTo["employeeId"] != "EMP-002" {
		t.Errorf("assignedTo.employeeId = %v, want EMP-002", assignedTo["employeeId"])
	}

	w2 := testutil.DoRequest(env.Router, "GET", "/api/work-cards?employeeId=1", nil)
	items2 := testutil.ParseList(w2)
	if len(items2) != 1 {
		t.Fatalf("Expected 1 card for employee 1, got %d", len(items2))
	}
	if items2[0].(map[string]interface{})["cardId"] != "WC-001" {
		t.Errorf("cardId = %v, want WC-001", items2[0].(map[string]interface{})["cardId"])
	}
}

func TestCompletionAccumulatesHours(t *testing.T) {
	env := setupAPI(t)
	card := createTestCard(t, env)
	path := fmt.Sprintf("/api/work-cards/%v/complete", card["id"])

	w := testutil.DoRequest(env.Router, "POST", path, map[string]interface{}{
		"status":          "started",
		"progressPercent": 20,
		"hoursWorked":     2.0,
		"notes":           "first pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	first := testutil.ParseMap(w)
	if first["hoursWorked"].(float64) != 120 {
		t.Errorf("hoursWorked = %v minutes, want 120", first["hoursWorked"])
	}
	if first["startedAt"] == nil {
		t.Fatal("startedAt not set on first started transition")
	}
	startedAt := first["startedAt"]

	w2 := testutil.DoRequest(env.Router, "POST", path, map[string]interface{}{
		"status":          "completed",
		"progressPercent": 90,
		"hoursWorked":     3.5,
		"notes":           "finished",
	})
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w2.Code, w2.Body.String())
	}
	second := testutil.ParseMap(w2)
	if second["hoursWorked"].(float64) != 330 {
		t.Errorf("hoursWorked = %v minutes, want 330 (2.0h + 3.5h)", second["hoursWorked"])
	}
	if second["progressPercent"].(float64) != 100 {
		t.Errorf("progressPercent = %v, want forced 100", second["progressPercent"])
	}
	if second["completedAt"] == nil {
		t.Error("completedAt not set on completed transition")
	}
	if second["startedAt"] != startedAt {
		t.Error("startedAt changed by a later completion")
	}
}

func TestCompletionValidation(t *testing.T) {
	env := setupAPI(t)
	card := createTestCard(t, env)
	path := fmt.Sprintf("/api/work-cards/%v/complete", card["id"])

	w := testutil.DoRequest(env.Router, "POST", path, map[string]interface{}{
		"status":          "bogus",
		"progressPercent": 150,
		"hoursWorked":     -1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseMap(w)
	if resp["message"] != "Invalid completion data" {
		t.Errorf("message = %v", resp["message"])
	}
	fieldErrs, ok := resp["errors"].([]interface{})
	if !ok {
		t.Fatalf("Expected errors array, got %v", resp["errors"])
	}
	// status 枚举、progress 上界、hoursWorked 下界、notes 缺失，一次全部报出
	if len(fieldErrs) != 4 {
		t.Errorf("Expected 4 field errors, got %d: %v", len(fieldErrs), fieldErrs)
	}

	// 校验失败不得有任何写入
	w2 := testutil.DoRequest(env.Router, "GET", fmt.Sprintf("/api/work-cards/%v", card["id"]), nil)
	after := testutil.ParseMap(w2)
	if after["status"] != "assigned" {
		t.Errorf("status = %v after rejected submission, want assigned", after["status"])
	}
	if after["hoursWorked"].(float64) != 0 {
		t.Errorf("hoursWorked = %v after rejected submission, want 0", after["hoursWorked"])
	}
}

func TestCompleteMissingCard(t *testing.T) {
	env := setupAPI(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/work-cards/99999/complete", map[string]interface{}{
		"status":          "started",
		"progressPercent": 10,
		"hoursWorked":     1,
		"notes":           "n",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestQRImageEndpoint(t *testing.T) {
	env := setupAPI(t)
	card := createTestCard(t, env)

	w := testutil.DoRequest(env.Router, "GET", fmt.Sprintf("/api/work-cards/%v/qr", card["id"]), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseMap(w)
	image, _ := resp["qrCode"].(string)
	if !strings.HasPrefix(image, "data:image/png;base64,") {
		t.Errorf("qrCode is not a PNG data URL: %.40s", image)
	}
	if resp["qrData"] != card["qrCode"] {
		t.Errorf("qrData = %v, want %v", resp["qrData"], card["qrCode"])
	}

	w2 := testutil.DoRequest(env.Router, "GET", "/api/work-cards/99999/qr", nil)
	if w2.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w2.Code)
	}
}
