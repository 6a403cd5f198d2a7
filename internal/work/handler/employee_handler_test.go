package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bitfantasy/worktrack/internal/work/testutil"
)

func TestCreateEmployeeDefaults(t *testing.T) {
	env := setupAPI(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/employees", map[string]interface{}{
		"employeeId": "EMP-010",
		"name":       "Test Worker",
		"department": "Safety",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := testutil.ParseMap(w)
	if created["status"] != "active" {
		t.Errorf("status = %v, want default active", created["status"])
	}
	if created["lastSeen"] == nil {
		t.Error("lastSeen not stamped at creation")
	}

	id := int(created["id"].(float64))
	w2 := testutil.DoRequest(env.Router, "GET", fmt.Sprintf("/api/employees/%d", id), nil)
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w2.Code, w2.Body.String())
	}
	fetched := testutil.ParseMap(w2)
	if fetched["employeeId"] != "EMP-010" {
		t.Errorf("employeeId = %v, want EMP-010", fetched["employeeId"])
	}
	if fetched["status"] != "active" {
		t.Errorf("status = %v, want active", fetched["status"])
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	env := setupAPI(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/employees", map[string]interface{}{
		"location": "Gate 1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseMap(w)
	if resp["message"] != "Invalid employee data" {
		t.Errorf("message = %v", resp["message"])
	}
	fieldErrs, ok := resp["errors"].([]interface{})
	if !ok {
		t.Fatalf("Expected errors array, got %v", resp["errors"])
	}
	// 一次性列出全部违例：name、employeeId、department 均缺失
	if len(fieldErrs) != 3 {
		t.Errorf("Expected 3 field errors, got %d: %v", len(fieldErrs), fieldErrs)
	}
}

func TestUpdateEmployee(t *testing.T) {
	env := setupAPI(t)

	// 种子员工 1 = Mike Rodriguez
	w := testutil.DoRequest(env.Router, "PUT", "/api/employees/1", map[string]interface{}{
		"status": "on-break",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := testutil.ParseMap(w)
	if updated["status"] != "on-break" {
		t.Errorf("status = %v, want on-break", updated["status"])
	}
	if updated["name"] != "Mike Rodriguez" {
		t.Errorf("name = %v, untouched field changed", updated["name"])
	}

	w2 := testutil.DoRequest(env.Router, "PUT", "/api/employees/99999", map[string]interface{}{
		"status": "active",
	})
	if w2.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w2.Code)
	}
}

func TestListEmployeesSeeded(t *testing.T) {
	env := setupAPI(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/employees", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	items := testutil.ParseList(w)
	if len(items) != 3 {
		t.Fatalf("Expected 3 seeded employees, got %d", len(items))
	}
	first := items[0].(map[string]interface{})
	if first["employeeId"] != "EMP-001" {
		t.Errorf("First employee = %v, want EMP-001", first["employeeId"])
	}
}
