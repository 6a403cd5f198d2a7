package handler

import (
	"testing"

	"github.com/bitfantasy/worktrack/internal/work/testutil"
)

// setupAPI 注册与生产环境一致的 API 路由
func setupAPI(t *testing.T) *testutil.TestEnv {
	t.Helper()
	env := testutil.NewEnv(t)
	h := NewHandlers(env.Services)

	api := env.Router.Group("/api")
	api.GET("/employees", h.Employee.List)
	api.POST("/employees", h.Employee.Create)
	api.GET("/employees/:id", h.Employee.Get)
	api.PUT("/employees/:id", h.Employee.Update)

	api.GET("/work-cards", h.WorkCard.List)
	api.POST("/work-cards", h.WorkCard.Create)
	api.GET("/work-cards/qr/:qrCode", h.WorkCard.GetByQRCode)
	api.GET("/work-cards/:id", h.WorkCard.Get)
	api.GET("/work-cards/:id/qr", h.WorkCard.QRImage)
	api.POST("/work-cards/:id/complete", h.WorkCard.Complete)

	api.GET("/work-sessions/recent", h.Session.Recent)
	api.GET("/dashboard/stats", h.Dashboard.Stats)

	api.GET("/reports", h.Report.List)
	api.POST("/reports", h.Report.Create)
	api.GET("/reports/:id/download", h.Report.Download)

	return env
}
