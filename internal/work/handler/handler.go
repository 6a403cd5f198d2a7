package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/bitfantasy/worktrack/internal/work/service"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 校验错误按 json 标签报字段名，而不是 Go 字段名
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Handlers 处理器集合
type Handlers struct {
	Employee  *EmployeeHandler
	WorkCard  *WorkCardHandler
	Session   *SessionHandler
	Dashboard *DashboardHandler
	Report    *ReportHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Employee:  NewEmployeeHandler(svc.Employee),
		WorkCard:  NewWorkCardHandler(svc.WorkCard),
		Session:   NewSessionHandler(svc.Session),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Report:    NewReportHandler(svc.Report),
	}
}

// FieldError 逐字段校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// 接口返回裸 JSON 实体，错误统一为 {"message": ...}，
// 校验失败额外带 errors 数组，与既有前端的线上格式保持兼容。

// NotFound 404 响应
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// InternalError 500 响应
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}

// bindJSON 解析并校验请求体；失败时写出 400 响应并列出全部违例
func bindJSON(c *gin.Context, obj interface{}, message string) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrs := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": message, "errors": fieldErrs})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"message": message})
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}

// paramID 解析路径上的整数 id
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
