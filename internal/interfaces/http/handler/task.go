package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	apptask "github.com/taskd/backend/internal/application/task"
	"github.com/taskd/backend/internal/domain/task"
	"github.com/taskd/backend/internal/interfaces/http/response"
)

// TaskHandler 任务处理器
type TaskHandler struct {
	service *apptask.Service
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(service *apptask.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

// TaskDTO 任务 DTO
type TaskDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"createdAt"`        // RFC3339Nano
	DoneAt    string `json:"doneAt,omitempty"` // RFC3339Nano，未完成时为空
}

// CreateTaskRequest 创建任务请求
// name 缺失视为缺少任务定义，空字符串是合法名称
type CreateTaskRequest struct {
	Name *string `json:"name"`
}

// UpdateTaskRequest 更新任务请求，未提供的字段保持不变
type UpdateTaskRequest struct {
	Name *string `json:"name"`
	Done *bool   `json:"done"`
}

// CountDTO 计数结果
type CountDTO struct {
	Option string `json:"option"`
	Count  int64  `json:"count"`
}

func toTaskDTO(item *task.Task) *TaskDTO {
	dto := &TaskDTO{
		ID:        item.ID,
		Name:      item.Name,
		Done:      item.Done,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if item.DoneAt != nil {
		dto.DoneAt = item.DoneAt.UTC().Format(time.RFC3339Nano)
	}
	return dto
}

// List 获取任务列表
// @Summary 获取任务列表
// @Tags 任务
// @Accept json
// @Produce json
// @Param option query string false "过滤模式 all|done|not_done"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	selector, err := task.ParseSelector(c.Query("option"))
	if err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, 100001, "参数错误", err.Error())
		return
	}

	items, err := h.service.List(c.Request.Context(), selector)
	if err != nil {
		writeTaskError(c, 800001, "获取任务列表失败", err)
		return
	}

	dtos := make([]*TaskDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toTaskDTO(item))
	}

	response.Success(c, dtos)
}

// Count 按过滤模式统计任务数
// @Summary 统计任务数
// @Tags 任务
// @Produce json
// @Param option query string false "过滤模式 all|done|not_done"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks/count [get]
func (h *TaskHandler) Count(c *gin.Context) {
	selector, err := task.ParseSelector(c.Query("option"))
	if err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, 100001, "参数错误", err.Error())
		return
	}

	n, err := h.service.Count(c.Request.Context(), selector)
	if err != nil {
		writeTaskError(c, 800002, "统计任务失败", err)
		return
	}

	response.Success(c, &CountDTO{Option: selector.String(), Count: n})
}

// Create 创建任务
// @Summary 创建任务
// @Tags 任务
// @Accept json
// @Produce json
// @Param body body CreateTaskRequest true "任务定义"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := bindJSON(c, &req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, 100001, "参数错误", err.Error())
		return
	}

	var def *task.Definition
	if req.Name != nil {
		def = &task.Definition{Name: *req.Name}
	}

	created, err := h.service.Create(c.Request.Context(), def)
	if err != nil {
		writeTaskError(c, 800003, "创建任务失败", err)
		return
	}

	response.Success(c, toTaskDTO(created))
}

// Update 更新任务
// @Summary 更新任务
// @Tags 任务
// @Accept json
// @Produce json
// @Param id path int true "任务ID"
// @Param body body UpdateTaskRequest true "更新内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := bindJSON(c, &req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, 100001, "参数错误", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, task.FromPtr(req.Name), task.FromPtr(req.Done))
	if err != nil {
		writeTaskError(c, 800004, "更新任务失败", err)
		return
	}

	response.Success(c, toTaskDTO(updated))
}

// Delete 删除任务
// @Summary 删除任务
// @Tags 任务
// @Produce json
// @Param id path int true "任务ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeTaskError(c, 800005, "删除任务失败", err)
		return
	}

	response.Success(c, nil)
}

func parseTaskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, 100001, "任务ID无效")
		return 0, false
	}
	return id, true
}

// bindJSON 解析 JSON 请求体，没有请求体时等同于 {}
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// writeTaskError 按错误类型选择 HTTP 状态码，detail 为原始错误描述
func writeTaskError(c *gin.Context, errCode int, message string, err error) {
	var connErr *task.ConnectionError
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, task.ErrMissingDefinition), errors.Is(err, task.ErrInvalidSelector):
		status = http.StatusBadRequest
	case errors.Is(err, task.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &connErr):
		status = http.StatusServiceUnavailable
	}
	response.ErrorWithDetail(c, status, errCode, message, err.Error())
}
