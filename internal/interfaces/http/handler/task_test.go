package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apptask "github.com/taskd/backend/internal/application/task"
	"github.com/taskd/backend/internal/domain/task"
	"github.com/taskd/backend/internal/infrastructure/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTaskRouter 创建测试路由
func setupTaskRouter(gateway task.Gateway) *gin.Engine {
	router := gin.New()
	handler := NewTaskHandler(apptask.NewService(gateway))

	tasks := router.Group("/api/v1/tasks")
	{
		tasks.POST("", handler.Create)
		tasks.GET("", handler.List)
		tasks.GET("/count", handler.Count)
		tasks.PATCH("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}

	return router
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Detail  string          `json:"detail"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

// failingGateway 所有操作都返回同一个错误
type failingGateway struct {
	err error
}

func (g failingGateway) Insert(context.Context, task.NewTask) (*task.Task, error) { return nil, g.err }
func (g failingGateway) Update(context.Context, int64, task.Changes) (*task.Task, error) {
	return nil, g.err
}
func (g failingGateway) Delete(context.Context, int64) (int64, error)             { return 0, g.err }
func (g failingGateway) Find(context.Context, task.Selector) ([]*task.Task, error) { return nil, g.err }
func (g failingGateway) Count(context.Context, task.Selector) (int64, error)       { return 0, g.err }

func TestTaskHandler_CreateAndList(t *testing.T) {
	router := setupTaskRouter(storage.NewMemoryGateway())

	code, resp := doRequest(t, router, http.MethodPost, "/api/v1/tasks", `{"name":"create rest example"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, resp.Code)

	var created TaskDTO
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "create rest example", created.Name)
	assert.False(t, created.Done)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Empty(t, created.DoneAt)

	code, resp = doRequest(t, router, http.MethodGet, "/api/v1/tasks", "")
	require.Equal(t, http.StatusOK, code)
	var listed []TaskDTO
	require.NoError(t, json.Unmarshal(resp.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestTaskHandler_CreateEmptyNameAndMissingName(t *testing.T) {
	router := setupTaskRouter(storage.NewMemoryGateway())

	code, _ := doRequest(t, router, http.MethodPost, "/api/v1/tasks", `{"name":""}`)
	assert.Equal(t, http.StatusOK, code)

	code, resp := doRequest(t, router, http.MethodPost, "/api/v1/tasks", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "missing task definition", resp.Detail)

	code, _ = doRequest(t, router, http.MethodPost, "/api/v1/tasks", `{not json`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp = doRequest(t, router, http.MethodPost, "/api/v1/tasks", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "missing task definition", resp.Detail, "空请求体与 {} 一致")
}

func TestTaskHandler_UpdateDoneUndone(t *testing.T) {
	router := setupTaskRouter(storage.NewMemoryGateway())

	_, resp := doRequest(t, router, http.MethodPost, "/api/v1/tasks", `{"name":"X"}`)
	var created TaskDTO
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	path := "/api/v1/tasks/" + strconv.FormatInt(created.ID, 10)

	code, resp := doRequest(t, router, http.MethodPatch, path, `{"done":true}`)
	require.Equal(t, http.StatusOK, code)
	var done TaskDTO
	require.NoError(t, json.Unmarshal(resp.Data, &done))
	assert.True(t, done.Done)
	assert.NotEmpty(t, done.DoneAt)
	assert.Equal(t, "X", done.Name)

	code, resp = doRequest(t, router, http.MethodPatch, path, `{"done":false}`)
	require.Equal(t, http.StatusOK, code)
	var undone TaskDTO
	require.NoError(t, json.Unmarshal(resp.Data, &undone))
	assert.False(t, undone.Done)
	assert.Empty(t, undone.DoneAt)
}

func TestTaskHandler_UpdateWithoutBody(t *testing.T) {
	router := setupTaskRouter(storage.NewMemoryGateway())

	_, resp := doRequest(t, router, http.MethodPost, "/api/v1/tasks", `{"name":"untouched"}`)
	var created TaskDTO
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	path := "/api/v1/tasks/" + strconv.FormatInt(created.ID, 10)

	for _, body := range []string{"", `{}`} {
		code, resp := doRequest(t, router, http.MethodPatch, path, body)
		require.Equal(t, http.StatusOK, code, "body %q", body)

		var same TaskDTO
		require.NoError(t, json.Unmarshal(resp.Data, &same))
		assert.Equal(t, created, same)
	}

	code, resp := doRequest(t, router, http.MethodPatch, "/api/v1/tasks/99", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "update task failed. task 99: record not found", resp.Detail)
}

func TestTaskHandler_UpdateErrors(t *testing.T) {
	router := setupTaskRouter(storage.NewMemoryGateway())

	code, resp := doRequest(t, router, http.MethodPatch, "/api/v1/tasks/77", `{"name":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, 800004, resp.Code)
	assert.Equal(t, "update task failed. task 77: record not found", resp.Detail)

	code, _ = doRequest(t, router, http.MethodPatch, "/api/v1/tasks/abc", `{"name":"ghost"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestTaskHandler_DeleteIdempotent(t *testing.T) {
	router := setupTaskRouter(storage.NewMemoryGateway())

	_, resp := doRequest(t, router, http.MethodPost, "/api/v1/tasks", `{"name":"this task should be deleted"}`)
	var created TaskDTO
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	path := "/api/v1/tasks/" + strconv.FormatInt(created.ID, 10)

	code, _ := doRequest(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, code)

	_, resp = doRequest(t, router, http.MethodGet, "/api/v1/tasks/count", "")
	var count CountDTO
	require.NoError(t, json.Unmarshal(resp.Data, &count))
	assert.Equal(t, int64(0), count.Count)
}

func TestTaskHandler_ListByOption(t *testing.T) {
	router := setupTaskRouter(storage.NewMemoryGateway())

	var ids []int64
	for _, name := range []string{"Task1", "Task2", "Task3", "Task4", "Task5"} {
		_, resp := doRequest(t, router, http.MethodPost, "/api/v1/tasks", `{"name":"`+name+`"}`)
		var created TaskDTO
		require.NoError(t, json.Unmarshal(resp.Data, &created))
		ids = append(ids, created.ID)
	}
	for _, idx := range []int{0, 3, 4} {
		code, _ := doRequest(t, router, http.MethodPatch, "/api/v1/tasks/"+strconv.FormatInt(ids[idx], 10), `{"done":true}`)
		require.Equal(t, http.StatusOK, code)
	}

	tests := []struct {
		option string
		want   int
	}{
		{"", 5},
		{"all", 5},
		{"done", 3},
		{"not_done", 2},
	}
	for _, tt := range tests {
		t.Run("option="+tt.option, func(t *testing.T) {
			code, resp := doRequest(t, router, http.MethodGet, "/api/v1/tasks?option="+tt.option, "")
			require.Equal(t, http.StatusOK, code)
			var listed []TaskDTO
			require.NoError(t, json.Unmarshal(resp.Data, &listed))
			assert.Len(t, listed, tt.want)

			_, resp = doRequest(t, router, http.MethodGet, "/api/v1/tasks/count?option="+tt.option, "")
			var count CountDTO
			require.NoError(t, json.Unmarshal(resp.Data, &count))
			assert.Equal(t, int64(tt.want), count.Count)
		})
	}

	code, _ := doRequest(t, router, http.MethodGet, "/api/v1/tasks?option=sometimes", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestTaskHandler_ErrorStatusMapping(t *testing.T) {
	connRouter := setupTaskRouter(failingGateway{err: &task.ConnectionError{Reason: "DATABASE_URL must be set"}})
	code, resp := doRequest(t, connRouter, http.MethodGet, "/api/v1/tasks", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "DATABASE_URL must be set", resp.Detail)
	assert.Empty(t, resp.Data)

	storeRouter := setupTaskRouter(failingGateway{err: errors.New("disk full")})
	code, resp = doRequest(t, storeRouter, http.MethodDelete, "/api/v1/tasks/1", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Task deletion failed. disk full", resp.Detail)
}
