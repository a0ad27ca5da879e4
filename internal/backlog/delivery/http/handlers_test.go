package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/backlog"
	backlogHTTP "smart-day-planner/internal/backlog/delivery/http"
	"smart-day-planner/internal/middleware"
	"smart-day-planner/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	createOutput backlog.CreateOutput
	createErr    error
	listOutput   backlog.ListOutput
	listErr      error
	detailOutput backlog.DetailOutput
	detailErr    error
	updateOutput backlog.UpdateOutput
	updateErr    error
	archiveErr   error

	lastCreate *backlog.CreateInput
	lastList   *backlog.ListInput
	lastUpdate *backlog.UpdateInput
	lastID     string
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input backlog.CreateInput) (backlog.CreateOutput, error) {
	m.lastCreate = &input
	return m.createOutput, m.createErr
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input backlog.ListInput) (backlog.ListOutput, error) {
	m.lastList = &input
	return m.listOutput, m.listErr
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (backlog.DetailOutput, error) {
	m.lastID = id
	return m.detailOutput, m.detailErr
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input backlog.UpdateInput) (backlog.UpdateOutput, error) {
	m.lastUpdate = &input
	return m.updateOutput, m.updateErr
}

func (m *mockUseCase) Archive(ctx context.Context, sc model.Scope, id string) error {
	m.lastID = id
	return m.archiveErr
}

func newTestRouter(uc backlog.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	logger := &mockLogger{}
	h := backlogHTTP.New(logger, uc)
	mw := middleware.New(logger, 10000)
	backlogHTTP.RegisterRoutes(engine.Group("/api/v1/backlog"), h, mw)

	return engine
}

func perform(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response envelope %q: %v", w.Body.String(), err)
	}
	return env
}

func TestCreate(t *testing.T) {
	storedTask := model.Task{
		ID:              "task-1",
		Title:           "Write report",
		DurationMinutes: 45,
		Priority:        1,
		Status:          model.TaskStatusPending,
	}

	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{createOutput: backlog.CreateOutput{Task: storedTask}}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodPost, "/api/v1/backlog/tasks",
			`{"title": "Write report", "duration_minutes": 45, "priority": 1, "time_preference": "at 2pm"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		env := decodeEnvelope(t, w)
		if env.ErrorCode != 0 {
			t.Errorf("expected error_code 0, got %d", env.ErrorCode)
		}

		var data struct {
			Task struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"task"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("unexpected data shape: %v", err)
		}
		if data.Task.ID != "task-1" || data.Task.Title != "Write report" {
			t.Errorf("unexpected task payload: %+v", data.Task)
		}

		if uc.lastCreate == nil || uc.lastCreate.TimePreference != "at 2pm" {
			t.Errorf("expected time preference forwarded, got %+v", uc.lastCreate)
		}
		if uc.lastCreate.Priority != 1 {
			t.Errorf("expected priority 1, got %d", uc.lastCreate.Priority)
		}
	})

	t.Run("Priority Defaults To 3", func(t *testing.T) {
		uc := &mockUseCase{createOutput: backlog.CreateOutput{Task: storedTask}}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodPost, "/api/v1/backlog/tasks",
			`{"title": "Read book", "duration_minutes": 30}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastCreate == nil || uc.lastCreate.Priority != 3 {
			t.Errorf("expected default priority 3, got %+v", uc.lastCreate)
		}
	})

	t.Run("Missing Title Rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodPost, "/api/v1/backlog/tasks", `{"duration_minutes": 30}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if uc.lastCreate != nil {
			t.Errorf("usecase must not be called on binding failure")
		}
	})

	t.Run("Duration Above Cap Rejected", func(t *testing.T) {
		engine := newTestRouter(&mockUseCase{})

		w := perform(engine, http.MethodPost, "/api/v1/backlog/tasks",
			`{"title": "Marathon", "duration_minutes": 900}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Malformed JSON Rejected", func(t *testing.T) {
		engine := newTestRouter(&mockUseCase{})

		w := perform(engine, http.MethodPost, "/api/v1/backlog/tasks", `{"title": `)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Domain Validation Error", func(t *testing.T) {
		uc := &mockUseCase{createErr: backlog.ErrInvalidDuration}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodPost, "/api/v1/backlog/tasks",
			`{"title": "Task", "duration_minutes": 30}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if env.ErrorCode == 0 {
			t.Errorf("expected non-zero error_code")
		}
	})

	t.Run("Unexpected Error Hides Details", func(t *testing.T) {
		uc := &mockUseCase{createErr: errors.New("sqlite exploded")}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodPost, "/api/v1/backlog/tasks",
			`{"title": "Task", "duration_minutes": 30}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "sqlite exploded") {
			t.Errorf("internal error details must not leak: %s", w.Body.String())
		}
	})
}

func TestList(t *testing.T) {
	t.Run("Defaults Applied", func(t *testing.T) {
		uc := &mockUseCase{listOutput: backlog.ListOutput{
			Tasks: []model.Task{{ID: "task-1", Title: "One", Status: model.TaskStatusPending}},
			Total: 1, Limit: 20,
		}}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodGet, "/api/v1/backlog/tasks", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastList == nil || uc.lastList.Limit != 20 || uc.lastList.Offset != 0 {
			t.Errorf("expected default paging, got %+v", uc.lastList)
		}
	})

	t.Run("Filter And Paging Forwarded", func(t *testing.T) {
		uc := &mockUseCase{}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodGet, "/api/v1/backlog/tasks?status=scheduled&limit=5&offset=10", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastList == nil || uc.lastList.Status != model.TaskStatusScheduled {
			t.Errorf("expected scheduled filter, got %+v", uc.lastList)
		}
		if uc.lastList.Limit != 5 || uc.lastList.Offset != 10 {
			t.Errorf("expected limit 5 offset 10, got %+v", uc.lastList)
		}
	})
}

func TestDetail(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		uc := &mockUseCase{detailOutput: backlog.DetailOutput{
			Task: model.Task{ID: "task-9", Title: "Call dentist", Status: model.TaskStatusPending},
		}}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodGet, "/api/v1/backlog/tasks/task-9", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastID != "task-9" {
			t.Errorf("expected id task-9 forwarded, got %q", uc.lastID)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := &mockUseCase{detailErr: backlog.ErrTaskNotFound}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodGet, "/api/v1/backlog/tasks/ghost", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Partial Update", func(t *testing.T) {
		uc := &mockUseCase{updateOutput: backlog.UpdateOutput{
			Task: model.Task{ID: "task-2", Title: "New title", Status: model.TaskStatusPending},
		}}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodPut, "/api/v1/backlog/tasks/task-2", `{"title": "New title"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastUpdate == nil || uc.lastUpdate.ID != "task-2" {
			t.Errorf("expected path id forwarded, got %+v", uc.lastUpdate)
		}
		if uc.lastUpdate.DurationMinutes != nil || uc.lastUpdate.Priority != nil {
			t.Errorf("untouched fields must stay nil, got %+v", uc.lastUpdate)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := &mockUseCase{updateErr: backlog.ErrTaskNotFound}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodPut, "/api/v1/backlog/tasks/ghost", `{"title": "X"}`)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestArchive(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodDelete, "/api/v1/backlog/tasks/task-3", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastID != "task-3" {
			t.Errorf("expected id task-3 forwarded, got %q", uc.lastID)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := &mockUseCase{archiveErr: backlog.ErrTaskNotFound}
		engine := newTestRouter(uc)

		w := perform(engine, http.MethodDelete, "/api/v1/backlog/tasks/ghost", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
