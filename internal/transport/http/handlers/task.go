package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/varis/taskboard/internal/application/task"
	"github.com/varis/taskboard/internal/audit"
	"github.com/varis/taskboard/internal/domain"
	"github.com/varis/taskboard/internal/transport/http/dto"
	"github.com/varis/taskboard/internal/transport/http/middleware"
	"github.com/varis/taskboard/internal/transport/http/response"
)

type TaskHandler struct {
	svc   *task.Service
	audit *audit.Logger
}

func NewTaskHandler(svc *task.Service, auditLog *audit.Logger) *TaskHandler {
	return &TaskHandler{
		svc:   svc,
		audit: auditLog,
	}
}

func actor(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return domain.User{}, false
	}
	return u, true
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, ok := actor(w, r)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	t, err := h.svc.Create(r.Context(), u, req.Title, req.Description, req.Priority)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.audit.TaskCreated(r.Context(), t.ID, u.ID)

	response.Created(w, dto.TaskResponse{
		Meta: response.OKMeta("task created successfully"),
		Task: dto.NewTaskView(t),
	})
}

// List returns the actor's visibility scope: members get their own tasks,
// admins get everyone's with the owner attached.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	u, ok := actor(w, r)
	if !ok {
		return
	}

	ts, err := h.svc.List(r.Context(), u)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	views := dto.NewTaskListView(ts)
	response.OK(w, dto.TaskListResponse{
		Meta:  response.OKMeta("tasks fetched successfully"),
		Count: len(views),
		Tasks: views,
	})
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, ok := actor(w, r)
	if !ok {
		return
	}

	t, err := h.svc.Get(r.Context(), u, chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.TaskResponse{
		Meta: response.OKMeta("task fetched successfully"),
		Task: dto.NewTaskView(t),
	})
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	u, ok := actor(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	t, err := h.svc.Update(r.Context(), u, chi.URLParam(r, "id"), req.Description, req.Priority, req.Status)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.audit.TaskUpdated(r.Context(), t.ID, u.ID, string(t.Status))

	response.OK(w, dto.TaskResponse{
		Meta: response.OKMeta("task updated successfully"),
		Task: dto.NewTaskView(t),
	})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	u, ok := actor(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), u, id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.audit.TaskDeleted(r.Context(), id, u.ID)

	response.OK(w, dto.TaskDeleteResponse{
		Meta: response.OKMeta("task deleted successfully"),
	})
}
