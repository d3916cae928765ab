package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/adapter/http/validation"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

// TaskHandler serves the task routes. Every route runs behind
// middleware.IdentityMiddleware.
type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, found, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTask)
		return
	}
	if !found {
		respondError(c, domain.ErrTaskNotFound, apierrors.MsgFailGetTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if _, ok := decodeBody(c, &req); !ok {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), validation.BuildCreateTaskInput(principal.UserID, req))
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, ok := decodeBody(c, &req)
	if !ok {
		return
	}
	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if _, ok := decodeBody(c, &req); !ok {
		return
	}

	task, err := h.taskService.MoveTask(c.Request.Context(), taskID, validation.MoveStatus(req))
	if err != nil {
		respondError(c, err, apierrors.MsgFailMoveTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask)
		return
	}

	c.Status(http.StatusNoContent)
}

func requirePrincipal(c *gin.Context) (domain.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized, apierrors.MsgUnauthorized)
		return domain.Principal{}, false
	}
	return principal, true
}

// decodeBody binds a JSON object body into dst and returns its raw fields,
// answering 400 on failure. An empty body binds as {}.
func decodeBody(c *gin.Context, dst any) (map[string]json.RawMessage, bool) {
	body, err := c.GetRawData()
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return nil, false
	}
	raw, err := validation.DecodeObject(body, dst)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return nil, false
	}
	return raw, true
}
