package validation

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin/binding"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

// DecodeObject binds a JSON object body into dst and also returns its raw
// fields, so callers can tell an omitted field from an explicit null. An
// empty body reads as {}.
func DecodeObject(body []byte, dst any) (map[string]json.RawMessage, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, ErrInvalidPayload
	}
	if err := binding.JSON.BindBody(body, dst); err != nil {
		return nil, ErrInvalidPayload
	}
	return raw, nil
}

// MoveStatus reads the status field of a move body. Values that are not
// JSON strings come back verbatim, which never form a valid status, so the
// task lookup still runs before the status is rejected.
func MoveStatus(req dto.MoveTaskRequest) domain.TaskStatus {
	if len(req.Status) == 0 {
		return ""
	}

	var status string
	if err := json.Unmarshal(req.Status, &status); err != nil {
		return domain.TaskStatus(req.Status)
	}
	return domain.TaskStatus(status)
}

func BuildCreateTaskInput(userID uint64, req dto.CreateTaskRequest) domain.CreateTaskInput {
	return domain.CreateTaskInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
}

// BuildUpdateTaskInput maps an update body onto domain.UpdateTaskInput. A
// null title is rejected; a null description clears the stored one.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if hasJSONField(raw, "title") && isJSONNull(raw["title"]) {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	return domain.UpdateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
	}, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
