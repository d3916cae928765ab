package apierrors

const (
	MsgInvalidPayload   = "invalidPayload"
	MsgInvalidTaskID    = "invalidTaskID"
	MsgTaskNotFound     = "taskNotFound"
	MsgFailListTask     = "failListTask"
	MsgFailGetTask      = "failGetTask"
	MsgFailCreateTask   = "failCreateTask"
	MsgFailUpdateTask   = "failUpdateTask"
	MsgFailMoveTask     = "failMoveTask"
	MsgFailDeleteTask   = "failDeleteTask"
	MsgFailRegisterUser = "failRegisterUser"
	MsgFailLogin        = "failLogin"
	MsgInternalError    = "internalError"

	MsgMissingFields      = "missingFields"
	MsgInvalidEmail       = "invalidEmail"
	MsgPasswordMismatch   = "passwordMismatch"
	MsgWeakPassword       = "weakPassword"
	MsgEmailTaken         = "emailTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgWrongPassword      = "wrongPassword"
	MsgUnauthorized       = "unauthorized"
	MsgEmptyTitle         = "emptyTitle"
	MsgInvalidStatus      = "invalidStatus"
)
