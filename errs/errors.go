package errs

import "errors"

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTranslationNotFound = errors.New("translation not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrReplyNotFound       = errors.New("standard reply not found")

	ErrRequired          = errors.New("required field missing")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotLastEntry      = errors.New("only the last translation can be deleted")
	ErrTicketClosed      = errors.New("ticket is closed")
	ErrForbidden         = errors.New("operation not permitted")
	ErrWorkflowDisabled  = errors.New("workflow not enabled for project")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
