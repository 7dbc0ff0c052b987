// internal/lobby/errors.go
package lobby

import "errors"

// ErrorKind classifies operation failures so callers can branch on the
// happy path and the error path without string matching.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindBadRequest
	KindForbidden
	KindInternal
)

// Error is a typed operation failure. Message is safe to display to
// the user; for KindInternal it is a generic retry prompt and the
// underlying cause is kept only for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// UserMessage is the short localized text shown to the user.
func (e *Error) UserMessage() string { return e.Message }

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func badRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

func forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: msgInternal, cause: cause}
}

// KindOf extracts the ErrorKind from err, or 0 if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// User-facing messages, matching the bot's locale.
const (
	msgLobbyNotFound    = "Лобби не найдено"
	msgUserNotInLobby   = "Пользователь не состоит в лобби"
	msgAlreadyInLobby   = "Вы уже находитесь в другом лобби"
	msgAlreadyJoined    = "Вы уже присоединились к этому лобби"
	msgWrongLobby       = "Вы находитесь в другом лобби"
	msgCodeTaken        = "Лобби с таким кодом уже существует"
	msgOnlyOwnerStarts  = "Только владелец лобби может начать игру"
	msgPlayerNotInLobby = "Вы не найдены в этом лобби"
	msgInternal         = "Ошибка. Попробуйте позже"
)
