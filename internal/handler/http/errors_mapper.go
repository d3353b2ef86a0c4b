package http

import (
	"errors"
	"net/http"

	"github.com/itsarev/bitquest-server/internal/app"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/service"
	"github.com/itsarev/bitquest-server/internal/session"
	"github.com/itsarev/bitquest-server/internal/store"
	"github.com/itsarev/bitquest-server/internal/utils"
	"github.com/itsarev/bitquest-server/models"
)

// Error kinds exposed in the "error" field of every failed response.
// Clients branch on these strings, so they are part of the API contract.
const (
	kindMissingField      = "MissingField"
	kindConflict          = "Conflict"
	kindNotFound          = "NotFound"
	kindInvalidCredential = "InvalidCredential"
	kindUnauthenticated   = "Unauthenticated"
	kindInsufficientCoins = "InsufficientCoins"
	kindInternal          = "Internal"
)

// errorClass couples the HTTP status with the taxonomy kind and the fixed
// client-facing message. Messages are deliberately generic; raw storage
// errors must never reach the client.
type errorClass struct {
	status  int
	kind    string
	message string
}

var errorClassMap = map[error]errorClass{
	service.ErrMissingField:  {http.StatusBadRequest, kindMissingField, app.MsgMissingField},
	service.ErrWrongPassword: {http.StatusUnauthorized, kindInvalidCredential, app.MsgInvalidCredentials},

	store.ErrUsernameAlreadyExists: {http.StatusConflict, kindConflict, app.MsgUsernameAlreadyExists},
	store.ErrNoPlayerWasFound:      {http.StatusNotFound, kindNotFound, app.MsgPlayerNotFound},
	store.ErrInsufficientCoins:     {http.StatusBadRequest, kindInsufficientCoins, app.MsgInsufficientCoins},

	session.ErrNoSession: {http.StatusUnauthorized, kindUnauthenticated, app.MsgAuthenticationRequired},
	ErrNoSessionCookie:   {http.StatusUnauthorized, kindUnauthenticated, app.MsgAuthenticationRequired},
}

// classifyError resolves an error chain against the taxonomy. Anything
// unrecognized is an internal failure.
func classifyError(err error) errorClass {
	for sentinel, class := range errorClassMap {
		if errors.Is(err, sentinel) {
			return class
		}
	}
	return errorClass{http.StatusInternalServerError, kindInternal, app.MsgInternalServerError}
}

// writeError converts err into the JSON error envelope shared by every
// endpoint and logs the original error with its request-scoped logger.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	class := classifyError(err)
	if class.status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
	} else {
		log.Warn().Err(err).Str("kind", class.kind).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Error:   class.kind,
		Message: class.message,
	}, class.status)
}

// writeErrorKind writes a response for a condition detected directly in a
// handler (e.g. malformed JSON) where no sentinel error exists.
func (h *Handler) writeErrorKind(w http.ResponseWriter, status int, kind, message string) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Error:   kind,
		Message: message,
	}, status)
}
