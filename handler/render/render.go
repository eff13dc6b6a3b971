package render

import (
	"encoding/json"
	"net/http"

	"estable/core"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(H{"data": v})
}

// Error write error
func Error(w http.ResponseWriter, statusCode, errCode int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(H{"code": errCode, "msg": msg})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, -1, err.Error())
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusNotFound, -1, err.Error())
}

// Err map a typed engine error onto the wire; anything untyped is an
// internal error
func Err(w http.ResponseWriter, err error) {
	code, ok := err.(core.ErrorCode)
	if !ok {
		Error(w, http.StatusInternalServerError, int(core.ErrUnknown), err.Error())
		return
	}

	Error(w, statusOf(code), int(code), code.Msg())
}

func statusOf(code core.ErrorCode) int {
	switch code {
	case core.ErrUnauthorized:
		return http.StatusForbidden
	case core.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
