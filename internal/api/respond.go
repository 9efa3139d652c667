package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/printgrid/pkg/cache"
	"github.com/matzehuels/printgrid/pkg/errors"
	"github.com/matzehuels/printgrid/pkg/layout"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, statusFor(code), body)
}

// statusFor maps machine-readable error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeLayoutNotFound, errors.ErrCodePaperNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeStore, errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func hashResult(res *layout.Result) string {
	data, err := json.Marshal(res)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}
