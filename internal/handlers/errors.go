package handlers

import (
	"encoding/json"
	"net/http"
)

// serverError logs err and answers 500 with prefix, followed by the error
// text unless ExposeErrors is off.
func (h *ReviewHandler) serverError(w http.ResponseWriter, prefix string, err error) {
	h.logf("%s: %v", prefix, err)
	http.Error(w, serverErrorMessage(prefix, err, h.ExposeErrors), http.StatusInternalServerError)
}

func serverErrorMessage(prefix string, err error, expose bool) string {
	if !expose || err == nil {
		return prefix
	}
	return prefix + ": " + err.Error()
}

func (h *ReviewHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logf("encode response: %v", err)
	}
}
