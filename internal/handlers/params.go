package handlers

import "net/http"

// getParam reads a path parameter set either by pat (as a ":name" query
// value) or by net/http pattern routing.
func getParam(r *http.Request, name string) string {
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	return r.PathValue(name)
}
