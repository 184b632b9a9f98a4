// Package ping contains handlers for pinging the server
package ping

import "net/http"

// HandlePing responds 200 with an empty body.
func HandlePing(w http.ResponseWriter, r *http.Request) {}
