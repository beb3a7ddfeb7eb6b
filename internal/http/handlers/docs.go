package handlers

import "net/http"

// DocsHandler serves the API description and redirects the root path to it.
type DocsHandler struct{}

// NewDocsHandler creates the docs endpoint handler.
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

// Register wires the handler into a ServeMux.
func (h *DocsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", h.handleRoot)
	mux.HandleFunc("/docs", h.handleDocs)
}

func (h *DocsHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	// "/" on a ServeMux catches every unregistered path.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/docs", http.StatusTemporaryRedirect)
}

func (h *DocsHandler) handleDocs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(docsText))
}

const docsText = `authd API

POST /signup   JSON {email, username?, phone?, password}; registers a user.
POST /token    form {username, password}; returns a bearer access token.
               The username field takes the account email address.
GET  /private  Authorization: Bearer <token>; returns the current user.
GET  /health   liveness and uptime.

Errors are returned as {"detail": "<message>"}. All 401 responses carry a
WWW-Authenticate: Bearer header.
`
