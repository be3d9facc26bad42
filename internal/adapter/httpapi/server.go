// Package httpapi exposes the completion proxy over HTTP.
//
// Endpoints:
//   - POST /api/chat/{persona} - proxy one conversation to the upstream model
//   - GET  /api/personas       - list configured personas
//   - GET  /healthz            - health check
//   - GET  /metrics            - Prometheus metrics
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"persona-chat/internal/domain"
	"persona-chat/internal/usecase/completion"
)

type Server struct {
	svc *completion.Service
}

func NewServer(svc *completion.Service) http.Handler {
	s := &Server{svc: svc}

	r := mux.NewRouter()
	r.Use(recoverMiddleware, requestLogMiddleware)

	r.HandleFunc("/api/chat/{persona}", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/api/personas", s.handlePersonas).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

type chatRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type chatResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type personaResponse struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	Greeting     string   `json:"greeting"`
	Endpoint     string   `json:"endpoint"`
	QuickReplies []string `json:"quick_replies,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	// the credential precondition comes before any other work, including
	// persona lookup and body decoding
	if !s.svc.Configured() {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: completion.ErrNotConfigured.Error()})
		return
	}

	personaID := mux.Vars(r)["persona"]

	p, ok := s.svc.Persona(personaID)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown persona"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	timer := observeChat(personaID)
	reply, err := s.svc.Complete(r.Context(), personaID, req.Messages)
	if err != nil {
		status := errorStatus(err, p)
		timer.done(status.code)
		writeJSON(w, status.code, errorResponse{Error: status.message})
		return
	}
	timer.done(http.StatusOK)

	writeJSON(w, http.StatusOK, chatResponse{Message: reply})
}

type httpError struct {
	code    int
	message string
}

// errorStatus maps one upstream failure onto the proxy's three-way taxonomy.
// The missing-credential case is surfaced verbatim so the operator sees what
// to fix; everything else gets the persona-flavored generic string.
func errorStatus(err error, p domain.Persona) httpError {
	if errors.Is(err, completion.ErrNotConfigured) {
		return httpError{http.StatusInternalServerError, err.Error()}
	}
	switch completion.Classify(err) {
	case completion.KindAuth:
		return httpError{http.StatusUnauthorized, completion.AuthErrorMessage}
	case completion.KindQuota:
		return httpError{http.StatusTooManyRequests, completion.QuotaErrorMessage}
	default:
		return httpError{http.StatusInternalServerError, p.FailureMessage}
	}
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	list := s.svc.ListPersonas()
	out := make([]personaResponse, 0, len(list))
	for _, p := range list {
		out = append(out, personaResponse{
			ID:           p.ID,
			DisplayName:  p.DisplayName,
			Greeting:     p.Greeting,
			Endpoint:     p.Endpoint,
			QuickReplies: p.QuickReplies,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
