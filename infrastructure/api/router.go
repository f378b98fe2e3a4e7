// Package api is the JSON write path: accounts, greetings, groups and notifications.
// Every mutation is persisted first, the realtime layer only reflects it.
package api

import (
	"encoding/json"
	"greeting-hub/auth"
	"greeting-hub/contract"
	"greeting-hub/errors"
	"greeting-hub/services"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Services struct {
	Auth          services.IAuthService
	Greetings     services.IGreetingService
	Groups        services.IGroupService
	Notifications services.INotificationService
}

type API struct {
	log      *slog.Logger
	services Services
}

// NewRouter mounts the write path and the websocket endpoint on one chi router.
func NewRouter(log *slog.Logger, svc Services, verifier contract.IdentityVerifier, websocket http.Handler) http.Handler {
	a := &API{log: log, services: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/ws", websocket)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", a.register)
		r.Post("/login", a.login)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(verifier, a.writeError))

		r.Route("/greetings", func(r chi.Router) {
			r.Post("/", a.composeGreeting)
			r.Get("/", a.listGreetings)
			r.Post("/{id}/send-now", a.sendNow)
			r.Delete("/{id}", a.deleteGreeting)
			r.Post("/{id}/moderation", a.moderateGreeting)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", a.createGroup)
			r.Post("/{id}/members", a.addMember)
			r.Post("/{id}/messages", a.postMessage)
			r.Get("/{id}/messages", a.listMessages)
			r.Get("/{id}/messages/search", a.searchMessages)
		})

		r.Get("/notifications", a.listNotifications)
		r.Post("/notifications/{id}/read", a.markRead)
	})
	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		a.log.Error("Request failed", "status", status, "error", err)
	} else {
		a.log.Debug("Request rejected", "status", status, "error", err)
	}
	a.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Debug("Response not written", "error", err)
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.ErrInvalidRequest
	}
	return nil
}
