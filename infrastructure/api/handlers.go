package api

import (
	"greeting-hub/auth"
	"greeting-hub/domain"
	"greeting-hub/errors"
	"greeting-hub/services"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type tokenResponse struct {
	Token string `json:"token"`
}

type moderationRequest struct {
	Action domain.ModerationAction `json:"action"`
	Reason string                  `json:"reason"`
}

type postMessageRequest struct {
	Content string `json:"content"`
}

type messagesResponse struct {
	Messages   []domain.ChatMessage `json:"messages"`
	NextCursor *string              `json:"next_cursor,omitempty"`
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var body auth.RegisterRequest
	if err := decode(r, &body); err != nil {
		a.writeError(w, err)
		return
	}
	token, err := a.services.Auth.Register(body.Email, body.Password)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, tokenResponse{Token: string(token)})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var body auth.LoginRequest
	if err := decode(r, &body); err != nil {
		a.writeError(w, err)
		return
	}
	token, err := a.services.Auth.Login(body.Email, body.Password)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, tokenResponse{Token: string(token)})
}

func (a *API) composeGreeting(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	var body services.ComposeRequest
	if err := decode(r, &body); err != nil {
		a.writeError(w, err)
		return
	}
	greeting, err := a.services.Greetings.Compose(r.Context(), identity, body)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, greeting)
}

func (a *API) listGreetings(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	greetings, err := a.services.Greetings.ListSent(r.Context(), identity)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, nonNil(greetings))
}

func (a *API) sendNow(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	greeting, err := a.services.Greetings.SendNow(r.Context(), identity, domain.GreetingID(chi.URLParam(r, "id")))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, greeting)
}

func (a *API) deleteGreeting(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	if err := a.services.Greetings.Delete(r.Context(), identity, domain.GreetingID(chi.URLParam(r, "id"))); err != nil {
		a.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) moderateGreeting(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	if !identity.IsAdmin() {
		a.writeError(w, errors.ErrForbidden)
		return
	}
	var body moderationRequest
	if err := decode(r, &body); err != nil {
		a.writeError(w, err)
		return
	}
	greeting, err := a.services.Greetings.Moderate(r.Context(), identity,
		domain.GreetingID(chi.URLParam(r, "id")), body.Action, body.Reason)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, greeting)
}

func (a *API) createGroup(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	var body services.CreateGroupRequest
	if err := decode(r, &body); err != nil {
		a.writeError(w, err)
		return
	}
	group, err := a.services.Groups.CreateGroup(r.Context(), identity, body.Name)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, group)
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	var body services.AddMemberRequest
	if err := decode(r, &body); err != nil {
		a.writeError(w, err)
		return
	}
	member, err := a.services.Groups.AddMember(r.Context(), identity, domain.GroupID(chi.URLParam(r, "id")), body.UserID)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, member)
}

func (a *API) postMessage(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	var body postMessageRequest
	if err := decode(r, &body); err != nil {
		a.writeError(w, err)
		return
	}
	message, err := a.services.Groups.PostMessage(r.Context(), identity, domain.GroupID(chi.URLParam(r, "id")), body.Content)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, message)
}

func (a *API) listMessages(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	var cursor *string
	if c := r.URL.Query().Get("cursor"); c != "" {
		cursor = &c
	}
	messages, next, err := a.services.Groups.GetMessages(r.Context(), identity, domain.GroupID(chi.URLParam(r, "id")), cursor)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, messagesResponse{Messages: nonNil(messages), NextCursor: next})
}

func (a *API) searchMessages(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	messages, err := a.services.Groups.SearchMessages(r.Context(), identity,
		domain.GroupID(chi.URLParam(r, "id")), r.URL.Query().Get("q"), limit)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, messagesResponse{Messages: nonNil(messages)})
}

func (a *API) listNotifications(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread"))
	notifications, err := a.services.Notifications.List(r.Context(), identity.UserID, unreadOnly)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, nonNil(notifications))
}

func (a *API) markRead(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	notification, err := a.services.Notifications.MarkRead(r.Context(), identity.UserID, domain.NotificationID(chi.URLParam(r, "id")))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, notification)
}

// nonNil keeps empty lists as [] on the wire.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
