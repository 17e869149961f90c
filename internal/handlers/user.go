package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/madelynseal/spord-tracker/internal/store"
)

type UserHandler struct {
	Store *store.Store
	Auth  *SessionAuth
}

// LoginPost handles the HTML login form. An already-authenticated browser is
// just sent back to the index.
func (h *UserHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.Auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.login(w, r, "/")
}

// APILogin handles POST /api/user/login. The optional redirect query is
// honored only when it points inside the site (leading slash), anything else
// falls back to the index.
func (h *UserHandler) APILogin(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if redirect := r.URL.Query().Get("redirect"); strings.HasPrefix(redirect, "/") {
		target = redirect
	}
	h.login(w, r, target)
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request, target string) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	ok, err := h.Store.VerifyLogin(username, password)
	if err != nil {
		// Store failures stay internal, the client only sees a generic
		// error.
		slog.Error("Login verification failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !ok {
		// Unknown user and wrong password look identical from here.
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := h.Auth.Login(w, r, username); err != nil {
		slog.Error("Failed to save session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("Login successful", "username", username)
	http.Redirect(w, r, target, http.StatusFound)
}

// Logout invalidates the session and returns to the login page.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(w, r); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}
