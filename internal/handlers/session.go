package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "spord-session"
	identityKey = "identity"

	// identityPrefix marks session identities minted after a password
	// login. The rest of the token is the username.
	identityPrefix = "user:"
)

// SessionAuth maps the opaque session identity to a username and back. It
// holds no state of its own; the identity lives in the cookie session.
type SessionAuth struct {
	Sessions *sessions.CookieStore
}

// CurrentUser resolves the authenticated username for a request. A missing
// session, a missing identity value, or an identity without the user prefix
// all mean "not logged in", never an error.
func (a *SessionAuth) CurrentUser(r *http.Request) (string, bool) {
	session, err := a.Sessions.Get(r, sessionName)
	if err != nil {
		// Undecodable cookie, e.g. minted with an old key.
		return "", false
	}
	raw, ok := session.Values[identityKey].(string)
	if !ok {
		return "", false
	}
	username, found := strings.CutPrefix(raw, identityPrefix)
	if !found {
		return "", false
	}
	return username, true
}

// Login mints the session identity for username and saves the session.
func (a *SessionAuth) Login(w http.ResponseWriter, r *http.Request, username string) error {
	session, _ := a.Sessions.Get(r, sessionName)
	session.Values[identityKey] = identityPrefix + username
	session.Options.Path = "/"
	return session.Save(r, w)
}

// Logout invalidates the session identity.
func (a *SessionAuth) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := a.Sessions.Get(r, sessionName)
	delete(session.Values, identityKey)
	session.Options.MaxAge = -1 // Expire immediately
	return session.Save(r, w)
}

// RequireAPI guards JSON endpoints, answering 401 when not logged in.
func (a *SessionAuth) RequireAPI(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.CurrentUser(r); !ok {
			slog.Debug("Unauthenticated API request", "path", r.URL.Path)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
