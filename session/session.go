package session

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "gtn_session"
	adminKey    = "is_admin"
	maxAge      = 7 * 24 * 60 * 60 // 7 days
)

// Store is the admin-session abstraction injected into the API layer. A
// request either carries an admin session or it does not; there is no other
// session state.
type Store interface {
	IsAdmin(r *http.Request) bool
	SetAdmin(w http.ResponseWriter, r *http.Request) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

// CookieStore keeps the admin flag in a signed and encrypted cookie.
type CookieStore struct {
	store *sessions.CookieStore
}

// NewCookieStore derives separate signing and encryption keys from the
// configured secret. secure should be true whenever the site is served over
// HTTPS.
func NewCookieStore(secret string, secure bool) *CookieStore {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	store := sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}

	return &CookieStore{store: store}
}

func (c *CookieStore) IsAdmin(r *http.Request) bool {
	s, err := c.store.Get(r, sessionName)
	if err != nil {
		// A cookie signed with a stale secret is just an absent session.
		return false
	}
	isAdmin, ok := s.Values[adminKey].(bool)
	return ok && isAdmin
}

func (c *CookieStore) SetAdmin(w http.ResponseWriter, r *http.Request) error {
	s, _ := c.store.Get(r, sessionName)
	s.Values[adminKey] = true
	return s.Save(r, w)
}

func (c *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := c.store.Get(r, sessionName)
	delete(s.Values, adminKey)
	s.Options.MaxAge = -1
	return s.Save(r, w)
}
