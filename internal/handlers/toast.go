package handlers

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"projectmate.net/internal/links"
)

const toastCookie = "toast"

func init() {
	gob.Register(links.Notification{})
}

// ToastStore carries a notification to the next page render in a signed
// cookie. Each notification is shown once
type ToastStore struct {
	store *sessions.CookieStore
}

// NewToastStore creates a ToastStore signing cookies with key
func NewToastStore(key []byte) *ToastStore {
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &ToastStore{store: store}
}

// Set queues n for the next render
func (t *ToastStore) Set(w http.ResponseWriter, r *http.Request, n links.Notification) error {
	// an unreadable cookie still yields a fresh session to write into
	session, _ := t.store.Get(r, toastCookie)
	session.AddFlash(n)
	return session.Save(r, w)
}

// Pop returns the pending notification, if any, and clears it. Cookies that
// fail verification yield nothing
func (t *ToastStore) Pop(w http.ResponseWriter, r *http.Request) (*links.Notification, error) {
	session, err := t.store.Get(r, toastCookie)
	if err != nil {
		return nil, nil
	}

	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil, nil
	}
	if err := session.Save(r, w); err != nil {
		return nil, err
	}

	n, ok := flashes[0].(links.Notification)
	if !ok || n.Title == "" {
		return nil, nil
	}
	return &n, nil
}
