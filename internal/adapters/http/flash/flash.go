// Package flash carries one-shot messages across a POST/redirect/GET cycle
// in a short-lived cookie. A message is written with [Set] before a
// redirect and consumed with [Pop] by the next rendered page.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// CookieName is the name of the flash cookie.
const CookieName = "flash"

// StatusDelete marks a flash raised by a delete action.
const StatusDelete = "delete"

// Message is the payload shown once on the next page.
type Message struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  string `json:"status,omitempty"`
}

// IsZero reports whether m carries nothing to show.
func (m Message) IsZero() bool {
	return m == Message{}
}

// Info returns a plain informational message.
func Info(text string) Message {
	return Message{Message: text}
}

// Error returns an error message.
func Error(text string) Message {
	return Message{Error: text}
}

// Set stores m in the flash cookie. An empty message is ignored.
func Set(w http.ResponseWriter, m Message) {
	if m.IsZero() {
		return
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop reads the flash cookie and expires it. A missing or malformed cookie
// yields a zero Message; a malformed one is still expired.
func Pop(w http.ResponseWriter, r *http.Request) Message {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Message{}
	}

	expire(w)

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return Message{}
	}

	var m Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return Message{}
	}
	return m
}

func expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
