package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind selects the banner style.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Message is the content of a flash banner.
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

const DefaultCookieName = "__flash"

// Store keeps one Message per client in a signed cookie.
type Store struct {
	secret []byte
	name   string
	path   string
	secure bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCookieName overrides DefaultCookieName. Empty names are ignored.
func WithCookieName(name string) StoreOption {
	return func(s *Store) {
		if name != "" {
			s.name = name
		}
	}
}

// WithSecure marks the cookie Secure, for HTTPS deployments.
func WithSecure(secure bool) StoreOption {
	return func(s *Store) { s.secure = secure }
}

func NewStore(secret string, opts ...StoreOption) (*Store, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	s := &Store{secret: []byte(secret), name: DefaultCookieName, path: "/"}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Set stores msg for the next request.
func (s *Store) Set(w http.ResponseWriter, msg Message) error {
	if strings.TrimSpace(msg.Text) == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidMessage)
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    s.sign(data),
		Path:     s.path,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the stored message and deletes the cookie. A missing, tampered
// or malformed cookie yields false; the cookie is deleted in every case.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) (Message, bool) {
	c, err := r.Cookie(s.name)
	if err != nil {
		return Message{}, false
	}
	s.delete(w)

	data, err := s.verify(c.Value)
	if err != nil {
		return Message{}, false
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil || msg.Text == "" {
		return Message{}, false
	}
	return msg, true
}

func (s *Store) delete(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     s.path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) sign(data []byte) string {
	payload := base64.RawURLEncoding.EncodeToString(data)
	return payload + "." + s.mac(payload)
}

func (s *Store) verify(value string) ([]byte, error) {
	payload, sig, ok := strings.Cut(value, ".")
	if !ok {
		return nil, ErrInvalidMessage
	}
	if !hmac.Equal([]byte(sig), []byte(s.mac(payload))) {
		return nil, ErrBadSignature
	}
	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Join(ErrInvalidMessage, err)
	}
	return data, nil
}

func (s *Store) mac(payload string) string {
	m := hmac.New(sha256.New, s.secret)
	m.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(m.Sum(nil))
}
