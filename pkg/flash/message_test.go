package flash_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/flash"
)

func roundTrip(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("requires a secret", func(t *testing.T) {
		_, err := flash.NewStore("")
		assert.True(t, errors.Is(err, flash.ErrEmptySecret))
	})

	t.Run("set then pop returns the message once", func(t *testing.T) {
		store, err := flash.NewStore("secret")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		require.NoError(t, store.Set(w, flash.Message{Kind: flash.KindSuccess, Text: "Profile saved"}))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, flash.DefaultCookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		popW := httptest.NewRecorder()
		msg, ok := store.Pop(popW, roundTrip(t, w))
		require.True(t, ok)
		assert.Equal(t, flash.Message{Kind: flash.KindSuccess, Text: "Profile saved"}, msg)

		deleted := popW.Result().Cookies()
		require.Len(t, deleted, 1)
		assert.Equal(t, -1, deleted[0].MaxAge)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		store, _ := flash.NewStore("secret")
		err := store.Set(httptest.NewRecorder(), flash.Message{Text: "  "})
		assert.True(t, errors.Is(err, flash.ErrInvalidMessage))
	})

	t.Run("no cookie", func(t *testing.T) {
		store, _ := flash.NewStore("secret")
		_, ok := store.Pop(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, ok)
	})

	t.Run("cookie signed with another secret is rejected", func(t *testing.T) {
		a, _ := flash.NewStore("secret-a")
		b, _ := flash.NewStore("secret-b")

		w := httptest.NewRecorder()
		require.NoError(t, a.Set(w, flash.Message{Kind: flash.KindInfo, Text: "hi"}))

		_, ok := b.Pop(httptest.NewRecorder(), roundTrip(t, w))
		assert.False(t, ok)
	})

	t.Run("tampered cookie is rejected", func(t *testing.T) {
		store, _ := flash.NewStore("secret")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: flash.DefaultCookieName, Value: "eyJ0ZXh0IjoiaGkifQ.forged"})

		_, ok := store.Pop(httptest.NewRecorder(), req)
		assert.False(t, ok)
	})

	t.Run("custom cookie name", func(t *testing.T) {
		store, _ := flash.NewStore("secret", flash.WithCookieName("notice"), flash.WithSecure(true))
		w := httptest.NewRecorder()
		require.NoError(t, store.Set(w, flash.Message{Kind: flash.KindError, Text: "Failed"}))
		c := w.Result().Cookies()[0]
		assert.Equal(t, "notice", c.Name)
		assert.True(t, c.Secure)
	})
}
