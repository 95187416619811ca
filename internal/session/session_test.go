// /internal/session/session_test.go
package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luanalauschner/Delivery/internal/cart"
)

// roundTrip grava a sessão em um cookie e devolve o Context carregado de um
// request novo com esse cookie, simulando a ida e volta pelo navegador.
func roundTrip(t *testing.T, store *sessions.CookieStore, mutate func(*Context)) *Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := Load(store, req)
	mutate(sess)

	rec := httptest.NewRecorder()
	require.NoError(t, sess.Save(req, rec))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "nenhum cookie de sessão gravado")

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req2.AddCookie(ck)
	}
	return Load(store, req2)
}

func TestCartRoundTrip(t *testing.T) {
	store := sessions.NewCookieStore([]byte("secret-key-for-test"))

	crt := cart.New()
	crt.Add(5, 1)
	crt.Add(5, 1)
	crt.Add(7, 1)

	loaded := roundTrip(t, store, func(s *Context) {
		s.SetCart(crt)
	})

	got := loaded.Cart()
	assert.Equal(t, map[string]int{"5": 2, "7": 1}, got.Items)
	assert.Equal(t, uint(1), got.RestaurantID)
}

func TestCartSemRestauranteNaoGravaMarcador(t *testing.T) {
	store := sessions.NewCookieStore([]byte("secret-key-for-test"))

	loaded := roundTrip(t, store, func(s *Context) {
		s.SetCart(cart.New())
	})

	got := loaded.Cart()
	assert.True(t, got.Empty())
	assert.Equal(t, uint(0), got.RestaurantID)
}

func TestIdentityRoundTrip(t *testing.T) {
	store := sessions.NewCookieStore([]byte("secret-key-for-test"))

	loaded := roundTrip(t, store, func(s *Context) {
		s.SetIdentity(42, "CUSTOMER")
	})

	id, ok := loaded.UserID()
	require.True(t, ok)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "CUSTOMER", loaded.Role())
}

func TestClearCartRemoveMarcador(t *testing.T) {
	store := sessions.NewCookieStore([]byte("secret-key-for-test"))

	crt := cart.New()
	crt.Add(5, 1)

	loaded := roundTrip(t, store, func(s *Context) {
		s.SetCart(crt)
		s.ClearCart()
	})

	got := loaded.Cart()
	assert.Empty(t, got.Items)
	assert.Equal(t, uint(0), got.RestaurantID)
}

func TestUserIDSemLogin(t *testing.T) {
	store := sessions.NewCookieStore([]byte("secret-key-for-test"))
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	sess := Load(store, req)
	_, ok := sess.UserID()
	assert.False(t, ok)
	assert.Equal(t, "", sess.Role())
}
