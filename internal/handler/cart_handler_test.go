// /internal/handler/cart_handler_test.go
package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luanalauschner/Delivery/internal/session"
)

// --- Funções Auxiliares ---

func newTestStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("segredo-de-teste"))
}

// encodeSessionCookie: Codifica valores de sessão em um cookie para mandar na
// requisição, simulando um estado pré-existente.
func encodeSessionCookie(t *testing.T, store *sessions.CookieStore, values map[interface{}]interface{}) *http.Cookie {
	t.Helper()
	encoded, err := securecookie.EncodeMulti(session.Name, values, store.Codecs...)
	require.NoError(t, err)
	return &http.Cookie{Name: session.Name, Value: encoded}
}

// decodeSessionCookie: Decodifica o cookie de sessão da resposta para
// verificar seu conteúdo.
// NOTA: depende do codec interno do gorilla/sessions.
func decodeSessionCookie(t *testing.T, recorder *httptest.ResponseRecorder, store *sessions.CookieStore) map[interface{}]interface{} {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name != session.Name {
			continue
		}
		values := make(map[interface{}]interface{})
		err := securecookie.DecodeMulti(session.Name, cookie.Value, &values, store.Codecs...)
		require.NoError(t, err)
		return values
	}
	t.Fatal("Cookie de sessão não encontrado na resposta")
	return nil
}

func postForm(router *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func setupCartRouter() (*gin.Engine, *CartHandler, *sessions.CookieStore) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := newTestStore()
	h := &CartHandler{Store: store}
	router.POST("/carrinho/add", h.AddToCart)
	router.POST("/carrinho/remove", h.RemoveFromCart)
	router.POST("/carrinho/decrease", h.DecreaseQuantity)
	return router, h, store
}

// --- Testes ---

// Ids malformados no formulário caem antes de qualquer acesso a banco.
func TestAddToCartIDInvalido(t *testing.T) {
	router, _, _ := setupCartRouter()

	recorder := postForm(router, "/carrinho/add", url.Values{
		"item_id":        {"abc"},
		"restaurante_id": {"1"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ID do item inválido")

	recorder = postForm(router, "/carrinho/add", url.Values{
		"item_id":        {"5"},
		"restaurante_id": {""},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ID do restaurante inválido")
}

func TestRemoveFromCart(t *testing.T) {
	router, _, store := setupCartRouter()

	cookie := encodeSessionCookie(t, store, map[interface{}]interface{}{
		"cart":             map[string]int{"5": 2, "7": 1},
		"cartRestaurantID": uint(9),
	})

	recorder := postForm(router, "/carrinho/remove", url.Values{"item_id": {"5"}}, cookie)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/carrinho", recorder.Header().Get("Location"))

	values := decodeSessionCookie(t, recorder, store)
	crt, ok := values["cart"].(map[string]int)
	require.True(t, ok, "carrinho na sessão não é map[string]int")
	assert.NotContains(t, crt, "5")
	assert.Equal(t, 1, crt["7"])
	assert.Equal(t, uint(9), values["cartRestaurantID"])
}

// Remover o último item também apaga o marcador de restaurante da sessão.
func TestRemoveUltimoItemLimpaMarcador(t *testing.T) {
	router, _, store := setupCartRouter()

	cookie := encodeSessionCookie(t, store, map[interface{}]interface{}{
		"cart":             map[string]int{"5": 3},
		"cartRestaurantID": uint(9),
	})

	recorder := postForm(router, "/carrinho/remove", url.Values{"item_id": {"5"}}, cookie)
	assert.Equal(t, http.StatusFound, recorder.Code)

	values := decodeSessionCookie(t, recorder, store)
	crt, ok := values["cart"].(map[string]int)
	require.True(t, ok)
	assert.Empty(t, crt)
	assert.NotContains(t, values, "cartRestaurantID")
}

func TestDecreaseQuantity(t *testing.T) {
	router, _, store := setupCartRouter()

	cookie := encodeSessionCookie(t, store, map[interface{}]interface{}{
		"cart":             map[string]int{"5": 2},
		"cartRestaurantID": uint(9),
	})

	recorder := postForm(router, "/carrinho/decrease", url.Values{"item_id": {"5"}}, cookie)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/carrinho", recorder.Header().Get("Location"))

	values := decodeSessionCookie(t, recorder, store)
	crt, ok := values["cart"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 1, crt["5"])
	assert.Equal(t, uint(9), values["cartRestaurantID"])
}

// Diminuir quando a quantidade é 1 remove a entrada inteira.
func TestDecreaseQuantityRemoveEntrada(t *testing.T) {
	router, _, store := setupCartRouter()

	cookie := encodeSessionCookie(t, store, map[interface{}]interface{}{
		"cart":             map[string]int{"5": 1},
		"cartRestaurantID": uint(9),
	})

	recorder := postForm(router, "/carrinho/decrease", url.Values{"item_id": {"5"}}, cookie)
	assert.Equal(t, http.StatusFound, recorder.Code)

	values := decodeSessionCookie(t, recorder, store)
	crt, ok := values["cart"].(map[string]int)
	require.True(t, ok)
	assert.NotContains(t, crt, "5")
	assert.NotContains(t, values, "cartRestaurantID")
}
