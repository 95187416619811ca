// /internal/handler/auth_handler_test.go
package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"

	"github.com/luanalauschner/Delivery/internal/model"
	"github.com/luanalauschner/Delivery/internal/session"
)

// loadSessionWithCookie monta um session.Context a partir de um cookie
// codificado, como um handler faria.
func loadSessionWithCookie(t *testing.T, store *sessions.CookieStore, cookie *http.Cookie) *session.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return session.Load(store, req)
}

func TestAuthorize(t *testing.T) {
	store := newTestStore()

	clienteCookie := encodeSessionCookie(t, store, map[interface{}]interface{}{
		"userID": uint(42),
		"role":   model.RoleCustomer,
	})

	tests := []struct {
		nome         string
		cookie       *http.Cookie
		requiredRole string
		esperado     AuthResult
	}{
		{"sem login", nil, model.RoleCustomer, Unauthenticated},
		{"sem login e sem papel exigido", nil, "", Unauthenticated},
		{"logado com papel certo", clienteCookie, model.RoleCustomer, Authorized},
		{"logado com papel errado", clienteCookie, model.RoleRestaurant, Forbidden},
		{"logado sem papel exigido", clienteCookie, "", Authorized},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			sess := loadSessionWithCookie(t, store, tt.cookie)
			assert.Equal(t, tt.esperado, Authorize(sess, tt.requiredRole))
		})
	}
}

func setupAuthRouter() (*gin.Engine, *sessions.CookieStore) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := newTestStore()
	h := &AuthHandler{Store: store}

	router.POST("/cadastro", h.ProcessCadastroForm)

	cliente := router.Group("/")
	cliente.Use(h.RequireRole(model.RoleCustomer))
	cliente.GET("/checkout", func(c *gin.Context) {
		c.String(http.StatusOK, "ok %d", currentUserID(c))
	})

	return router, store
}

func TestRequireRoleSemLogin(t *testing.T) {
	router, _ := setupAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login?next=%2Fcheckout", recorder.Header().Get("Location"))
}

func TestRequireRolePapelErrado(t *testing.T) {
	router, store := setupAuthRouter()

	cookie := encodeSessionCookie(t, store, map[interface{}]interface{}{
		"userID": uint(7),
		"role":   model.RoleRestaurant,
	})
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.AddCookie(cookie)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Acesso negado")
}

func TestRequireRolePapelCerto(t *testing.T) {
	router, store := setupAuthRouter()

	cookie := encodeSessionCookie(t, store, map[interface{}]interface{}{
		"userID": uint(7),
		"role":   model.RoleCustomer,
	})
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.AddCookie(cookie)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok 7", recorder.Body.String())
}

// Todas as rejeições do cadastro acontecem antes de qualquer escrita no banco.
func TestProcessCadastroFormValidacao(t *testing.T) {
	router, _ := setupAuthRouter()

	base := url.Values{
		"email": {"nova@delivery.dev"},
		"senha": {"senhaforte123"},
		"nome":  {"Nova Conta"},
		"tipo":  {model.RoleCustomer},
	}

	tests := []struct {
		nome     string
		mutate   func(form url.Values)
		mensagem string
	}{
		{"tipo inválido", func(f url.Values) { f.Set("tipo", "ADMIN") }, "tipo de usuário inválido"},
		{"tipo vazio", func(f url.Values) { f.Set("tipo", "") }, "tipo de usuário inválido"},
		{"email vazio", func(f url.Values) { f.Set("email", "  ") }, "obrigatórios"},
		{"senha vazia", func(f url.Values) { f.Set("senha", "") }, "obrigatórios"},
		{"nome vazio", func(f url.Values) { f.Set("nome", "") }, "obrigatórios"},
		{"tempo de preparo não numérico", func(f url.Values) {
			f.Set("tipo", model.RoleRestaurant)
			f.Set("tempo_preparo_min", "vinte")
		}, "tempo de preparo inválido"},
		{"tempo mínimo maior que o máximo", func(f url.Values) {
			f.Set("tipo", model.RoleRestaurant)
			f.Set("tempo_preparo_min", "50")
			f.Set("tempo_preparo_max", "20")
		}, "tempo mínimo não pode ser maior que o máximo"},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			form := url.Values{}
			for k, v := range base {
				form[k] = v
			}
			tt.mutate(form)

			recorder := postForm(router, "/cadastro", form, nil)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.mensagem)
		})
	}
}
