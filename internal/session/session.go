// /internal/session/session.go

// Package session embrulha a sessão de cookie em um objeto tipado, carregado
// uma vez por request, no lugar de leituras soltas de session.Values
// espalhadas pelos handlers.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/luanalauschner/Delivery/internal/cart"
)

const (
	// Name é o nome do cookie de sessão.
	Name = "delivery-session"

	keyUserID           = "userID"
	keyRole             = "role"
	keyCart             = "cart"
	keyCartRestaurantID = "cartRestaurantID"
)

func init() {
	gob.Register(map[string]int{})
}

// Context carrega a identidade logada e o carrinho de um único request.
type Context struct {
	s *sessions.Session
}

// Load lê (ou cria) a sessão do request. Erro de decodificação do cookie é
// ignorado de propósito: o gorilla devolve uma sessão nova nesses casos.
func Load(store sessions.Store, r *http.Request) *Context {
	s, _ := store.Get(r, Name)
	return &Context{s: s}
}

// UserID devolve a identidade logada, se houver.
func (c *Context) UserID() (uint, bool) {
	id, ok := c.s.Values[keyUserID].(uint)
	return id, ok
}

// Role devolve o papel do usuário logado ("" quando deslogado).
func (c *Context) Role() string {
	role, _ := c.s.Values[keyRole].(string)
	return role
}

// SetIdentity grava identidade e papel após o login.
func (c *Context) SetIdentity(userID uint, role string) {
	c.s.Values[keyUserID] = userID
	c.s.Values[keyRole] = role
}

// Cart monta o carrinho a partir dos valores brutos da sessão.
func (c *Context) Cart() cart.Cart {
	crt := cart.New()
	if items, ok := c.s.Values[keyCart].(map[string]int); ok {
		crt.Items = items
	}
	if rid, ok := c.s.Values[keyCartRestaurantID].(uint); ok {
		crt.RestaurantID = rid
	}
	return crt
}

// SetCart persiste o carrinho de volta na sessão. Carrinho sem restaurante
// perde o marcador cartRestaurantID.
func (c *Context) SetCart(crt cart.Cart) {
	c.s.Values[keyCart] = crt.Items
	if crt.RestaurantID == 0 {
		delete(c.s.Values, keyCartRestaurantID)
	} else {
		c.s.Values[keyCartRestaurantID] = crt.RestaurantID
	}
}

// ClearCart esvazia o carrinho (checkout concluído).
func (c *Context) ClearCart() {
	c.s.Values[keyCart] = map[string]int{}
	delete(c.s.Values, keyCartRestaurantID)
}

// Destroy encerra a sessão por completo (logout).
func (c *Context) Destroy() {
	c.s.Values = make(map[interface{}]interface{})
	c.s.Options.MaxAge = -1
}

// AddFlash enfileira uma mensagem flash do tipo dado ("success" ou "error").
func (c *Context) AddFlash(kind, msg string) {
	c.s.AddFlash(msg, kind)
}

// Flashes consome as mensagens flash do tipo dado.
func (c *Context) Flashes(kind string) []interface{} {
	return c.s.Flashes(kind)
}

// Save grava o cookie de sessão na resposta.
func (c *Context) Save(r *http.Request, w http.ResponseWriter) error {
	return c.s.Save(r, w)
}
