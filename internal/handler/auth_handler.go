// /internal/handler/auth_handler.go
package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/luanalauschner/Delivery/internal/database"
	"github.com/luanalauschner/Delivery/internal/model"
	"github.com/luanalauschner/Delivery/internal/session"
)

// AuthResult é o resultado etiquetado da checagem de autorização, no lugar de
// valores sentinela.
type AuthResult int

const (
	Authorized AuthResult = iota
	Unauthenticated
	Forbidden
)

// Authorize resolve a identidade da sessão e, se requiredRole for informado,
// compara com o papel gravado nela.
func Authorize(sess *session.Context, requiredRole string) AuthResult {
	if _, ok := sess.UserID(); !ok {
		return Unauthenticated
	}
	if requiredRole != "" && sess.Role() != requiredRole {
		return Forbidden
	}
	return Authorized
}

type AuthHandler struct {
	Store *sessions.CookieStore
}

// RequireRole protege um grupo de rotas: sem login redireciona para
// /login?next=<rota atual>, papel errado recebe 403.
func (h *AuthHandler) RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Load(h.Store, c.Request)
		switch Authorize(sess, requiredRole) {
		case Unauthenticated:
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
		case Forbidden:
			c.String(http.StatusForbidden, "Acesso negado: tipo de usuário inválido.")
			c.Abort()
		default:
			userID, _ := sess.UserID()
			c.Set("userID", userID)
			c.Set("role", sess.Role())
			c.Next()
		}
	}
}

// currentUserID lê a identidade colocada no contexto pelo RequireRole.
func currentUserID(c *gin.Context) uint {
	v, _ := c.Get("userID")
	id, _ := v.(uint)
	return id
}

// ShowCadastroPage renderiza a página de cadastro.
func (h *AuthHandler) ShowCadastroPage(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	_, isLoggedIn := sess.UserID()
	c.HTML(http.StatusOK, "cadastro.html", gin.H{
		"IsLoggedIn": isLoggedIn,
	})
}

// ProcessCadastroForm processa o formulário de cadastro. Cria o User e o
// perfil (Customer ou Restaurant) na mesma transação; nenhuma validação que
// falhe deixa linha para trás.
func (h *AuthHandler) ProcessCadastroForm(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	senha := c.PostForm("senha")
	tipo := c.PostForm("tipo")
	nome := strings.TrimSpace(c.PostForm("nome"))
	telefone := strings.TrimSpace(c.PostForm("telefone"))

	if tipo != model.RoleCustomer && tipo != model.RoleRestaurant {
		c.String(http.StatusBadRequest, "Erro: tipo de usuário inválido.")
		return
	}
	if email == "" || senha == "" || nome == "" {
		c.String(http.StatusBadRequest, "Erro: email, senha e nome são obrigatórios.")
		return
	}

	// Faixa de tempo de preparo só interessa para restaurante; padrão 20-40.
	tmin, tmax := 20, 40
	if tipo == model.RoleRestaurant {
		var err error
		if s := strings.TrimSpace(c.PostForm("tempo_preparo_min")); s != "" {
			if tmin, err = strconv.Atoi(s); err != nil {
				c.String(http.StatusBadRequest, "Erro: tempo de preparo inválido.")
				return
			}
		}
		if s := strings.TrimSpace(c.PostForm("tempo_preparo_max")); s != "" {
			if tmax, err = strconv.Atoi(s); err != nil {
				c.String(http.StatusBadRequest, "Erro: tempo de preparo inválido.")
				return
			}
		}
		if tmin > tmax {
			c.String(http.StatusBadRequest, "Erro: tempo mínimo não pode ser maior que o máximo.")
			return
		}
	}

	senhaHash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao processar a senha. Tente novamente.")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		novoUsuario := model.User{
			Email:     email,
			SenhaHash: string(senhaHash),
			Tipo:      tipo,
		}
		if err := tx.Create(&novoUsuario).Error; err != nil {
			return err
		}

		if tipo == model.RoleCustomer {
			cliente := model.Customer{UserID: novoUsuario.ID, Nome: nome, Telefone: telefone}
			return tx.Create(&cliente).Error
		}
		restaurante := model.Restaurant{
			UserID:          novoUsuario.ID,
			Nome:            nome,
			Telefone:        telefone,
			Status:          model.RestaurantOpen,
			TempoPreparoMin: tmin,
			TempoPreparoMax: tmax,
		}
		return tx.Create(&restaurante).Error
	})
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "duplicate key") {
			c.String(http.StatusBadRequest, "Erro: este e-mail já está cadastrado.")
			return
		}
		c.String(http.StatusBadRequest, "Erro ao cadastrar: "+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// ShowLoginPage renderiza a página de login, preservando o destino `next`.
func (h *AuthHandler) ShowLoginPage(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	flashesError := sess.Flashes("error")
	sess.Save(c.Request, c.Writer)

	nextURL := c.DefaultQuery("next", "/")
	c.HTML(http.StatusOK, "login.html", gin.H{
		"IsLoggedIn":   false,
		"NextURL":      nextURL,
		"FlashesError": flashesError,
	})
}

// ProcessLoginForm verifica as credenciais. A mensagem de falha é a mesma
// para e-mail desconhecido e senha errada, sem sinal de enumeração.
func (h *AuthHandler) ProcessLoginForm(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	senha := c.PostForm("senha")
	nextURL := c.DefaultPostForm("next_url", "/")

	fail := func() {
		sess.AddFlash("error", "E-mail ou senha inválidos.")
		sess.Save(c.Request, c.Writer)
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(nextURL))
	}

	var usuario model.User
	result := database.DB.Where("email = ?", email).First(&usuario)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			fail()
			return
		}
		c.String(http.StatusInternalServerError, "Ocorreu um erro interno. Tente novamente.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senha)); err != nil {
		fail()
		return
	}

	sess.SetIdentity(usuario.ID, usuario.Tipo)
	if err := sess.Save(c.Request, c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "Erro ao iniciar a sessão. Tente novamente.")
		return
	}

	c.Redirect(http.StatusFound, nextURL)
}

// Logout encerra a sessão e volta para a home.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	sess.Destroy()
	if err := sess.Save(c.Request, c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "Erro ao fazer logout.")
		return
	}
	c.Redirect(http.StatusFound, "/")
}
