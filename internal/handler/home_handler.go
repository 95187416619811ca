// /internal/handler/home_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"

	"github.com/luanalauschner/Delivery/internal/database"
	"github.com/luanalauschner/Delivery/internal/model"
	"github.com/luanalauschner/Delivery/internal/session"
)

// HomeHandler agrupa as páginas públicas do catálogo.
type HomeHandler struct {
	Store *sessions.CookieStore
}

// ShowHomePage lista os restaurantes abertos. Usuário do tipo restaurante não
// tem home de cliente: vai direto para o painel.
func (h *HomeHandler) ShowHomePage(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	_, isLoggedIn := sess.UserID()
	if isLoggedIn && sess.Role() == model.RoleRestaurant {
		c.Redirect(http.StatusFound, "/restaurante")
		return
	}

	var restaurantes []model.Restaurant
	err := database.DB.
		Where("status = ?", model.RestaurantOpen).
		Order("nome").
		Find(&restaurantes).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar restaurantes.")
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Restaurantes": restaurantes,
		"IsLoggedIn":   isLoggedIn,
		"Role":         sess.Role(),
	})
}

// ShowRestaurantPage exibe o cardápio público de um restaurante: apenas os
// itens disponíveis, em ordem alfabética.
func (h *HomeHandler) ShowRestaurantPage(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	_, isLoggedIn := sess.UserID()
	if isLoggedIn && sess.Role() == model.RoleRestaurant {
		c.Redirect(http.StatusFound, "/restaurante")
		return
	}

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID de restaurante inválido.")
		return
	}
	rid := uint(id64)

	var restaurante model.Restaurant
	if err := database.DB.Where("user_id = ?", rid).First(&restaurante).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.String(http.StatusNotFound, "Restaurante não encontrado.")
			return
		}
		c.String(http.StatusInternalServerError, "Erro ao buscar restaurante.")
		return
	}

	var itens []model.MenuItem
	err = database.DB.
		Where("restaurant_id = ? AND disponivel = ?", rid, true).
		Order("nome").
		Find(&itens).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar o cardápio.")
		return
	}

	c.HTML(http.StatusOK, "restaurante.html", gin.H{
		"Restaurante": restaurante,
		"Itens":       itens,
		"IsLoggedIn":  isLoggedIn,
		"Role":        sess.Role(),
	})
}
