// /internal/handler/restaurant_handler.go
package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"

	"github.com/luanalauschner/Delivery/internal/checkout"
	"github.com/luanalauschner/Delivery/internal/database"
	"github.com/luanalauschner/Delivery/internal/model"
)

// RestaurantHandler agrupa o painel do restaurante: pedidos recebidos e
// gerenciamento do cardápio.
type RestaurantHandler struct {
	Store  *sessions.CookieStore
	Engine *checkout.Engine
}

// ShowPanel renderiza o painel principal do restaurante logado.
func (h *RestaurantHandler) ShowPanel(c *gin.Context) {
	rid := currentUserID(c)

	var restaurante model.Restaurant
	if err := database.DB.Where("user_id = ?", rid).First(&restaurante).Error; err != nil {
		c.String(http.StatusBadRequest, "Restaurante não encontrado para este usuário.")
		return
	}

	c.HTML(http.StatusOK, "restaurante_home.html", gin.H{
		"Restaurante": restaurante,
		"IsLoggedIn":  true,
		"Role":        model.RoleRestaurant,
	})
}

// RestaurantOrderRow resume um pedido recebido, com o nome do cliente.
type RestaurantOrderRow struct {
	ID          uint
	RealizadoEm time.Time
	Status      model.OrderStatus
	Total       float64
	ClienteNome string
}

// ListOrders lista os pedidos recebidos pelo restaurante, recentes primeiro.
func (h *RestaurantHandler) ListOrders(c *gin.Context) {
	rid := currentUserID(c)

	var pedidos []RestaurantOrderRow
	err := database.DB.Model(&model.Order{}).
		Select("orders.id, orders.realizado_em, orders.status, orders.total, customers.nome AS cliente_nome").
		Joins("JOIN customers ON customers.user_id = orders.customer_id").
		Where("orders.restaurant_id = ?", rid).
		Order("orders.realizado_em DESC").
		Scan(&pedidos).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar pedidos.")
		return
	}

	c.HTML(http.StatusOK, "painel_pedidos.html", gin.H{
		"Pedidos":    pedidos,
		"IsLoggedIn": true,
		"Role":       model.RoleRestaurant,
	})
}

// ShowOrder exibe o detalhe de um pedido recebido. O filtro de posse fica na
// própria consulta; pedido de outro restaurante é 404.
func (h *RestaurantHandler) ShowOrder(c *gin.Context) {
	rid := currentUserID(c)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID de pedido inválido.")
		return
	}

	var pedido RestaurantOrderRow
	err = database.DB.Model(&model.Order{}).
		Select("orders.id, orders.realizado_em, orders.status, orders.total, customers.nome AS cliente_nome").
		Joins("JOIN customers ON customers.user_id = orders.customer_id").
		Where("orders.id = ? AND orders.restaurant_id = ?", uint(id64), rid).
		Take(&pedido).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.String(http.StatusNotFound, "Pedido não encontrado.")
			return
		}
		c.String(http.StatusInternalServerError, "Erro ao buscar pedido.")
		return
	}

	linhas, err := fetchOrderLines(pedido.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar itens do pedido.")
		return
	}

	c.HTML(http.StatusOK, "pedido_detalhe_restaurante.html", gin.H{
		"Pedido":     pedido,
		"Itens":      linhas,
		"IsLoggedIn": true,
		"Role":       model.RoleRestaurant,
	})
}

// MarkDelivered marca um pedido como entregue via checkout.Engine.
func (h *RestaurantHandler) MarkDelivered(c *gin.Context) {
	rid := currentUserID(c)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID de pedido inválido.")
		return
	}

	if err := h.Engine.MarkDelivered(uint(id64), rid); err != nil {
		if err == checkout.ErrOrderNotFound {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		c.String(http.StatusBadRequest, "Erro ao atualizar pedido: "+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/restaurante/pedidos")
}

// ShowMenu lista o cardápio completo do restaurante, inclusive itens
// desativados.
func (h *RestaurantHandler) ShowMenu(c *gin.Context) {
	rid := currentUserID(c)

	var itens []model.MenuItem
	err := database.DB.
		Where("restaurant_id = ?", rid).
		Order("nome").
		Find(&itens).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar o cardápio.")
		return
	}

	c.HTML(http.StatusOK, "restaurante_cardapio.html", gin.H{
		"Itens":      itens,
		"IsLoggedIn": true,
		"Role":       model.RoleRestaurant,
	})
}

// ShowNewItemForm exibe o formulário de criação de item.
func (h *RestaurantHandler) ShowNewItemForm(c *gin.Context) {
	c.HTML(http.StatusOK, "restaurante_cardapio_form.html", gin.H{
		"Item":       nil,
		"IsLoggedIn": true,
		"Role":       model.RoleRestaurant,
	})
}

// parseItemForm valida nome e preço do formulário de item do cardápio.
// Preço tem que parsear como decimal positivo.
func parseItemForm(c *gin.Context) (nome, descricao string, preco float64, disponivel bool, ok bool) {
	nome = strings.TrimSpace(c.PostForm("nome"))
	descricao = strings.TrimSpace(c.PostForm("descricao"))
	disponivel = c.PostForm("disponivel") == "on"

	if nome == "" {
		c.String(http.StatusBadRequest, "Erro: nome é obrigatório.")
		return
	}

	var err error
	preco, err = strconv.ParseFloat(strings.TrimSpace(c.PostForm("preco_base")), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Erro: preço inválido.")
		return
	}
	if preco <= 0 {
		c.String(http.StatusBadRequest, "Erro: preço deve ser maior que zero.")
		return
	}

	ok = true
	return
}

// CreateItem processa o formulário de novo item do cardápio.
func (h *RestaurantHandler) CreateItem(c *gin.Context) {
	rid := currentUserID(c)

	nome, descricao, preco, disponivel, ok := parseItemForm(c)
	if !ok {
		return
	}

	item := model.MenuItem{
		RestaurantID: rid,
		Nome:         nome,
		Descricao:    descricao,
		PrecoBase:    preco,
		Disponivel:   disponivel,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.String(http.StatusBadRequest, "Erro ao criar item: "+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/restaurante/cardapio")
}

// ShowEditItemForm busca um item do próprio restaurante para edição.
func (h *RestaurantHandler) ShowEditItemForm(c *gin.Context) {
	rid := currentUserID(c)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID inválido.")
		return
	}

	var item model.MenuItem
	err = database.DB.
		Where("id = ? AND restaurant_id = ?", uint(id64), rid).
		First(&item).Error
	if err != nil {
		c.String(http.StatusNotFound, "Item não encontrado.")
		return
	}

	c.HTML(http.StatusOK, "restaurante_cardapio_form.html", gin.H{
		"Item":       item,
		"IsLoggedIn": true,
		"Role":       model.RoleRestaurant,
	})
}

// UpdateItem atualiza um item do cardápio. O filtro de posse vai na mesma
// cláusula do UPDATE; zero linhas afetadas é 404.
func (h *RestaurantHandler) UpdateItem(c *gin.Context) {
	rid := currentUserID(c)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID inválido.")
		return
	}

	nome, descricao, preco, disponivel, ok := parseItemForm(c)
	if !ok {
		return
	}

	result := database.DB.Model(&model.MenuItem{}).
		Where("id = ? AND restaurant_id = ?", uint(id64), rid).
		Updates(map[string]interface{}{
			"nome":       nome,
			"descricao":  descricao,
			"preco_base": preco,
			"disponivel": disponivel,
		})
	if result.Error != nil {
		c.String(http.StatusBadRequest, "Erro ao atualizar item: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		c.String(http.StatusNotFound, "Item não encontrado.")
		return
	}

	c.Redirect(http.StatusFound, "/restaurante/cardapio")
}

// DeactivateItem faz a exclusão lógica do item (disponivel=false). DELETE de
// verdade quebraria as FKs em order_lines.
func (h *RestaurantHandler) DeactivateItem(c *gin.Context) {
	rid := currentUserID(c)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID inválido.")
		return
	}

	result := database.DB.Model(&model.MenuItem{}).
		Where("id = ? AND restaurant_id = ?", uint(id64), rid).
		Update("disponivel", false)
	if result.Error != nil {
		c.String(http.StatusBadRequest, "Erro ao desativar item: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		c.String(http.StatusNotFound, "Item não encontrado.")
		return
	}

	c.Redirect(http.StatusFound, "/restaurante/cardapio")
}
