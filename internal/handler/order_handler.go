// /internal/handler/order_handler.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"

	"github.com/luanalauschner/Delivery/internal/database"
	"github.com/luanalauschner/Delivery/internal/model"
	"github.com/luanalauschner/Delivery/internal/session"
)

// OrderHandler agrupa as páginas de consulta de pedidos do lado do cliente.
type OrderHandler struct {
	Store *sessions.CookieStore
}

// OrderRow é um pedido com o nome do restaurante resolvido para exibição.
type OrderRow struct {
	model.Order
	RestauranteNome string
}

// OrderLineRow é uma linha de pedido com o nome do item resolvido. Quantidade
// e total vêm do snapshot do pedido, nunca do preço atual do cardápio.
type OrderLineRow struct {
	Nome       string
	Quantidade int
	TotalLinha float64
}

func fetchOrderLines(pedidoID uint) ([]OrderLineRow, error) {
	var linhas []OrderLineRow
	err := database.DB.Table("order_lines").
		Select("menu_items.nome, order_lines.quantidade, order_lines.total_linha").
		Joins("JOIN menu_items ON menu_items.id = order_lines.menu_item_id").
		Where("order_lines.order_id = ?", pedidoID).
		Scan(&linhas).Error
	return linhas, err
}

// ShowOrderPage exibe o comprovante de um pedido recém-criado.
func (h *OrderHandler) ShowOrderPage(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	_, isLoggedIn := sess.UserID()

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID de pedido inválido.")
		return
	}

	var pedido OrderRow
	err = database.DB.Model(&model.Order{}).
		Select("orders.*, restaurants.nome AS restaurante_nome").
		Joins("JOIN restaurants ON restaurants.user_id = orders.restaurant_id").
		Where("orders.id = ?", uint(id64)).
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

	c.HTML(http.StatusOK, "pedido.html", gin.H{
		"Pedido":     pedido,
		"Itens":      linhas,
		"IsLoggedIn": isLoggedIn,
		"Role":       sess.Role(),
	})
}

// MyOrderRow resume um pedido na listagem do cliente.
type MyOrderRow struct {
	ID              uint
	RealizadoEm     time.Time
	Status          model.OrderStatus
	Total           float64
	EntregueEm      *time.Time
	RestauranteNome string
}

// ListMyOrders lista os pedidos do cliente logado, mais recentes primeiro.
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	clienteID := currentUserID(c)

	var pedidos []MyOrderRow
	err := database.DB.Model(&model.Order{}).
		Select("orders.id, orders.realizado_em, orders.status, orders.total, orders.entregue_em, restaurants.nome AS restaurante_nome").
		Joins("JOIN restaurants ON restaurants.user_id = orders.restaurant_id").
		Where("orders.customer_id = ?", clienteID).
		Order("orders.realizado_em DESC").
		Scan(&pedidos).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar pedidos.")
		return
	}

	c.HTML(http.StatusOK, "meus_pedidos.html", gin.H{
		"Pedidos":    pedidos,
		"IsLoggedIn": true,
		"Role":       model.RoleCustomer,
	})
}

// ShowMyOrder exibe o detalhe de um pedido do cliente logado. O filtro de
// posse fica na própria consulta.
func (h *OrderHandler) ShowMyOrder(c *gin.Context) {
	clienteID := currentUserID(c)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID de pedido inválido.")
		return
	}

	var pedido OrderRow
	err = database.DB.Model(&model.Order{}).
		Select("orders.*, restaurants.nome AS restaurante_nome").
		Joins("JOIN restaurants ON restaurants.user_id = orders.restaurant_id").
		Where("orders.id = ? AND orders.customer_id = ?", uint(id64), clienteID).
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

	c.HTML(http.StatusOK, "meu_pedido_detalhe.html", gin.H{
		"Pedido":     pedido,
		"Itens":      linhas,
		"IsLoggedIn": true,
		"Role":       model.RoleCustomer,
	})
}
