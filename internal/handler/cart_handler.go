// /internal/handler/cart_handler.go
package handler

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/luanalauschner/Delivery/internal/cart"
	"github.com/luanalauschner/Delivery/internal/checkout"
	"github.com/luanalauschner/Delivery/internal/database"
	"github.com/luanalauschner/Delivery/internal/model"
	"github.com/luanalauschner/Delivery/internal/session"
)

// CartItemView passa uma linha do carrinho para o template: o item resolvido
// contra o cardápio atual, a quantidade e o subtotal da linha (cotação viva,
// não é o preço congelado de pedido).
type CartItemView struct {
	Item     model.MenuItem
	Quantity int
	Subtotal float64
}

// CartHandler agrupa os handlers do carrinho e do checkout.
type CartHandler struct {
	Store  *sessions.CookieStore
	Engine *checkout.Engine
}

// AddToCart adiciona 1 unidade de um item ao carrinho da sessão. Itens de um
// restaurante diferente descartam o carrinho anterior.
func (h *CartHandler) AddToCart(c *gin.Context) {
	itemID64, err := strconv.ParseUint(c.PostForm("item_id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID do item inválido.")
		return
	}
	restID64, err := strconv.ParseUint(c.PostForm("restaurante_id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID do restaurante inválido.")
		return
	}
	itemID, restauranteID := uint(itemID64), uint(restID64)

	var item model.MenuItem
	err = database.DB.
		Where("id = ? AND restaurant_id = ? AND disponivel = ?", itemID, restauranteID, true).
		First(&item).Error
	if err != nil {
		c.String(http.StatusNotFound, "Item não encontrado ou indisponível.")
		return
	}

	sess := session.Load(h.Store, c.Request)
	crt := sess.Cart()
	crt.Add(itemID, restauranteID)
	sess.SetCart(crt)
	if err := sess.Save(c.Request, c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "Erro ao salvar o carrinho.")
		return
	}

	c.Redirect(http.StatusFound, "/restaurantes/"+strconv.FormatUint(restID64, 10))
}

// RemoveFromCart apaga o item inteiro do carrinho, independente da quantidade.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	crt := sess.Cart()
	crt.Remove(c.PostForm("item_id"))
	sess.SetCart(crt)
	if err := sess.Save(c.Request, c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "Erro ao atualizar o carrinho.")
		return
	}
	c.Redirect(http.StatusFound, "/carrinho")
}

// DecreaseQuantity diminui a quantidade de um item em 1.
func (h *CartHandler) DecreaseQuantity(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	crt := sess.Cart()
	crt.Decrease(c.PostForm("item_id"))
	sess.SetCart(crt)
	if err := sess.Save(c.Request, c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "Erro ao atualizar o carrinho.")
		return
	}
	c.Redirect(http.StatusFound, "/carrinho")
}

// quoteCart resolve o carrinho contra o cardápio atual e devolve as linhas
// com o subtotal vivo. Entradas apontando para itens que sumiram do banco são
// puladas em silêncio.
func quoteCart(crt cart.Cart) ([]CartItemView, float64, error) {
	ids, err := crt.ItemIDs()
	if err != nil || len(ids) == 0 {
		return nil, 0, err
	}

	var itens []model.MenuItem
	if err := database.DB.Where("id IN ?", ids).Find(&itens).Error; err != nil {
		return nil, 0, err
	}

	porID := make(map[string]model.MenuItem, len(itens))
	for _, item := range itens {
		porID[strconv.FormatUint(uint64(item.ID), 10)] = item
	}

	views := make([]CartItemView, 0, len(crt.Items))
	var subtotal float64
	for key, qtd := range crt.Items {
		item, found := porID[key]
		if !found {
			continue
		}
		linha := item.PrecoBase * float64(qtd)
		views = append(views, CartItemView{Item: item, Quantity: qtd, Subtotal: linha})
		subtotal += linha
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].Item.Nome < views[j].Item.Nome
	})
	return views, subtotal, nil
}

// ShowCartPage exibe o conteúdo do carrinho com a cotação viva.
func (h *CartHandler) ShowCartPage(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	_, isLoggedIn := sess.UserID()
	crt := sess.Cart()

	flashesError := sess.Flashes("error")
	sess.Save(c.Request, c.Writer)

	if crt.Empty() {
		c.HTML(http.StatusOK, "carrinho.html", gin.H{
			"Items":         []CartItemView{},
			"Subtotal":      0.0,
			"RestauranteID": uint(0),
			"IsLoggedIn":    isLoggedIn,
			"Role":          sess.Role(),
			"FlashesError":  flashesError,
		})
		return
	}

	views, subtotal, err := quoteCart(crt)
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar detalhes dos produtos.")
		return
	}

	c.HTML(http.StatusOK, "carrinho.html", gin.H{
		"Items":         views,
		"Subtotal":      subtotal,
		"RestauranteID": crt.RestaurantID,
		"IsLoggedIn":    isLoggedIn,
		"Role":          sess.Role(),
		"FlashesError":  flashesError,
	})
}

// ShowCheckoutPage exibe o resumo do pedido e os endereços do cliente.
// Carrinho vazio não é erro: volta para a home.
func (h *CartHandler) ShowCheckoutPage(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	crt := sess.Cart()
	if crt.Empty() {
		c.Redirect(http.StatusFound, "/")
		return
	}

	clienteID := currentUserID(c)

	var enderecos []model.Address
	err := database.DB.
		Where("customer_id = ?", clienteID).
		Order("id DESC").
		Find(&enderecos).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar endereços.")
		return
	}

	views, subtotal, err := quoteCart(crt)
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao buscar detalhes dos produtos.")
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Items":       views,
		"Subtotal":    subtotal,
		"TaxaEntrega": checkout.TaxaEntrega,
		"Total":       subtotal + checkout.TaxaEntrega,
		"Enderecos":   enderecos,
		"IsLoggedIn":  true,
		"Role":        sess.Role(),
	})
}

// ProcessCheckout fecha o pedido via checkout.Engine e limpa o carrinho.
func (h *CartHandler) ProcessCheckout(c *gin.Context) {
	sess := session.Load(h.Store, c.Request)
	crt := sess.Cart()
	if crt.Empty() {
		c.Redirect(http.StatusFound, "/")
		return
	}

	enderecoID64, err := strconv.ParseUint(c.PostForm("endereco_id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Erro: endereço inválido.")
		return
	}
	metodo := c.PostForm("metodo")

	// Validação, integridade e falha de banco acabam todas em 400 com a
	// causa anexada; a transação já foi desfeita pelo Engine.
	pedido, err := h.Engine.PlaceOrder(currentUserID(c), crt, uint(enderecoID64), metodo)
	if err != nil {
		c.String(http.StatusBadRequest, "Erro ao finalizar pedido: "+err.Error())
		return
	}

	sess.ClearCart()
	if err := sess.Save(c.Request, c.Writer); err != nil {
		// O pedido já está gravado; seguir para a página dele mesmo assim.
		c.Redirect(http.StatusFound, "/pedido/"+strconv.FormatUint(uint64(pedido.ID), 10))
		return
	}

	c.Redirect(http.StatusFound, "/pedido/"+strconv.FormatUint(uint64(pedido.ID), 10))
}
