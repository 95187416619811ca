// /internal/handler/address_handler.go
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/luanalauschner/Delivery/internal/database"
	"github.com/luanalauschner/Delivery/internal/model"
)

// AddressHandler agrupa o caderno de endereços do cliente.
type AddressHandler struct {
	Store *sessions.CookieStore
}

// List exibe os endereços do cliente logado, mais recentes primeiro.
func (h *AddressHandler) List(c *gin.Context) {
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

	c.HTML(http.StatusOK, "enderecos.html", gin.H{
		"Enderecos":  enderecos,
		"IsLoggedIn": true,
		"Role":       model.RoleCustomer,
	})
}

// Create cadastra um endereço novo. Rua, número e CEP são obrigatórios;
// estado, quando informado, tem que ter 2 letras.
func (h *AddressHandler) Create(c *gin.Context) {
	clienteID := currentUserID(c)

	rua := strings.TrimSpace(c.PostForm("rua"))
	numero := strings.TrimSpace(c.PostForm("numero"))
	bairro := strings.TrimSpace(c.PostForm("bairro"))
	cidade := strings.TrimSpace(c.PostForm("cidade"))
	estado := strings.ToUpper(strings.TrimSpace(c.PostForm("estado")))
	cep := strings.TrimSpace(c.PostForm("cep"))
	complemento := strings.TrimSpace(c.PostForm("complemento"))

	if rua == "" || numero == "" || cep == "" {
		c.String(http.StatusBadRequest, "Erro: rua, número e CEP são obrigatórios.")
		return
	}
	if estado != "" && len(estado) != 2 {
		c.String(http.StatusBadRequest, "Erro: estado deve ter 2 letras (ex: AM).")
		return
	}

	endereco := model.Address{
		CustomerID:  clienteID,
		Rua:         rua,
		Numero:      numero,
		Bairro:      bairro,
		Cidade:      cidade,
		Estado:      estado,
		CEP:         cep,
		Complemento: complemento,
	}
	if err := database.DB.Create(&endereco).Error; err != nil {
		c.String(http.StatusBadRequest, "Erro ao cadastrar endereço: "+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/enderecos")
}

// Delete remove um endereço do cliente logado. O filtro de posse vai na
// própria cláusula do DELETE.
func (h *AddressHandler) Delete(c *gin.Context) {
	clienteID := currentUserID(c)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "ID inválido.")
		return
	}

	err = database.DB.
		Where("id = ? AND customer_id = ?", uint(id64), clienteID).
		Delete(&model.Address{}).Error
	if err != nil {
		c.String(http.StatusBadRequest, "Erro ao deletar endereço: "+err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/enderecos")
}
