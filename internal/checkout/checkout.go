// /internal/checkout/checkout.go

// Package checkout implementa o núcleo de fechamento de pedido: congela os
// preços do carrinho e grava Order + OrderLines em uma única transação.
package checkout

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luanalauschner/Delivery/internal/cart"
	"github.com/luanalauschner/Delivery/internal/model"
)

// TaxaEntrega é fixa no MVP (não depende de distância nem do restaurante).
const TaxaEntrega = 7.00

var (
	ErrInvalidPaymentMethod = errors.New("método de pagamento inválido")
	ErrEmptyCart            = errors.New("carrinho vazio")
	ErrItemUnavailable      = errors.New("item inválido no carrinho")
	ErrOrderNotFound        = errors.New("pedido não encontrado, não pertence a este restaurante ou não pode ser atualizado")
)

type Engine struct {
	DB *gorm.DB
}

// PlaceOrder fecha o pedido do carrinho: busca os preços atuais em uma única
// consulta, calcula os totais e insere o Order e suas OrderLines atomicamente.
// O preço unitário gravado em cada linha é o do momento do checkout; mudanças
// posteriores no cardápio não afetam o pedido. O pagamento é simulado e nasce
// aprovado. Qualquer falha desfaz a transação inteira: nunca persiste pedido
// parcial.
//
// A posse do endereço não é conferida contra o cliente (comportamento herdado,
// ver DESIGN.md).
func (e *Engine) PlaceOrder(customerID uint, crt cart.Cart, addressID uint, metodo string) (model.Order, error) {
	if metodo != model.PaymentPix && metodo != model.PaymentCard {
		return model.Order{}, ErrInvalidPaymentMethod
	}
	if crt.Empty() {
		return model.Order{}, ErrEmptyCart
	}

	ids, err := crt.ItemIDs()
	if err != nil {
		return model.Order{}, ErrItemUnavailable
	}

	var order model.Order
	err = e.DB.Transaction(func(tx *gorm.DB) error {
		var itens []model.MenuItem
		if err := tx.Select("id", "preco_base").Where("id IN ?", ids).Find(&itens).Error; err != nil {
			return err
		}
		precos := make(map[string]float64, len(itens))
		for _, item := range itens {
			precos[strconv.FormatUint(uint64(item.ID), 10)] = item.PrecoBase
		}

		// Qualquer item do carrinho sem preço correspondente aborta o
		// pedido inteiro; não existe pedido parcial.
		var subtotal float64
		for key, qtd := range crt.Items {
			preco, ok := precos[key]
			if !ok {
				return ErrItemUnavailable
			}
			subtotal += preco * float64(qtd)
		}
		total := subtotal + TaxaEntrega

		order = model.Order{
			Reference:       uuid.New().String(),
			CustomerID:      customerID,
			RestaurantID:    crt.RestaurantID,
			AddressID:       addressID,
			Status:          model.StatusAccepted,
			Subtotal:        subtotal,
			TaxaEntrega:     TaxaEntrega,
			Total:           total,
			MetodoPagamento: metodo,
			StatusPagamento: model.PaymentPaid,
			ValorPago:       total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for key, qtd := range crt.Items {
			id64, _ := strconv.ParseUint(key, 10, 32)
			preco := precos[key]
			line := model.OrderLine{
				OrderID:       order.ID,
				MenuItemID:    uint(id64),
				Quantidade:    qtd,
				PrecoUnitario: preco,
				TotalLinha:    preco * float64(qtd),
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// MarkDelivered marca o pedido como entregue e registra o horário. As guardas
// ficam na própria cláusula do UPDATE (id, restaurante dono e status ainda
// ACCEPTED); zero linhas afetadas vira uma única falha, sem distinguir o
// motivo para o chamador. Um pedido já entregue ou cancelado não é elegível,
// então a transição nunca se aplica duas vezes.
func (e *Engine) MarkDelivered(orderID, restaurantID uint) error {
	now := time.Now()
	result := e.DB.Model(&model.Order{}).
		Where("id = ? AND restaurant_id = ? AND status = ?", orderID, restaurantID, model.StatusAccepted).
		Updates(map[string]interface{}{
			"status":      model.StatusDelivered,
			"entregue_em": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
