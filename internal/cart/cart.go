// /internal/cart/cart.go

// Package cart implementa o carrinho de compras guardado na sessão.
// Invariante: um carrinho nunca mistura itens de dois restaurantes.
package cart

import (
	"fmt"
	"strconv"
)

// Cart mapeia o id do item (como string, o mesmo formato gravado na sessão)
// para a quantidade, junto com o restaurante dono dos itens. RestaurantID
// zero significa carrinho sem dono (vazio).
type Cart struct {
	Items        map[string]int
	RestaurantID uint
}

func New() Cart {
	return Cart{Items: make(map[string]int)}
}

// Add incrementa em 1 a quantidade do item. Se o carrinho já contém itens de
// outro restaurante, ele é descartado antes.
func (c *Cart) Add(itemID uint, restaurantID uint) {
	if c.Items == nil || (c.RestaurantID != 0 && c.RestaurantID != restaurantID) {
		c.Items = make(map[string]int)
	}
	c.RestaurantID = restaurantID
	c.Items[strconv.FormatUint(uint64(itemID), 10)]++
}

// Remove apaga o item por completo, independente da quantidade.
func (c *Cart) Remove(itemID string) {
	delete(c.Items, itemID)
	c.dropOwnerIfEmpty()
}

// Decrease diminui a quantidade em 1; chegando a zero o item some. Item
// ausente é no-op.
func (c *Cart) Decrease(itemID string) {
	q, ok := c.Items[itemID]
	if !ok {
		return
	}
	if q <= 1 {
		delete(c.Items, itemID)
	} else {
		c.Items[itemID] = q - 1
	}
	c.dropOwnerIfEmpty()
}

func (c *Cart) dropOwnerIfEmpty() {
	if len(c.Items) == 0 {
		c.RestaurantID = 0
	}
}

// Empty informa se não há nada para comprar (sem itens ou sem restaurante).
func (c *Cart) Empty() bool {
	return len(c.Items) == 0 || c.RestaurantID == 0
}

// TotalQuantity soma as quantidades de todos os itens.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, q := range c.Items {
		total += q
	}
	return total
}

// ItemIDs devolve os ids distintos presentes no carrinho. Uma chave que não
// parseia como id só aparece se o cookie foi adulterado.
func (c *Cart) ItemIDs() ([]uint, error) {
	ids := make([]uint, 0, len(c.Items))
	for key := range c.Items {
		id64, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("id de item inválido no carrinho: %q", key)
		}
		ids = append(ids, uint(id64))
	}
	return ids, nil
}
