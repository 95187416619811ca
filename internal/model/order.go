// /internal/model/order.go
package model

import "time"

// OrderStatus define os possíveis status de um pedido. As transições só andam
// para frente: ACCEPTED -> DELIVERED, com CANCELLED como alternativa final.
type OrderStatus string

const (
	StatusAccepted  OrderStatus = "ACCEPTED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Métodos e status de pagamento. O pagamento é simulado no checkout: todo
// pedido nasce com StatusPagamento PAID.
const (
	PaymentPix  = "PIX"
	PaymentCard = "CARD"
	PaymentPaid = "PAID"
)

// Order é criado atomicamente a partir do carrinho no momento do checkout.
// Os valores monetários são congelados na criação; depois disso só mudam o
// Status e o EntregueEm.
type Order struct {
	ID              uint        `gorm:"primaryKey"`
	Reference       string      `gorm:"uniqueIndex;size:64"` // ID único para conciliação
	CustomerID      uint        `gorm:"not null;index"`
	RestaurantID    uint        `gorm:"not null;index"`
	AddressID       uint        `gorm:"not null"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;default:'ACCEPTED'"`
	Subtotal        float64     `gorm:"not null"`
	TaxaEntrega     float64     `gorm:"not null"`
	Total           float64     `gorm:"not null"`
	MetodoPagamento string      `gorm:"type:varchar(10);not null"`
	StatusPagamento string      `gorm:"type:varchar(10);not null"`
	ValorPago       float64     `gorm:"not null"`
	RealizadoEm     time.Time   `gorm:"autoCreateTime"`
	EntregueEm      *time.Time
	Lines           []OrderLine `gorm:"foreignKey:OrderID"`
}

// OrderLine congela um item do cardápio dentro de um Order: quantidade e
// preço unitário no momento da compra (e não o preço atual do cardápio).
type OrderLine struct {
	ID            uint    `gorm:"primaryKey"`
	OrderID       uint    `gorm:"not null;index"`
	MenuItemID    uint    `gorm:"not null"`
	Quantidade    int     `gorm:"not null"`
	PrecoUnitario float64 `gorm:"not null"`
	TotalLinha    float64 `gorm:"not null"`
}
