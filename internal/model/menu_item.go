// /internal/model/menu_item.go
package model

import "time"

// MenuItem representa um item do cardápio de um restaurante.
// A exclusão é sempre lógica (Disponivel=false) para preservar as referências
// históricas em OrderLine.
type MenuItem struct {
	ID           uint    `gorm:"primaryKey"`
	RestaurantID uint    `gorm:"not null;index"`
	Nome         string  `gorm:"not null;size:100"`
	Descricao    string  `gorm:"type:text"`
	PrecoBase    float64 `gorm:"not null"`
	Disponivel   bool    `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
