// /internal/model/address.go
package model

import "time"

// Address é um endereço de entrega de um cliente. Estado, quando informado,
// tem exatamente 2 letras (ex: AM).
type Address struct {
	ID          uint   `gorm:"primaryKey"`
	CustomerID  uint   `gorm:"not null;index"`
	Rua         string `gorm:"not null;size:255"`
	Numero      string `gorm:"not null;size:20"`
	Bairro      string `gorm:"size:100"`
	Cidade      string `gorm:"size:100"`
	Estado      string `gorm:"size:2"`
	CEP         string `gorm:"not null;size:10"`
	Complemento string `gorm:"size:100"`
	CreatedAt   time.Time
}
