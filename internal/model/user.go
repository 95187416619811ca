// /internal/model/user.go
package model

import "time"

// Papéis aceitos no cadastro e gravados na sessão.
const (
	RoleCustomer   = "CUSTOMER"
	RoleRestaurant = "RESTAURANT"
)

// User é o registro de identidade. Cada usuário possui exatamente um perfil,
// Customer ou Restaurant, de acordo com o Tipo (nunca os dois).
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"unique;not null"`
	SenhaHash string `gorm:"not null"`
	Tipo      string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
}

// Customer é o perfil de cliente, um-para-um com User.
type Customer struct {
	UserID   uint   `gorm:"primaryKey"`
	Nome     string `gorm:"not null;size:100"`
	Telefone string `gorm:"size:20"`
}

// RestaurantOpen é o status que coloca o restaurante na vitrine pública.
const RestaurantOpen = "OPEN"

// Restaurant é o perfil de restaurante, um-para-um com User.
// TempoPreparoMin nunca pode ser maior que TempoPreparoMax.
type Restaurant struct {
	UserID          uint   `gorm:"primaryKey"`
	Nome            string `gorm:"not null;size:100"`
	Telefone        string `gorm:"size:20"`
	Status          string `gorm:"type:varchar(20);not null;default:'OPEN'"`
	TempoPreparoMin int    `gorm:"not null;default:20"`
	TempoPreparoMax int    `gorm:"not null;default:40"`
}
