// /internal/database/seed.go
package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/luanalauschner/Delivery/internal/model"
)

// SeedDemo cria um restaurante de demonstração com cardápio, para facilitar
// testes manuais. A função é idempotente: roda de novo sem duplicar nada.
func SeedDemo() {
	var user model.User
	result := DB.Where("email = ?", "cantina@delivery.dev").First(&user)

	if result.Error != nil && result.Error == gorm.ErrRecordNotFound {
		log.Println("Restaurante de demonstração não encontrado, criando um novo...")

		senhaHash, err := bcrypt.GenerateFromPassword([]byte("senhaforte123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Falha ao criar hash da senha do restaurante demo: %v", err)
		}

		err = DB.Transaction(func(tx *gorm.DB) error {
			demo := model.User{
				Email:     "cantina@delivery.dev",
				SenhaHash: string(senhaHash),
				Tipo:      model.RoleRestaurant,
			}
			if err := tx.Create(&demo).Error; err != nil {
				return err
			}

			rest := model.Restaurant{
				UserID:          demo.ID,
				Nome:            "Cantina da Vila",
				Status:          model.RestaurantOpen,
				TempoPreparoMin: 20,
				TempoPreparoMax: 40,
			}
			if err := tx.Create(&rest).Error; err != nil {
				return err
			}

			itens := []model.MenuItem{
				{RestaurantID: demo.ID, Nome: "X-Salada", Descricao: "Pão, carne, queijo e salada", PrecoBase: 12.50, Disponivel: true},
				{RestaurantID: demo.ID, Nome: "Suco de Cupuaçu", Descricao: "Copo 300ml", PrecoBase: 3.00, Disponivel: true},
				{RestaurantID: demo.ID, Nome: "Tacacá", Descricao: "Com jambu e camarão", PrecoBase: 18.00, Disponivel: true},
			}
			return tx.Create(&itens).Error
		})
		if err != nil {
			log.Fatalf("Falha ao criar o restaurante de demonstração: %v", err)
		}
		log.Println("Restaurante de demonstração criado com sucesso.")
	} else {
		log.Println("Restaurante de demonstração já existe.")
	}
}
