// /cmd/web/main.go
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"github.com/luanalauschner/Delivery/internal/checkout"
	"github.com/luanalauschner/Delivery/internal/database"
	"github.com/luanalauschner/Delivery/internal/handler"
	"github.com/luanalauschner/Delivery/internal/model"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado, usando variáveis do ambiente.")
	}

	database.ConnectDB()
	if os.Getenv("SEED_DEMO") == "true" {
		database.SeedDemo()
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET não encontrado no .env")
	}
	store := sessions.NewCookieStore([]byte(sessionSecret))

	engine := &checkout.Engine{DB: database.DB}

	authHandler := &handler.AuthHandler{Store: store}
	homeHandler := &handler.HomeHandler{Store: store}
	cartHandler := &handler.CartHandler{Store: store, Engine: engine}
	orderHandler := &handler.OrderHandler{Store: store}
	restHandler := &handler.RestaurantHandler{Store: store, Engine: engine}
	addrHandler := &handler.AddressHandler{Store: store}

	router := gin.Default()
	router.LoadHTMLGlob("internal/view/templates/*")

	// Catálogo público
	router.GET("/", homeHandler.ShowHomePage)
	router.GET("/restaurantes/:id", homeHandler.ShowRestaurantPage)

	// Carrinho (sessão, sem login)
	router.POST("/carrinho/add", cartHandler.AddToCart)
	router.POST("/carrinho/remove", cartHandler.RemoveFromCart)
	router.POST("/carrinho/decrease", cartHandler.DecreaseQuantity)
	router.GET("/carrinho", cartHandler.ShowCartPage)

	// Autenticação
	router.GET("/cadastro", authHandler.ShowCadastroPage)
	router.POST("/cadastro", authHandler.ProcessCadastroForm)
	router.GET("/login", authHandler.ShowLoginPage)
	router.POST("/login", authHandler.ProcessLoginForm)
	router.GET("/logout", authHandler.Logout)

	// Comprovante do pedido
	router.GET("/pedido/:id", orderHandler.ShowOrderPage)

	// Rotas do cliente
	cliente := router.Group("")
	cliente.Use(authHandler.RequireRole(model.RoleCustomer))
	{
		cliente.GET("/checkout", cartHandler.ShowCheckoutPage)
		cliente.POST("/checkout", cartHandler.ProcessCheckout)
		cliente.GET("/enderecos", addrHandler.List)
		cliente.POST("/enderecos", addrHandler.Create)
		cliente.POST("/enderecos/:id/delete", addrHandler.Delete)
		cliente.GET("/meus-pedidos", orderHandler.ListMyOrders)
		cliente.GET("/meus-pedidos/:id", orderHandler.ShowMyOrder)
	}

	// Rotas do restaurante
	restaurante := router.Group("/restaurante")
	restaurante.Use(authHandler.RequireRole(model.RoleRestaurant))
	{
		restaurante.GET("", restHandler.ShowPanel)
		restaurante.GET("/pedidos", restHandler.ListOrders)
		restaurante.GET("/pedidos/:id", restHandler.ShowOrder)
		restaurante.POST("/pedidos/:id/entregar", restHandler.MarkDelivered)
		restaurante.GET("/cardapio", restHandler.ShowMenu)
		restaurante.GET("/cardapio/novo", restHandler.ShowNewItemForm)
		restaurante.POST("/cardapio/novo", restHandler.CreateItem)
		restaurante.GET("/cardapio/:id/editar", restHandler.ShowEditItemForm)
		restaurante.POST("/cardapio/:id/editar", restHandler.UpdateItem)
		restaurante.POST("/cardapio/:id/delete", restHandler.DeactivateItem)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Servidor rodando na porta %s", port)
	router.Run(":" + port)
}
