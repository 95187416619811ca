// /internal/database/database_test.go
package database

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/joho/godotenv"
)

// --- Funções Auxiliares ---

// getProjectRootTest: Encontra a raiz do projeto.
func getProjectRootTest() string {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		// Panic aqui é aceitável em um helper de teste se algo muito errado ocorrer
		log.Panic("Não foi possível obter informações do chamador no teste")
	}
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// loadEnvForTest: Carrega o arquivo .env; sem DATABASE_URL o teste é pulado.
func loadEnvForTest(t *testing.T) {
	t.Helper()
	_ = godotenv.Load(filepath.Join(getProjectRootTest(), ".env"))
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL não configurado; pulando teste de banco")
	}
}

// --- Teste Principal para ConnectDB ---

func TestConnectDB(t *testing.T) {
	// Garante que a variável DB seja resetada após o teste
	// para não interferir em outros testes
	originalDB := DB
	defer func() { DB = originalDB }()

	loadEnvForTest(t)

	// Se ConnectDB falhar ela chama log.Fatalf e o processo de teste inteiro
	// para, o que é um resultado aceitável para um erro crítico de conexão.
	ConnectDB()

	if DB == nil {
		t.Fatal("ConnectDB completou, mas database.DB ainda é nil")
	}

	sqlDB, err := DB.DB()
	if err != nil {
		t.Fatalf("Falha ao obter o objeto sql.DB do GORM: %v", err)
	}

	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("Falha ao fazer ping no banco de dados após ConnectDB: %v", err)
	}

	t.Log("Teste ConnectDB passou: Conexão estabelecida e Ping bem-sucedido.")
}
