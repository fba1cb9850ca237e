package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/venuehub/backend/config"
	"github.com/venuehub/backend/models"
	"github.com/venuehub/backend/router"
	"github.com/venuehub/backend/storage"
	"github.com/venuehub/backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	store := initStorage()

	r := router.SetupRouter(db, store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func initStorage() storage.ObjectStorage {
	storageCfg := config.LoadStorageConfig()
	if !storageCfg.Configured() {
		utils.InfoLogger.Println("Warning: object storage not configured, uploads are kept in memory")
		return storage.NewMemoryStorage()
	}

	store, err := storage.NewS3Storage(storageCfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialize object storage: %v", err)
	}
	return store
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.ChatRoom{},
		&models.ChatMessage{},
		&models.Notification{},
		&models.Customer{},
		&models.Post{},
		&models.Supplier{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
