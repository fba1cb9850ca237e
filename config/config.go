package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB opens the MySQL connection from environment configuration.
// DB_DSN wins when set; otherwise the DSN is assembled from the usual
// DB_USER/DB_PASS/DB_HOST/DB_PORT/DB_NAME variables.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		user := getenv("DB_USER", "root")
		pass := os.Getenv("DB_PASS")
		host := getenv("DB_HOST", "127.0.0.1")
		port := getenv("DB_PORT", "3306")
		name := getenv("DB_NAME", "venuehub")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, name)
	}

	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// StorageConfig holds the object-storage settings for image uploads.
// Works with AWS S3 or any S3-compatible endpoint (MinIO etc.).
type StorageConfig struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	PublicURL string
}

func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		Bucket:    os.Getenv("S3_BUCKET"),
		Region:    getenv("S3_REGION", "ap-northeast-2"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}
}

// Configured reports whether enough is set to talk to object storage.
func (c StorageConfig) Configured() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
