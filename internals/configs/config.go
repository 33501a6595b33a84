package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	MidtransServerKey string
	SendgridAPIKey    string
	MailFrom          string
	FrontendURL       string
	UploadDir         string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	SendgridAPIKey = GetEnv("SENDGRID_API_KEY")
	MailFrom = GetEnv("MAIL_FROM", "no-reply@campushub.ac.in")
	FrontendURL = GetEnv("FRONTEND_URL", "http://localhost:5173")
	UploadDir = GetEnv("UPLOAD_DIR", "uploads")

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
