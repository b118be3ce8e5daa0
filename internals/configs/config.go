package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret    string
	SendgridKey  string
	MailFrom     string
	MailFromName string
	ContactTo    string
	FrontendURL  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SendgridKey = GetEnv("SENDGRID_API_KEY")
	MailFrom = GetEnv("MAIL_FROM")
	MailFromName = GetEnv("MAIL_FROM_NAME")
	ContactTo = GetEnv("CONTACT_TO", GetEnv("MAIL_FROM"))
	FrontendURL = GetEnv("FRONTEND_URL", "http://localhost:3000")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if SendgridKey == "" {
		log.Println("⚠️ SENDGRID_API_KEY is not set, outbound email disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
