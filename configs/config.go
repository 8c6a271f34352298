package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// CommissionRate is the platform's cut of a booking, snapshotted onto each
// booking at creation time.
func CommissionRate() float64 {
	rate, err := strconv.ParseFloat(Config("PLATFORM_COMMISSION_RATE"), 64)
	if err != nil || rate < 0 || rate >= 1 {
		return 0.20
	}
	return rate
}

// SessionCancelGraceHours bounds how long after creation a session can
// still be cancelled.
func SessionCancelGraceHours() int {
	hours, err := strconv.Atoi(Config("SESSION_CANCEL_GRACE_HOURS"))
	if err != nil || hours <= 0 {
		return 24
	}
	return hours
}
