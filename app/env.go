package app

import (
	"os"

	"github.com/joho/godotenv"

	"apod-wallpaper/utils"
)

// LoadEnv loads variables from envPath outside production.
// Values in the file override the process environment; a missing file is not an error.
func LoadEnv(envPath string) {
	if os.Getenv("ENV") == "production" {
		return
	}

	if err := godotenv.Overload(envPath); err != nil {
		utils.LogWarn("%s not loaded, using system environment variables (%v)", envPath, err)
		return
	}
	utils.LogInfo("Loaded environment variables from %s", envPath)
}
