package initializers

import (
	"github.com/Kariqs/amexan-store/utils"
	"github.com/joho/godotenv"
)

// LoadEnv reads .env when present. Variables already set in the environment win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file loaded", map[string]any{"reason": err.Error()})
	}
}
