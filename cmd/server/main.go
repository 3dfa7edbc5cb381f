package main

import (
	"os"

	"healthquest/backend/internal/app"
)

// @title           HealthQuestAI API
// @version         1.0
// @description     Backend for the HealthQuestAI health and nutrition assistant.
// @BasePath        /api/v1
func main() {
	os.Exit(app.Run())
}
