package main

import (
	"os"
	"valet/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Valet averages API
// @version 1.0
// @description Average conversion rates computed from Bank of Canada Valet observations.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped")
		os.Exit(1)
	}
}
