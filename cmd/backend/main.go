package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"ordermanager/internal/api"
)

// @title Order Manager API
// @version 1.0
// @description API заказов услуг: каталог, оформление и выполнение заказов
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logrus.Info("App start")
	if err := api.StartServer(context.Background()); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("App terminated")
}
