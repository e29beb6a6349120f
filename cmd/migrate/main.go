package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"ordermanager/internal/app/dsn"
	"ordermanager/internal/app/repository"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.Open(dsnStr)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("Connected to database successfully")

	if err := repo.Migrate(); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("Database migration completed successfully")
}
