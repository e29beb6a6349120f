package main

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"ordermanager/internal/app/config"
	"ordermanager/internal/app/manage"
	"ordermanager/internal/app/repository"
	"ordermanager/internal/app/storage"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	if err := config.SetupLogging(cfg.Log); err != nil {
		logrus.Fatal(err)
	}

	deps := manage.Deps{
		Repository: func() (*repository.Repository, error) {
			if cfg.DSN == "" {
				return nil, errors.New("DSN string is empty, check DB_HOST and DB_NAME")
			}
			return repository.Open(cfg.DSN)
		},
		Images: func(ctx context.Context) (manage.ImageUploader, error) {
			if !cfg.MinIO.Enabled() {
				return nil, errors.New("MINIO_ENDPOINT is not set")
			}
			return storage.NewMinIOClient(ctx, cfg.MinIO)
		},
	}

	if err := manage.NewRootCmd(deps).Execute(); err != nil {
		manage.Fail(os.Stderr, err)
		os.Exit(1)
	}
}
