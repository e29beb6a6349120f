package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ordermanager/internal/app/config"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config *config.Config
	Router *gin.Engine
}

func NewApp(c *config.Config, r *gin.Engine) *Application {
	return &Application{
		Config: c,
		Router: r,
	}
}

// RunApp обслуживает HTTP до SIGINT/SIGTERM или отмены ctx и дожидается текущих запросов
func (a *Application) RunApp(ctx context.Context) error {
	logrus.Info("Server start up")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on %s", serverAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
