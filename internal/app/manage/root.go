// Package manage содержит команды администрирования каталога и пользователей.
package manage

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ordermanager/internal/app/repository"
)

// ImageUploader сохраняет изображения услуг
type ImageUploader interface {
	UploadFile(ctx context.Context, serviceID uint, fileData []byte, originalFilename string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

// Deps открывает зависимости лениво, чтобы --help не требовал базы
type Deps struct {
	Repository func() (*repository.Repository, error)
	Images     func(ctx context.Context) (ImageUploader, error)
}

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	skipMark = color.New(color.FgBlue).Sprint("=")
)

// NewRootCmd собирает дерево команд manage
func NewRootCmd(deps Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "manage",
		Short:         "Администрирование сервиса заказов",
		Long:          "Создание пользователей, параметров и услуг, загрузка каталога и миграции базы.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd(deps))
	rootCmd.AddCommand(userCmd(deps))
	rootCmd.AddCommand(parameterCmd(deps))
	rootCmd.AddCommand(serviceCmd(deps))
	rootCmd.AddCommand(loadCmd(deps))

	return rootCmd
}

// Fail печатает ошибку команды красным
func Fail(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed).Sprint("✗"), err)
}

func parseID(raw, what string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", what, raw)
	}
	return uint(id), nil
}

func migrateCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Создать или обновить таблицы",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			if err := repo.Migrate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Database migration completed\n", okMark)
			return nil
		},
	}
}
