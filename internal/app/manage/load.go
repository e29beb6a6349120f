package manage

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/ds"
	"ordermanager/internal/app/repository"
)

// Catalog описывает услуги и их параметры для загрузки из YAML
type Catalog struct {
	Services []CatalogService `yaml:"services"`
}

type CatalogService struct {
	Title      string             `yaml:"title"`
	Parameters []CatalogParameter `yaml:"parameters"`
}

type CatalogParameter struct {
	Title string           `yaml:"title"`
	Type  ds.ParameterType `yaml:"type"`
}

// LoadStats считает объекты, затронутые загрузкой
type LoadStats struct {
	Services    int
	Assignments int
}

// ParseCatalog читает YAML и проверяет типы полей до обращения к базе
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var catalog Catalog
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	verr := apperr.NewValidationError()
	for _, service := range catalog.Services {
		if service.Title == "" {
			verr.AddNonField("услуга без наименования")
		}
		for _, p := range service.Parameters {
			if p.Type == "" {
				continue
			}
			if !p.Type.Valid() {
				verr.AddField(service.Title+"/"+p.Title, fmt.Sprintf("неизвестный тип %q", p.Type))
			}
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Load создает недостающие параметры, услуги и связи; повторная загрузка
// того же каталога ничего не дублирует, а тип связи обновляется
func Load(ctx context.Context, repo *repository.Repository, catalog *Catalog) (LoadStats, error) {
	var stats LoadStats
	for _, entry := range catalog.Services {
		service, err := repo.EnsureService(ctx, entry.Title)
		if err != nil {
			return stats, fmt.Errorf("service %q: %w", entry.Title, err)
		}
		stats.Services++

		for _, p := range entry.Parameters {
			parameter, err := repo.EnsureParameter(ctx, p.Title)
			if err != nil {
				return stats, fmt.Errorf("parameter %q: %w", p.Title, err)
			}
			typ := p.Type
			if typ == "" {
				typ = ds.TypeText
			}
			if err := repo.EnsureAssignment(ctx, service.ID, parameter.ID, typ); err != nil {
				return stats, fmt.Errorf("assign %q to %q: %w", p.Title, entry.Title, err)
			}
			stats.Assignments++
		}
	}
	return stats, nil
}

func loadCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "load [catalog.yaml]",
		Short: "Загрузить каталог услуг из YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			catalog, err := ParseCatalog(f)
			if err != nil {
				return err
			}
			if len(catalog.Services) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Catalog is empty\n", skipMark)
				return nil
			}

			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			stats, err := Load(cmd.Context(), repo, catalog)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Loaded %d services, %d parameter assignments\n",
				okMark, stats.Services, stats.Assignments)
			return nil
		},
	}
}
