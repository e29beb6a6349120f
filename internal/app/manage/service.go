package manage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ordermanager/internal/app/ds"
)

func serviceCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Услуги и их параметры",
	}

	createCmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Создать услугу",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			service, err := repo.CreateService(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create service: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created service %d: %s\n", okMark, service.ID, service.Title)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Список услуг с параметрами",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			services, err := repo.ListServices(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list services: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tPARAMETERS")
			for _, s := range services {
				assigned := make([]string, 0, len(s.Parameters))
				for _, p := range s.Parameters {
					assigned = append(assigned, fmt.Sprintf("%s:%s", p.Parameter.Title, p.Type))
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Title, strings.Join(assigned, ", "))
			}
			return w.Flush()
		},
	}

	assignCmd := &cobra.Command{
		Use:   "assign [service-id] [parameter-id]",
		Short: "Добавить параметр в услугу",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			serviceID, err := parseID(args[0], "service")
			if err != nil {
				return err
			}
			parameterID, err := parseID(args[1], "parameter")
			if err != nil {
				return err
			}

			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			assigned, err := repo.AssignParameter(cmd.Context(), serviceID, parameterID, ds.ParameterType(typ))
			if err != nil {
				return fmt.Errorf("failed to assign parameter: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Assigned %s (%s) to service %d\n",
				okMark, assigned.Parameter.Title, assigned.Type, assigned.ServiceID)
			return nil
		},
	}
	assignCmd.Flags().String("type", string(ds.TypeText), "тип поля: "+typeList())

	unassignCmd := &cobra.Command{
		Use:   "unassign [service-id] [parameter-id]",
		Short: "Убрать параметр из услуги",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceID, err := parseID(args[0], "service")
			if err != nil {
				return err
			}
			parameterID, err := parseID(args[1], "parameter")
			if err != nil {
				return err
			}

			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			if err := repo.UnassignParameter(cmd.Context(), serviceID, parameterID); err != nil {
				return fmt.Errorf("failed to unassign parameter: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Unassigned parameter %d from service %d\n", okMark, parameterID, serviceID)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [service-id]",
		Short: "Удалить услугу вместе с ее заказами",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceID, err := parseID(args[0], "service")
			if err != nil {
				return err
			}
			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			if err := repo.DeleteService(cmd.Context(), serviceID); err != nil {
				return fmt.Errorf("failed to delete service: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted service %d\n", okMark, serviceID)
			return nil
		},
	}

	imageCmd := &cobra.Command{
		Use:   "image [service-id] [file]",
		Short: "Загрузить изображение услуги в MinIO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			serviceID, err := parseID(args[0], "service")
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			service, err := repo.GetService(ctx, serviceID)
			if err != nil {
				return err
			}
			images, err := deps.Images(ctx)
			if err != nil {
				return err
			}

			key, err := images.UploadFile(ctx, service.ID, data, filepath.Base(args[1]))
			if err != nil {
				return err
			}
			if err := repo.SetServiceImage(ctx, service.ID, &key); err != nil {
				return err
			}
			if service.ImageKey != nil {
				if err := images.DeleteFile(ctx, *service.ImageKey); err != nil {
					log.WithError(err).Warnf("old image %s was not removed", *service.ImageKey)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Uploaded image %s for service %d\n", okMark, key, service.ID)
			return nil
		},
	}

	cmd.AddCommand(createCmd, listCmd, assignCmd, unassignCmd, deleteCmd, imageCmd)
	return cmd
}

func typeList() string {
	names := make([]string, 0, len(ds.ParameterTypes))
	for _, t := range ds.ParameterTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
