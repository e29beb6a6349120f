package manage

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func parameterCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parameter",
		Short: "Параметры услуг",
	}

	createCmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Создать параметр",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			parameter, err := repo.CreateParameter(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create parameter: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created parameter %d: %s\n", okMark, parameter.ID, parameter.Title)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Список параметров",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			parameters, err := repo.ListParameters(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list parameters: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE")
			for _, p := range parameters {
				fmt.Fprintf(w, "%d\t%s\n", p.ID, p.Title)
			}
			return w.Flush()
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename [parameter-id] [title]",
		Short: "Переименовать параметр",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "parameter")
			if err != nil {
				return err
			}
			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			parameter, err := repo.RenameParameter(cmd.Context(), id, args[1])
			if err != nil {
				return fmt.Errorf("failed to rename parameter: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Renamed parameter %d: %s\n", okMark, parameter.ID, parameter.Title)
			return nil
		},
	}

	cmd.AddCommand(createCmd, listCmd, renameCmd)
	return cmd
}
