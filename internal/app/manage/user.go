package manage

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ordermanager/internal/app/role"
)

func userCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Пользователи",
	}

	createCmd := &cobra.Command{
		Use:   "create [username]",
		Short: "Создать пользователя",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			fullName, _ := cmd.Flags().GetString("full-name")
			isStaff, _ := cmd.Flags().GetBool("staff")
			isSuperuser, _ := cmd.Flags().GetBool("superuser")

			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			user, err := repo.CreateUser(cmd.Context(), args[0], password, fullName, isStaff, isSuperuser)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Created user %d: %s (%s)\n",
				okMark, user.ID, user.Username, role.FromFlags(user.IsStaff, user.IsSuperuser))
			return nil
		},
	}
	createCmd.Flags().String("password", "", "пароль, не короче 6 символов")
	createCmd.Flags().String("full-name", "", "полное имя")
	createCmd.Flags().Bool("staff", false, "сотрудник, выполняет заказы")
	createCmd.Flags().Bool("superuser", false, "суперпользователь")
	_ = createCmd.MarkFlagRequired("password")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Список пользователей",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := deps.Repository()
			if err != nil {
				return err
			}
			users, err := repo.ListUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tFULL NAME")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Username, role.FromFlags(u.IsStaff, u.IsSuperuser), u.FullName)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(createCmd, listCmd)
	return cmd
}
