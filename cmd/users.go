package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage account users",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all users on the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newZoomClient()
			if err != nil {
				return err
			}

			users, err := client.ListUsers(cmd.Context(), status)
			if err != nil {
				return err
			}

			for _, u := range users {
				fmt.Printf("%s\t%s\t%s %s\t%s\n", u.ID, u.Email, u.FirstName, u.LastName, u.Status)
			}
			fmt.Printf("%d users\n", len(users))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "active", "User status to filter by (active, inactive, pending)")

	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Permanently delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newZoomClient()
			if err != nil {
				return err
			}

			if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted user %s\n", args[0])
			return nil
		},
	}
}
