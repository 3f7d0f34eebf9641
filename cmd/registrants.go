package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/zoomctl/internal/zoom"
)

func newRegistrantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registrants",
		Short: "Manage meeting registrants",
	}

	cmd.AddCommand(newRegistrantsListCmd())
	cmd.AddCommand(newRegistrantsAddCmd())
	cmd.AddCommand(newRegistrantsApproveCmd())
	cmd.AddCommand(newRegistrantsCancelCmd())

	return cmd
}

func newRegistrantsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <meeting-id>",
		Short: "List all registrants of a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meetingID, err := parseMeetingID(args[0])
			if err != nil {
				return err
			}

			client, err := newZoomClient()
			if err != nil {
				return err
			}

			registrants, err := client.ListRegistrants(cmd.Context(), meetingID)
			if err != nil {
				return err
			}

			for _, r := range registrants {
				fmt.Printf("%s\t%s\t%s %s\t%s\n", r.ID, r.Email, r.FirstName, r.LastName, r.Status)
			}
			fmt.Printf("%d registrants\n", len(registrants))
			return nil
		},
	}
}

func newRegistrantsAddCmd() *cobra.Command {
	var (
		email     string
		firstName string
		lastName  string
		confirm   bool
	)

	cmd := &cobra.Command{
		Use:   "add <meeting-id>",
		Short: "Register a person for a meeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			meetingID, err := parseMeetingID(args[0])
			if err != nil {
				return err
			}

			client, err := newZoomClient()
			if err != nil {
				return err
			}

			input := zoom.RegistrantInput{
				Email:     email,
				FirstName: firstName,
				LastName:  lastName,
			}

			var confirmation *zoom.RegistrantConfirmation
			if confirm {
				confirmation, err = client.AddAndConfirmRegistrant(cmd.Context(), meetingID, input)
			} else {
				confirmation, err = client.AddRegistrant(cmd.Context(), meetingID, input)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Registrant ID: %s\n", confirmation.RegistrantID)
			fmt.Printf("Join URL: %s\n", confirmation.JoinURL)
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&email, "email", "", "Registrant email (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "Registrant first name (required)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Registrant last name")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Approve the registration immediately")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("first-name")

	return cmd
}

func newRegistrantsApproveCmd() *cobra.Command {
	var (
		registrantID string
		email        string
	)

	cmd := &cobra.Command{
		Use:   "approve <meeting-id>",
		Short: "Approve a pending registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meetingID, err := parseMeetingID(args[0])
			if err != nil {
				return err
			}

			client, err := newZoomClient()
			if err != nil {
				return err
			}

			if err := client.ApproveRegistration(cmd.Context(), meetingID, registrantID, email); err != nil {
				return err
			}
			fmt.Printf("Approved registration of %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&registrantID, "registrant-id", "", "Registrant ID (required)")
	cmd.Flags().StringVar(&email, "email", "", "Registrant email (required)")
	_ = cmd.MarkFlagRequired("registrant-id")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newRegistrantsCancelCmd() *cobra.Command {
	var (
		registrantID string
		email        string
	)

	cmd := &cobra.Command{
		Use:   "cancel <meeting-id>",
		Short: "Cancel a registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meetingID, err := parseMeetingID(args[0])
			if err != nil {
				return err
			}

			client, err := newZoomClient()
			if err != nil {
				return err
			}

			if err := client.CancelRegistration(cmd.Context(), meetingID, registrantID, email); err != nil {
				return err
			}
			fmt.Printf("Cancelled registration of %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&registrantID, "registrant-id", "", "Registrant ID (required)")
	cmd.Flags().StringVar(&email, "email", "", "Registrant email (required)")
	_ = cmd.MarkFlagRequired("registrant-id")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
