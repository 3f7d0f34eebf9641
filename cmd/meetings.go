package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/zoomctl/internal/zoom"
)

func newMeetingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "Manage Zoom meetings",
	}

	cmd.AddCommand(newMeetingsListCmd())
	cmd.AddCommand(newMeetingsGetCmd())
	cmd.AddCommand(newMeetingsCreateCmd())
	cmd.AddCommand(newMeetingsDeleteCmd())

	return cmd
}

func newMeetingsListCmd() *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newZoomClient()
			if err != nil {
				return err
			}

			list, err := client.ListMeetings(cmd.Context())
			if err != nil {
				return err
			}

			meetings := list.Meetings
			if topic != "" {
				meetings = list.FilterByTopic(topic)
			}

			for _, m := range meetings {
				fmt.Printf("%d\t%s\t%s\n", m.ID, m.StartTime.Format(time.RFC3339), m.Topic)
			}
			fmt.Printf("%d of %d meetings\n", len(meetings), list.TotalRecords)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Only show meetings whose topic contains this text")

	return cmd
}

func newMeetingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <meeting-id>",
		Short: "Show a meeting as JSON",
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

			meeting, err := client.GetMeeting(cmd.Context(), meetingID)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(meeting, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func newMeetingsCreateCmd() *cobra.Command {
	var (
		topic    string
		start    string
		duration int
		timezone string
		password string
		agenda   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a new meeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime, err := time.Parse(time.RFC3339, start)
			if err != nil {
				return fmt.Errorf("invalid --start, expected RFC3339 (e.g. 2026-09-01T15:00:00Z): %w", err)
			}

			client, err := newZoomClient()
			if err != nil {
				return err
			}

			meeting, err := client.CreateMeeting(cmd.Context(), zoom.MeetingInput{
				Topic:     topic,
				StartTime: startTime,
				Duration:  duration,
				Timezone:  timezone,
				Password:  password,
				Agenda:    agenda,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created meeting %d\n", meeting.ID)
			fmt.Printf("Join URL: %s\n", meeting.JoinURL)
			if meeting.Password != "" {
				fmt.Printf("Password: %s\n", meeting.Password)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Meeting topic (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start time in RFC3339 format (required)")
	cmd.Flags().IntVar(&duration, "duration", 30, "Duration in minutes")
	cmd.Flags().StringVar(&timezone, "timezone", "", "Timezone (default: UTC)")
	cmd.Flags().StringVar(&password, "password", "", "Meeting password (default: generated)")
	cmd.Flags().StringVar(&agenda, "agenda", "", "Meeting agenda")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newMeetingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <meeting-id>",
		Short: "Delete a meeting",
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

			if err := client.DeleteMeeting(cmd.Context(), meetingID); err != nil {
				return err
			}
			fmt.Printf("Deleted meeting %d\n", meetingID)
			return nil
		},
	}
}

func parseMeetingID(arg string) (int64, error) {
	meetingID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid meeting id %q: %w", arg, err)
	}
	return meetingID, nil
}
