package zoom

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ListMeetings returns one page of scheduled meetings for the configured
// user. MeetingList.NextPageToken is set when more pages exist.
func (c *Client) ListMeetings(ctx context.Context) (*MeetingList, error) {
	var list MeetingList
	endpoint := fmt.Sprintf("/users/%s/meetings", c.userID)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &list); err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return &list, nil
}

// GetMeeting retrieves a meeting by ID.
func (c *Client) GetMeeting(ctx context.Context, meetingID int64) (*Meeting, error) {
	var m Meeting
	endpoint := fmt.Sprintf("/meetings/%d", meetingID)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &m); err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return &m, nil
}

// CreateMeeting schedules a new meeting for the configured user.
// A password is generated when none is supplied, and default settings are
// applied when input.Settings is nil.
func (c *Client) CreateMeeting(ctx context.Context, input MeetingInput) (*Meeting, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid meeting input: %w", err)
	}

	var m Meeting
	endpoint := fmt.Sprintf("/users/%s/meetings", c.userID)
	if err := c.do(ctx, http.MethodPost, endpoint, nil, c.meetingRequest(input), &m); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return &m, nil
}

// UpdateMeeting replaces the schedule fields of an existing meeting.
// Zoom answers the PATCH with an empty body, so only an error is returned.
func (c *Client) UpdateMeeting(ctx context.Context, meetingID int64, input MeetingInput) error {
	if err := c.validate.Struct(input); err != nil {
		return fmt.Errorf("invalid meeting input: %w", err)
	}

	endpoint := fmt.Sprintf("/meetings/%d", meetingID)
	if err := c.do(ctx, http.MethodPatch, endpoint, nil, c.meetingRequest(input), nil); err != nil {
		return fmt.Errorf("failed to update meeting: %w", err)
	}
	return nil
}

// DeleteMeeting deletes a meeting by ID.
func (c *Client) DeleteMeeting(ctx context.Context, meetingID int64) error {
	endpoint := fmt.Sprintf("/meetings/%d", meetingID)
	if err := c.do(ctx, http.MethodDelete, endpoint, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

func (c *Client) meetingRequest(input MeetingInput) meetingRequest {
	req := meetingRequest{
		Topic:     input.Topic,
		Type:      input.Type,
		StartTime: input.StartTime.Format(time.RFC3339),
		Duration:  input.Duration,
		Timezone:  input.Timezone,
		Password:  input.Password,
		Agenda:    input.Agenda,
	}
	if req.Type == 0 {
		req.Type = MeetingTypeScheduled
	}
	if req.Timezone == "" {
		req.Timezone = c.timezone
	}
	if req.Password == "" {
		req.Password = randomPassword(6)
	}
	if input.Settings != nil {
		req.Settings = *input.Settings
	} else {
		req.Settings = DefaultMeetingSettings()
	}
	return req
}

// randomPassword derives a short alphanumeric password for meetings
// created without one.
func randomPassword(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// ListRegistrants returns all registrants of a meeting, following
// next_page_token until the listing is exhausted.
func (c *Client) ListRegistrants(ctx context.Context, meetingID int64) ([]Registrant, error) {
	endpoint := fmt.Sprintf("/meetings/%d/registrants", meetingID)

	var all []Registrant
	pageToken := ""
	for {
		query := url.Values{}
		if pageToken != "" {
			query.Set("next_page_token", pageToken)
		}

		var page registrantList
		if err := c.do(ctx, http.MethodGet, endpoint, query, nil, &page); err != nil {
			return nil, fmt.Errorf("failed to list registrants: %w", err)
		}
		all = append(all, page.Registrants...)

		if page.NextPageToken == "" {
			return all, nil
		}
		pageToken = page.NextPageToken
	}
}

// AddRegistrant registers a person for a meeting. The registrant starts in
// pending state unless the meeting auto-approves registrations.
func (c *Client) AddRegistrant(ctx context.Context, meetingID int64, input RegistrantInput) (*RegistrantConfirmation, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid registrant input: %w", err)
	}

	var confirmation RegistrantConfirmation
	endpoint := fmt.Sprintf("/meetings/%d/registrants", meetingID)
	if err := c.do(ctx, http.MethodPost, endpoint, nil, input, &confirmation); err != nil {
		return nil, fmt.Errorf("failed to add registrant: %w", err)
	}
	return &confirmation, nil
}

// UpdateRegistrantStatus applies a moderation action (approve, cancel or
// deny) to the given registrants.
func (c *Client) UpdateRegistrantStatus(ctx context.Context, meetingID int64, action RegistrantAction, registrants []RegistrantRef) error {
	body := struct {
		Action      RegistrantAction `json:"action"`
		Registrants []RegistrantRef  `json:"registrants"`
	}{
		Action:      action,
		Registrants: registrants,
	}

	endpoint := fmt.Sprintf("/meetings/%d/registrants/status", meetingID)
	if err := c.do(ctx, http.MethodPut, endpoint, nil, body, nil); err != nil {
		return fmt.Errorf("failed to update registrant status: %w", err)
	}
	return nil
}

// AddAndConfirmRegistrant registers a person and immediately approves the
// registration.
func (c *Client) AddAndConfirmRegistrant(ctx context.Context, meetingID int64, input RegistrantInput) (*RegistrantConfirmation, error) {
	confirmation, err := c.AddRegistrant(ctx, meetingID, input)
	if err != nil {
		return nil, err
	}

	refs := []RegistrantRef{{ID: confirmation.RegistrantID, Email: input.Email}}
	if err := c.UpdateRegistrantStatus(ctx, meetingID, RegistrantApprove, refs); err != nil {
		return nil, err
	}
	return confirmation, nil
}

// ApproveRegistration approves a single pending registration.
func (c *Client) ApproveRegistration(ctx context.Context, meetingID int64, registrantID, email string) error {
	return c.UpdateRegistrantStatus(ctx, meetingID, RegistrantApprove,
		[]RegistrantRef{{ID: registrantID, Email: email}})
}

// CancelRegistration cancels a single registration.
func (c *Client) CancelRegistration(ctx context.Context, meetingID int64, registrantID, email string) error {
	return c.UpdateRegistrantStatus(ctx, meetingID, RegistrantCancel,
		[]RegistrantRef{{ID: registrantID, Email: email}})
}

// PastMeetingParticipants returns everyone who attended a past meeting,
// following next_page_token until the listing is exhausted.
func (c *Client) PastMeetingParticipants(ctx context.Context, meetingID int64) (Participants, error) {
	endpoint := fmt.Sprintf("/past_meetings/%d/participants", meetingID)

	var all Participants
	pageToken := ""
	for {
		query := url.Values{}
		if pageToken != "" {
			query.Set("next_page_token", pageToken)
		}

		var page participantList
		if err := c.do(ctx, http.MethodGet, endpoint, query, nil, &page); err != nil {
			return nil, fmt.Errorf("failed to list participants: %w", err)
		}
		all = append(all, page.Participants...)

		if page.NextPageToken == "" {
			return all, nil
		}
		pageToken = page.NextPageToken
	}
}
