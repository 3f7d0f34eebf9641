package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMeetings(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me/meetings", r.URL.Path)
		w.Write([]byte(`{
			"page_count": 1, "page_number": 1, "page_size": 30, "total_records": 2,
			"meetings": [
				{"uuid": "u1", "id": 111, "topic": "Weekly sync", "type": 2,
				 "start_time": "2026-09-01T15:00:00Z", "duration": 30,
				 "timezone": "UTC", "created_at": "2026-08-01T10:00:00Z",
				 "join_url": "https://zoom.us/j/111"},
				{"uuid": "u2", "id": 222, "topic": "Planning", "type": 2,
				 "start_time": "2026-09-02T15:00:00Z", "duration": 60,
				 "timezone": "UTC", "created_at": "2026-08-02T10:00:00Z",
				 "join_url": "https://zoom.us/j/222"}
			]
		}`))
	}))

	list, err := client.ListMeetings(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Meetings, 2)
	assert.Equal(t, int64(111), list.Meetings[0].ID)
	assert.Equal(t, "Weekly sync", list.Meetings[0].Topic)
	assert.Equal(t, 2, list.TotalRecords)

	filtered := list.FilterByTopic("plan")
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(222), filtered[0].ID)

	found := list.FindByID(111)
	require.NotNil(t, found)
	assert.Equal(t, "Weekly sync", found.Topic)
	assert.Nil(t, list.FindByID(999))
}

func TestGetMeeting(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meetings/111", r.URL.Path)
		w.Write([]byte(`{
			"uuid": "u1", "id": 111, "topic": "Weekly sync", "type": 2,
			"status": "waiting", "start_time": "2026-09-01T15:00:00Z",
			"duration": 30, "timezone": "UTC",
			"join_url": "https://zoom.us/j/111",
			"start_url": "https://zoom.us/s/111",
			"password": "abc123",
			"settings": {"host_video": true, "audio": "voip"}
		}`))
	}))

	meeting, err := client.GetMeeting(context.Background(), 111)
	require.NoError(t, err)
	assert.Equal(t, "waiting", meeting.Status)
	assert.Equal(t, "abc123", meeting.Password)
	require.NotNil(t, meeting.Settings)
	assert.True(t, meeting.Settings.HostVideo)
}

func TestCreateMeeting(t *testing.T) {
	var gotBody meetingRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/me/meetings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"uuid": "u1", "id": 333, "topic": "Demo", "type": 2,
			"start_time": "2026-09-01T15:00:00Z", "duration": 45,
			"join_url": "https://zoom.us/j/333", "password": "secret"}`))
	}))

	start := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	meeting, err := client.CreateMeeting(context.Background(), MeetingInput{
		Topic:     "Demo",
		StartTime: start,
		Duration:  45,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(333), meeting.ID)

	// Defaults fill in everything the input left out.
	assert.Equal(t, "Demo", gotBody.Topic)
	assert.Equal(t, MeetingTypeScheduled, gotBody.Type)
	assert.Equal(t, "2026-09-01T15:00:00Z", gotBody.StartTime)
	assert.Equal(t, "UTC", gotBody.Timezone)
	assert.Len(t, gotBody.Password, 6)
	assert.Equal(t, "voip", gotBody.Settings.Audio)
	assert.True(t, gotBody.Settings.HostVideo)
}

func TestCreateMeetingValidation(t *testing.T) {
	requested := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))

	tests := []struct {
		name  string
		input MeetingInput
	}{
		{name: "missing topic", input: MeetingInput{StartTime: time.Now(), Duration: 30}},
		{name: "missing start time", input: MeetingInput{Topic: "x", Duration: 30}},
		{name: "zero duration", input: MeetingInput{Topic: "x", StartTime: time.Now()}},
		{name: "negative duration", input: MeetingInput{Topic: "x", StartTime: time.Now(), Duration: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateMeeting(context.Background(), tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid meeting input")
		})
	}
	assert.False(t, requested, "invalid input must be rejected before any request")
}

func TestUpdateMeeting(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/meetings/111", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.UpdateMeeting(context.Background(), 111, MeetingInput{
		Topic:     "Renamed",
		StartTime: time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC),
		Duration:  60,
	})
	require.NoError(t, err)
}

func TestDeleteMeeting(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/meetings/111", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteMeeting(context.Background(), 111))
}

func TestListRegistrantsPagination(t *testing.T) {
	var gotTokens []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("next_page_token")
		gotTokens = append(gotTokens, token)

		switch token {
		case "":
			w.Write([]byte(`{"total_records": 3, "next_page_token": "page2",
				"registrants": [
					{"id": "r1", "email": "a@example.com", "first_name": "A"},
					{"id": "r2", "email": "b@example.com", "first_name": "B"}
				]}`))
		case "page2":
			w.Write([]byte(`{"total_records": 3, "next_page_token": "",
				"registrants": [
					{"id": "r3", "email": "c@example.com", "first_name": "C"}
				]}`))
		default:
			t.Errorf("unexpected page token %q", token)
		}
	}))

	registrants, err := client.ListRegistrants(context.Background(), 111)
	require.NoError(t, err)
	require.Len(t, registrants, 3)
	assert.Equal(t, []string{"", "page2"}, gotTokens)
	assert.Equal(t, "c@example.com", registrants[2].Email)
}

func TestAddRegistrant(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/meetings/111/registrants", r.URL.Path)

		var input RegistrantInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "jane@example.com", input.Email)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"registrant_id": "reg-1", "id": 111, "topic": "Demo",
			"start_time": "2026-09-01T15:00:00Z", "join_url": "https://zoom.us/j/111?tk=x"}`))
	}))

	confirmation, err := client.AddRegistrant(context.Background(), 111, RegistrantInput{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "reg-1", confirmation.RegistrantID)
}

func TestAddRegistrantValidation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for invalid input")
	}))

	_, err := client.AddRegistrant(context.Background(), 111, RegistrantInput{
		Email:     "not-an-email",
		FirstName: "Jane",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid registrant input")
}

func TestAddAndConfirmRegistrant(t *testing.T) {
	var statusBody struct {
		Action      RegistrantAction `json:"action"`
		Registrants []RegistrantRef  `json:"registrants"`
	}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/meetings/111/registrants":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"registrant_id": "reg-1", "id": 111}`))
		case r.Method == http.MethodPut && r.URL.Path == "/meetings/111/registrants/status":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&statusBody))
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	confirmation, err := client.AddAndConfirmRegistrant(context.Background(), 111, RegistrantInput{
		Email:     "jane@example.com",
		FirstName: "Jane",
	})
	require.NoError(t, err)
	assert.Equal(t, "reg-1", confirmation.RegistrantID)
	assert.Equal(t, RegistrantApprove, statusBody.Action)
	require.Len(t, statusBody.Registrants, 1)
	assert.Equal(t, "reg-1", statusBody.Registrants[0].ID)
	assert.Equal(t, "jane@example.com", statusBody.Registrants[0].Email)
}

func TestPastMeetingParticipants(t *testing.T) {
	pages := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/past_meetings/111/participants", r.URL.Path)
		pages++
		if pages == 1 {
			w.Write([]byte(`{"next_page_token": "p2", "participants": [
				{"id": "p1", "name": "Jane Doe", "user_email": "jane@example.com"}]}`))
			return
		}
		w.Write([]byte(`{"participants": [
			{"id": "p2", "name": "John Doe", "user_email": "john@example.com"}]}`))
	}))

	participants, err := client.PastMeetingParticipants(context.Background(), 111)
	require.NoError(t, err)
	require.Len(t, participants, 2)

	byEmail := participants.FindByEmail("john@example.com")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "p2", byEmail[0].ID)

	byName := participants.FindByName("Jane Doe")
	require.Len(t, byName, 1)
	assert.Equal(t, "p1", byName[0].ID)
}

func TestRandomPassword(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p := randomPassword(6)
		assert.Len(t, p, 6)
		seen[p] = true
	}
	assert.Greater(t, len(seen), 1, "passwords should not repeat")
}

func TestMeetingEndpointFormatting(t *testing.T) {
	// Meeting IDs are numeric and embedded in the path.
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))

	_, err := client.GetMeeting(context.Background(), 98765432109)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("/meetings/%d", int64(98765432109)), gotPath)
}
