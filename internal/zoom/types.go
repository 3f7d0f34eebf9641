package zoom

import (
	"strings"
	"time"
)

// MeetingType identifies the kind of meeting being scheduled.
type MeetingType int

const (
	// MeetingTypeInstant starts immediately and has no start time.
	MeetingTypeInstant MeetingType = 1
	// MeetingTypeScheduled is a meeting with a fixed start time.
	MeetingTypeScheduled MeetingType = 2
	// MeetingTypeRecurringNoFixedTime recurs without a fixed time.
	MeetingTypeRecurringNoFixedTime MeetingType = 3
	// MeetingTypeRecurringFixedTime recurs at a fixed time.
	MeetingTypeRecurringFixedTime MeetingType = 8
)

// MeetingSettings holds the per-meeting options accepted by the Zoom API.
type MeetingSettings struct {
	HostVideo                    bool     `json:"host_video"`
	ParticipantVideo             bool     `json:"participant_video"`
	CNMeeting                    bool     `json:"cn_meeting"`
	INMeeting                    bool     `json:"in_meeting"`
	JoinBeforeHost               bool     `json:"join_before_host"`
	MuteUponEntry                bool     `json:"mute_upon_entry"`
	Watermark                    bool     `json:"watermark"`
	UsePMI                       bool     `json:"use_pmi"`
	ApprovalType                 int      `json:"approval_type"`
	RegistrationType             int      `json:"registration_type,omitempty"`
	Audio                        string   `json:"audio"`
	AutoRecording                string   `json:"auto_recording"`
	EnforceLogin                 bool     `json:"enforce_login"`
	EnforceLoginDomains          string   `json:"enforce_login_domains,omitempty"`
	AlternativeHosts             string   `json:"alternative_hosts,omitempty"`
	CloseRegistration            bool     `json:"close_registration,omitempty"`
	WaitingRoom                  bool     `json:"waiting_room"`
	GlobalDialInCountries        []string `json:"global_dial_in_countries,omitempty"`
	ContactName                  string   `json:"contact_name,omitempty"`
	ContactEmail                 string   `json:"contact_email,omitempty"`
	RegistrantsEmailNotification bool     `json:"registrants_email_notification"`
	MeetingAuthentication        bool     `json:"meeting_authentication"`
	AuthenticationOption         string   `json:"authentication_option,omitempty"`
	AuthenticationDomains        string   `json:"authentication_domains,omitempty"`
}

// DefaultMeetingSettings returns the settings applied when a meeting is
// created without explicit settings.
func DefaultMeetingSettings() MeetingSettings {
	return MeetingSettings{
		HostVideo:             true,
		ParticipantVideo:      true,
		JoinBeforeHost:        true,
		MuteUponEntry:         true,
		ApprovalType:          0,
		RegistrationType:      1,
		Audio:                 "voip",
		AutoRecording:         "none",
		EnforceLogin:          true,
		MeetingAuthentication: true,
	}
}

// Meeting is a Zoom meeting as returned by the API. List endpoints return
// only the short form; detail endpoints additionally populate the status,
// URLs, passwords and settings.
type Meeting struct {
	UUID      string      `json:"uuid"`
	ID        int64       `json:"id"`
	HostID    string      `json:"host_id"`
	Topic     string      `json:"topic"`
	Type      MeetingType `json:"type"`
	StartTime time.Time   `json:"start_time"`
	Duration  int         `json:"duration"`
	Timezone  string      `json:"timezone"`
	CreatedAt time.Time   `json:"created_at"`
	JoinURL   string      `json:"join_url"`

	// Detail-only fields.
	Status            string           `json:"status,omitempty"`
	Agenda            string           `json:"agenda,omitempty"`
	StartURL          string           `json:"start_url,omitempty"`
	RegistrationURL   string           `json:"registration_url,omitempty"`
	Password          string           `json:"password,omitempty"`
	H323Password      string           `json:"h323_password,omitempty"`
	PSTNPassword      string           `json:"pstn_password,omitempty"`
	EncryptedPassword string           `json:"encrypted_password,omitempty"`
	Settings          *MeetingSettings `json:"settings,omitempty"`
}

// MeetingList is a single page of scheduled meetings.
type MeetingList struct {
	PageCount     int       `json:"page_count"`
	PageNumber    int       `json:"page_number"`
	PageSize      int       `json:"page_size"`
	TotalRecords  int       `json:"total_records"`
	NextPageToken string    `json:"next_page_token,omitempty"`
	Meetings      []Meeting `json:"meetings"`
}

// FilterByTopic returns the meetings whose topic contains text,
// case-insensitively.
func (l *MeetingList) FilterByTopic(text string) []Meeting {
	var out []Meeting
	for _, m := range l.Meetings {
		if strings.Contains(strings.ToLower(m.Topic), strings.ToLower(text)) {
			out = append(out, m)
		}
	}
	return out
}

// FindByID returns the meeting with the given ID, or nil.
func (l *MeetingList) FindByID(meetingID int64) *Meeting {
	for i := range l.Meetings {
		if l.Meetings[i].ID == meetingID {
			return &l.Meetings[i]
		}
	}
	return nil
}

// MeetingInput describes a meeting to create or update.
type MeetingInput struct {
	Topic     string      `validate:"required"`
	Type      MeetingType `validate:"omitempty,oneof=1 2 3 8"`
	StartTime time.Time   `validate:"required"`
	Duration  int         `validate:"required,gt=0"` // minutes
	Timezone  string
	Password  string
	Agenda    string
	Settings  *MeetingSettings
}

// meetingRequest is the wire form of MeetingInput.
type meetingRequest struct {
	Topic     string          `json:"topic"`
	Type      MeetingType     `json:"type"`
	StartTime string          `json:"start_time"`
	Duration  int             `json:"duration"`
	Timezone  string          `json:"timezone"`
	Password  string          `json:"password"`
	Agenda    string          `json:"agenda,omitempty"`
	Settings  MeetingSettings `json:"settings"`
}

// RegistrantInput describes a registrant to add to a meeting.
type RegistrantInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Zip       string `json:"zip,omitempty"`
	State     string `json:"state,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Org       string `json:"org,omitempty"`
	JobTitle  string `json:"job_title,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// Registrant is a meeting registrant as returned by the API.
type Registrant struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Status    string `json:"status,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Zip       string `json:"zip,omitempty"`
	State     string `json:"state,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Org       string `json:"org,omitempty"`
	JobTitle  string `json:"job_title,omitempty"`
	Comment   string `json:"comment,omitempty"`
	JoinURL   string `json:"join_url,omitempty"`
}

// RegistrantRef identifies an existing registrant for status updates.
type RegistrantRef struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

// registrantList is a single page of registrants.
type registrantList struct {
	PageCount     int          `json:"page_count"`
	PageSize      int          `json:"page_size"`
	TotalRecords  int          `json:"total_records"`
	NextPageToken string       `json:"next_page_token,omitempty"`
	Registrants   []Registrant `json:"registrants"`
}

// RegistrantConfirmation is returned when a registrant is added.
type RegistrantConfirmation struct {
	RegistrantID string    `json:"registrant_id"`
	ID           int64     `json:"id"`
	Topic        string    `json:"topic"`
	StartTime    time.Time `json:"start_time"`
	JoinURL      string    `json:"join_url"`
}

// RegistrantAction is the moderation action applied to registrants.
type RegistrantAction string

const (
	RegistrantApprove RegistrantAction = "approve"
	RegistrantCancel  RegistrantAction = "cancel"
	RegistrantDeny    RegistrantAction = "deny"
)

// Participant is an attendee of a past meeting.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UserEmail string `json:"user_email"`
}

// participantList is a single page of past-meeting participants.
type participantList struct {
	PageCount     int           `json:"page_count"`
	PageSize      int           `json:"page_size"`
	TotalRecords  int           `json:"total_records"`
	NextPageToken string        `json:"next_page_token,omitempty"`
	Participants  []Participant `json:"participants"`
}

// Participants is a collection of past-meeting participants with
// lookup helpers.
type Participants []Participant

// FindByEmail returns the participants registered with the given email.
func (p Participants) FindByEmail(email string) Participants {
	var out Participants
	for _, part := range p {
		if part.UserEmail == email {
			out = append(out, part)
		}
	}
	return out
}

// FindByName returns the participants with the given display name.
func (p Participants) FindByName(name string) Participants {
	var out Participants
	for _, part := range p {
		if part.Name == name {
			out = append(out, part)
		}
	}
	return out
}

// User is a Zoom account user.
type User struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Type        int       `json:"type"`
	PMI         int64     `json:"pmi"`
	Timezone    string    `json:"timezone,omitempty"`
	Verified    int       `json:"verified"`
	Dept        string    `json:"dept,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	PicURL      string    `json:"pic_url,omitempty"`
	GroupIDs    []string  `json:"group_ids,omitempty"`
	Language    string    `json:"language,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Status      string    `json:"status"`
	RoleID      string    `json:"role_id"`
}

// userList is a single page of users.
type userList struct {
	PageCount     int    `json:"page_count"`
	PageSize      int    `json:"page_size"`
	TotalRecords  int    `json:"total_records"`
	NextPageToken string `json:"next_page_token,omitempty"`
	Users         []User `json:"users"`
}
