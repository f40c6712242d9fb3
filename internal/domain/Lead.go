package domain

import "time"

type LeadScore string

const (
	LeadScoreHot  LeadScore = "hot"
	LeadScoreWarm LeadScore = "warm"
	LeadScoreCold LeadScore = "cold"
)

func (s LeadScore) IsValid() bool {
	switch s {
	case LeadScoreHot, LeadScoreWarm, LeadScoreCold:
		return true
	}
	return false
}

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusEngaged   LeadStatus = "engaged"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusEngaged,
		LeadStatusQualified, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

type InteractionType string

const (
	InteractionEmailSent        InteractionType = "email_sent"
	InteractionEmailOpened      InteractionType = "email_opened"
	InteractionLinkClicked      InteractionType = "link_clicked"
	InteractionReplyReceived    InteractionType = "reply_received"
	InteractionCallMade         InteractionType = "call_made"
	InteractionMeetingScheduled InteractionType = "meeting_scheduled"
)

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionEmailSent, InteractionEmailOpened, InteractionLinkClicked,
		InteractionReplyReceived, InteractionCallMade, InteractionMeetingScheduled:
		return true
	}
	return false
}

type Interaction struct {
	ID         string          `json:"id" yaml:"id"`
	Type       InteractionType `json:"type" yaml:"type"`
	Date       time.Time       `json:"date" yaml:"date"`
	Details    *string         `json:"details,omitempty" yaml:"details"`
	CampaignID *string         `json:"campaign_id,omitempty" yaml:"campaign_id"` // referência fraca
}

type Lead struct {
	ID              string        `json:"id" yaml:"id"`
	Email           string        `json:"email" yaml:"email"`
	FirstName       *string       `json:"first_name,omitempty" yaml:"first_name"`
	LastName        *string       `json:"last_name,omitempty" yaml:"last_name"`
	Company         *string       `json:"company,omitempty" yaml:"company"`
	Position        *string       `json:"position,omitempty" yaml:"position"`
	Score           LeadScore     `json:"score" yaml:"score"`
	Status          LeadStatus    `json:"status" yaml:"status"`
	Interactions    []Interaction `json:"interactions" yaml:"interactions"`
	Source          string        `json:"source" yaml:"source"`
	DateAdded       time.Time     `json:"date_added" yaml:"date_added"`
	LastInteraction time.Time     `json:"last_interaction" yaml:"last_interaction"`
	Tags            []string      `json:"tags" yaml:"tags"`
}

// Clone retorna uma cópia independente do lead
func (l *Lead) Clone() *Lead {
	if l == nil {
		return nil
	}
	cp := *l
	cp.Interactions = append([]Interaction(nil), l.Interactions...)
	cp.Tags = append([]string(nil), l.Tags...)
	return &cp
}

// FullName junta nome e sobrenome quando presentes
func (l *Lead) FullName() string {
	name := ""
	if l.FirstName != nil {
		name = *l.FirstName
	}
	if l.LastName != nil {
		if name != "" {
			name += " "
		}
		name += *l.LastName
	}
	return name
}

// ScoreBuckets é a distribuição dos leads por score. Hot+Warm+Cold == Total.
type ScoreBuckets struct {
	Hot   int `json:"hot"`
	Warm  int `json:"warm"`
	Cold  int `json:"cold"`
	Total int `json:"total"`
}

type UpdateLeadScoreRequest struct {
	Score LeadScore `json:"score"`
}

type UpdateLeadStatusRequest struct {
	Status LeadStatus `json:"status"`
}

type UpdateCampaignStatusRequest struct {
	Status CampaignStatus `json:"status"`
}
