package domain

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type HistoryType string

const (
	HistoryTypeUpload   HistoryType = "upload"
	HistoryTypeAnalysis HistoryType = "analysis"
	HistoryTypeReport   HistoryType = "report"
	HistoryTypeCampaign HistoryType = "campaign"
)

func (t HistoryType) IsValid() bool {
	switch t {
	case HistoryTypeUpload, HistoryTypeAnalysis, HistoryTypeReport, HistoryTypeCampaign:
		return true
	}
	return false
}

type HistoryStatus string

const (
	HistoryStatusCompleted  HistoryStatus = "completed"
	HistoryStatusProcessing HistoryStatus = "processing"
	HistoryStatusError      HistoryStatus = "error"
)

// HistoryDetails é o conteúdo específico de cada tipo de evento do histórico.
// Só os tipos deste pacote implementam a interface.
type HistoryDetails interface {
	historyType() HistoryType
}

type UploadDetails struct {
	UploadID         string `json:"upload_id,omitempty" yaml:"upload_id"`
	FileSize         string `json:"file_size,omitempty" yaml:"file_size"`
	RecordsProcessed int    `json:"records_processed,omitempty" yaml:"records_processed"`
	Error            string `json:"error,omitempty" yaml:"error"`
	Solution         string `json:"solution,omitempty" yaml:"solution"`
}

type AnalysisDetails struct {
	ReportID        string `json:"report_id,omitempty" yaml:"report_id"`
	LeadsAnalyzed   int    `json:"leads_analyzed" yaml:"leads_analyzed"`
	Insights        int    `json:"insights" yaml:"insights"`
	Recommendations int    `json:"recommendations" yaml:"recommendations"`
	Estimated       string `json:"estimated,omitempty" yaml:"estimated"`
}

type ReportDetails struct {
	ReportID string `json:"report_id,omitempty" yaml:"report_id"`
	Pages    int    `json:"pages,omitempty" yaml:"pages"`
	Charts   int    `json:"charts,omitempty" yaml:"charts"`
	FileSize string `json:"file_size,omitempty" yaml:"file_size"`
}

type CampaignDetails struct {
	CampaignID     string         `json:"campaign_id,omitempty" yaml:"campaign_id"`
	PreviousStatus CampaignStatus `json:"previous_status,omitempty" yaml:"previous_status"`
	NewStatus      CampaignStatus `json:"new_status,omitempty" yaml:"new_status"`
	TargetAudience int            `json:"target_audience,omitempty" yaml:"target_audience"`
	Segments       int            `json:"segments,omitempty" yaml:"segments"`
}

func (UploadDetails) historyType() HistoryType   { return HistoryTypeUpload }
func (AnalysisDetails) historyType() HistoryType { return HistoryTypeAnalysis }
func (ReportDetails) historyType() HistoryType   { return HistoryTypeReport }
func (CampaignDetails) historyType() HistoryType { return HistoryTypeCampaign }

// HistoryItem registra uma ação executada no painel
type HistoryItem struct {
	ID          string         `json:"id"`
	Type        HistoryType    `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	Status      HistoryStatus  `json:"status"`
	Details     HistoryDetails `json:"details"`
}

// NewHistoryItem monta um item cujo tipo é derivado dos detalhes
func NewHistoryItem(id, title, description string, date time.Time, status HistoryStatus, details HistoryDetails) *HistoryItem {
	return &HistoryItem{
		ID:          id,
		Type:        details.historyType(),
		Title:       title,
		Description: description,
		Date:        date,
		Status:      status,
		Details:     details,
	}
}

func (h *HistoryItem) Clone() *HistoryItem {
	if h == nil {
		return nil
	}
	cp := *h
	return &cp
}

// UnmarshalYAML decodifica os detalhes de acordo com o campo type
func (h *HistoryItem) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		ID          string        `yaml:"id"`
		Type        HistoryType   `yaml:"type"`
		Title       string        `yaml:"title"`
		Description string        `yaml:"description"`
		Date        time.Time     `yaml:"date"`
		Status      HistoryStatus `yaml:"status"`
		Details     yaml.Node     `yaml:"details"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	var details HistoryDetails
	switch raw.Type {
	case HistoryTypeUpload:
		d := UploadDetails{}
		if err := decodeDetails(&raw.Details, &d); err != nil {
			return err
		}
		details = d
	case HistoryTypeAnalysis:
		d := AnalysisDetails{}
		if err := decodeDetails(&raw.Details, &d); err != nil {
			return err
		}
		details = d
	case HistoryTypeReport:
		d := ReportDetails{}
		if err := decodeDetails(&raw.Details, &d); err != nil {
			return err
		}
		details = d
	case HistoryTypeCampaign:
		d := CampaignDetails{}
		if err := decodeDetails(&raw.Details, &d); err != nil {
			return err
		}
		details = d
	default:
		return fmt.Errorf("history item %q: unknown type %q", raw.ID, raw.Type)
	}

	*h = HistoryItem{
		ID:          raw.ID,
		Type:        raw.Type,
		Title:       raw.Title,
		Description: raw.Description,
		Date:        raw.Date,
		Status:      raw.Status,
		Details:     details,
	}
	return nil
}

func decodeDetails(node *yaml.Node, out any) error {
	if node.Kind == 0 {
		return nil
	}
	return node.Decode(out)
}
