package domain

import "time"

type FileType string

const (
	FileTypeCSV FileType = "csv"
	FileTypePDF FileType = "pdf"
)

type UploadStatus string

const (
	UploadStatusProcessing UploadStatus = "processing"
	UploadStatusCompleted  UploadStatus = "completed"
	UploadStatusError      UploadStatus = "error"
)

func (s UploadStatus) IsValid() bool {
	switch s {
	case UploadStatusProcessing, UploadStatusCompleted, UploadStatusError:
		return true
	}
	return false
}

type FileUpload struct {
	ID         string       `json:"id" yaml:"id"`
	FileName   string       `json:"file_name" yaml:"file_name"`
	FileType   FileType     `json:"file_type" yaml:"file_type"`
	Platform   string       `json:"platform" yaml:"platform"` // nome de exibição, ex: "Lemlist"
	UploadDate time.Time    `json:"upload_date" yaml:"upload_date"`
	Status     UploadStatus `json:"status" yaml:"status"`
	CampaignID *string      `json:"campaign_id,omitempty" yaml:"campaign_id"`
}

func (u *FileUpload) Clone() *FileUpload {
	if u == nil {
		return nil
	}
	cp := *u
	if u.CampaignID != nil {
		id := *u.CampaignID
		cp.CampaignID = &id
	}
	return &cp
}

type RecordUploadRequest struct {
	FileName string   `json:"file_name"`
	FileSize int64    `json:"file_size"`
	Platform Platform `json:"platform"`
}
