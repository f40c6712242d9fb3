package repository

import (
	"github.com/vfg2006/campaign-leads-api/infrastructure/database/memory"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

//go:generate mockgen -source=upload.go -destination=mocks/mock_upload.go -package=mocks

type UploadRepository interface {
	ListUploads() []*domain.FileUpload
	GetUploadByID(uploadID string) (*domain.FileUpload, bool)
	// AddUpload insere a importação no início da lista
	AddUpload(upload *domain.FileUpload)
	// CompleteUpload marca como concluída e vincula a campanha gerada; false se o ID não existe
	CompleteUpload(uploadID string, campaignID string) bool
	DeleteUpload(uploadID string) bool
}

type uploadRepository struct {
	conn *memory.Connection
}

func NewUploadRepository(conn *memory.Connection) UploadRepository {
	return &uploadRepository{
		conn: conn,
	}
}

func (r *uploadRepository) ListUploads() []*domain.FileUpload {
	var uploads []*domain.FileUpload
	r.conn.View(func(d *memory.Dataset) {
		uploads = make([]*domain.FileUpload, 0, len(d.Uploads))
		for _, u := range d.Uploads {
			uploads = append(uploads, u.Clone())
		}
	})
	return uploads
}

func (r *uploadRepository) GetUploadByID(uploadID string) (*domain.FileUpload, bool) {
	var upload *domain.FileUpload
	r.conn.View(func(d *memory.Dataset) {
		for _, u := range d.Uploads {
			if u.ID == uploadID {
				upload = u.Clone()
				return
			}
		}
	})
	return upload, upload != nil
}

func (r *uploadRepository) AddUpload(upload *domain.FileUpload) {
	stored := upload.Clone()
	r.conn.Update(func(d *memory.Dataset) {
		d.Uploads = append([]*domain.FileUpload{stored}, d.Uploads...)
	})
}

func (r *uploadRepository) CompleteUpload(uploadID string, campaignID string) bool {
	found := false
	r.conn.Update(func(d *memory.Dataset) {
		for _, u := range d.Uploads {
			if u.ID == uploadID {
				u.Status = domain.UploadStatusCompleted
				u.CampaignID = &campaignID
				found = true
				return
			}
		}
	})
	return found
}

func (r *uploadRepository) DeleteUpload(uploadID string) bool {
	found := false
	r.conn.Update(func(d *memory.Dataset) {
		for i, u := range d.Uploads {
			if u.ID == uploadID {
				d.Uploads = append(d.Uploads[:i:i], d.Uploads[i+1:]...)
				found = true
				return
			}
		}
	})
	return found
}
