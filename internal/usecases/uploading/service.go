package uploading

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-leads-api/infrastructure/repository"
	"github.com/vfg2006/campaign-leads-api/internal/config"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/filtering"
	"github.com/vfg2006/campaign-leads-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-leads-api/pkg/metrics"
	"github.com/vfg2006/campaign-leads-api/pkg/utils"
)

// DeferredScheduler executa uma função uma única vez após o atraso, podendo ser cancelada pela chave
type DeferredScheduler interface {
	Schedule(key string, delay time.Duration, fn func()) error
	Cancel(key string) bool
}

type Uploader interface {
	RecordUpload(req domain.RecordUploadRequest) (*domain.FileUpload, error)
	DeleteUpload(uploadID string) error
	ListUploads(filters domain.UploadFilters) []*domain.FileUpload
}

type Service struct {
	uploadRepository  repository.UploadRepository
	historyRepository repository.HistoryRepository
	scheduler         DeferredScheduler
	intake            *Intake
	metrics           *metrics.Recorder
	processingDelay   time.Duration
	now               utils.Clock
	newID             utils.IDGenerator
}

func NewService(
	cfg *config.Config,
	uploadRepo repository.UploadRepository,
	historyRepo repository.HistoryRepository,
	scheduler DeferredScheduler,
	recorder *metrics.Recorder,
) *Service {
	return &Service{
		uploadRepository:  uploadRepo,
		historyRepository: historyRepo,
		scheduler:         scheduler,
		intake:            NewIntake(cfg),
		metrics:           recorder,
		processingDelay:   cfg.Upload.ProcessingDelay,
		now:               utils.SystemClock,
		newID:             utils.PrefixedID("upload"),
	}
}

func (s *Service) WithClock(clock utils.Clock) *Service {
	s.now = clock
	return s
}

func (s *Service) WithIDGenerator(gen utils.IDGenerator) *Service {
	s.newID = gen
	return s
}

func historyID(uploadID string) string {
	return "history-" + uploadID
}

// RecordUpload registra a importação como "processing" e agenda a conclusão
func (s *Service) RecordUpload(req domain.RecordUploadRequest) (*domain.FileUpload, error) {
	if err := s.intake.Validate(req.FileName, req.FileSize); err != nil {
		code := apiErrors.ErrUnsupportedFile
		if errors.Is(err, ErrFileNameRequired) {
			code = apiErrors.ErrMissingRequiredData
		}
		return nil, NewUploadError(err, code, "", err.Error())
	}

	id, err := s.newID()
	if err != nil {
		return nil, NewUploadError(ErrGenerateID, apiErrors.ErrInternalServer, "", err.Error())
	}

	label := req.Platform.Label()
	uploadedAt := s.now()

	upload := &domain.FileUpload{
		ID:         id,
		FileName:   req.FileName,
		FileType:   DetectFileType(req.FileName),
		Platform:   label,
		UploadDate: uploadedAt,
		Status:     domain.UploadStatusProcessing,
	}

	s.uploadRepository.AddUpload(upload)

	details := domain.UploadDetails{UploadID: id}
	if req.FileSize > 0 {
		details.FileSize = humanize.Bytes(uint64(req.FileSize))
	}
	s.historyRepository.AddHistoryItem(domain.NewHistoryItem(
		historyID(id),
		"Import "+label,
		req.FileName,
		uploadedAt,
		domain.HistoryStatusProcessing,
		details,
	))

	if err := s.scheduler.Schedule(id, s.processingDelay, func() { s.complete(id) }); err != nil {
		logrus.WithError(err).WithField("upload_id", id).Error("Erro ao agendar conclusão da importação")

		// sem conclusão agendada o registro ficaria em "processing" para sempre
		s.uploadRepository.DeleteUpload(id)
		s.historyRepository.DeleteHistoryItem(historyID(id))

		return nil, NewUploadError(ErrScheduleCompletion, apiErrors.ErrScheduler, id, err.Error())
	}

	s.metrics.UploadRecorded(label)

	logrus.WithFields(logrus.Fields{
		"upload_id": id,
		"file_name": req.FileName,
		"file_type": upload.FileType,
		"platform":  label,
		"delay":     s.processingDelay.String(),
	}).Info("Importação registrada")

	return upload, nil
}

// complete marca a importação como concluída e vincula uma nova campanha
func (s *Service) complete(uploadID string) {
	campaignID := fmt.Sprintf("campaign-%d", s.now().UnixMilli())

	if !s.uploadRepository.CompleteUpload(uploadID, campaignID) {
		logrus.WithField("upload_id", uploadID).Warn("Importação removida antes da conclusão")
		return
	}
	s.historyRepository.UpdateHistoryStatus(historyID(uploadID), domain.HistoryStatusCompleted)
	s.metrics.UploadCompleted()

	logrus.WithFields(logrus.Fields{
		"upload_id":   uploadID,
		"campaign_id": campaignID,
	}).Info("Importação concluída")
}

// DeleteUpload remove a importação e cancela a conclusão pendente
func (s *Service) DeleteUpload(uploadID string) error {
	if s.scheduler.Cancel(uploadID) {
		s.metrics.UploadCancelled()
		logrus.WithField("upload_id", uploadID).Info("Conclusão pendente cancelada")
	}

	if !s.uploadRepository.DeleteUpload(uploadID) {
		return NewUploadError(ErrUploadNotFound, apiErrors.ErrResourceNotFound, uploadID, "")
	}

	return nil
}

func (s *Service) ListUploads(filters domain.UploadFilters) []*domain.FileUpload {
	return filtering.Uploads(s.uploadRepository.ListUploads(), filters)
}
