package uploading

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-leads-api/internal/config"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

var acceptedExtensions = map[string]domain.FileType{
	".csv": domain.FileTypeCSV,
	".pdf": domain.FileTypePDF,
}

// Intake valida o arquivo antes do registro da importação
type Intake struct {
	maxSize       int64
	enforceLimits bool
}

func NewIntake(cfg *config.Config) *Intake {
	return &Intake{
		maxSize:       cfg.Upload.MaxFileSizeBytes(),
		enforceLimits: cfg.Upload.EnforceLimits,
	}
}

// Validate aceita apenas .csv e .pdf. O tamanho só é verificado com UPLOAD_ENFORCE_LIMITS.
func (i *Intake) Validate(fileName string, size int64) error {
	if strings.TrimSpace(fileName) == "" {
		return ErrFileNameRequired
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := acceptedExtensions[ext]; !ok {
		return errors.Wrapf(ErrUnsupportedExtension, "file %s", fileName)
	}

	if i.enforceLimits && i.maxSize > 0 && size > i.maxSize {
		return errors.Wrapf(ErrFileTooLarge, "file %s has %s, limit is %s",
			fileName, humanize.Bytes(uint64(size)), humanize.Bytes(uint64(i.maxSize)))
	}

	return nil
}

// DetectFileType retorna pdf quando o nome termina em .pdf e csv nos demais casos
func DetectFileType(fileName string) domain.FileType {
	if strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return domain.FileTypePDF
	}
	return domain.FileTypeCSV
}
