package history

import (
	"sort"

	"github.com/vfg2006/campaign-leads-api/infrastructure/repository"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
	"github.com/vfg2006/campaign-leads-api/internal/usecases/filtering"
	"github.com/vfg2006/campaign-leads-api/pkg/utils"
)

type Historian interface {
	ListHistory(filters domain.HistoryFilters) []*domain.HistoryItem
}

type Service struct {
	historyRepository repository.HistoryRepository
	now               utils.Clock
}

func NewService(historyRepo repository.HistoryRepository) *Service {
	return &Service{
		historyRepository: historyRepo,
		now:               utils.SystemClock,
	}
}

func (s *Service) WithClock(clock utils.Clock) *Service {
	s.now = clock
	return s
}

// ListHistory retorna os eventos filtrados, do mais recente para o mais antigo
func (s *Service) ListHistory(filters domain.HistoryFilters) []*domain.HistoryItem {
	items := filtering.History(s.historyRepository.ListHistory(), filters, s.now())
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items
}
