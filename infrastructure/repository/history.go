package repository

import (
	"github.com/vfg2006/campaign-leads-api/infrastructure/database/memory"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

//go:generate mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks

type HistoryRepository interface {
	ListHistory() []*domain.HistoryItem
	// AddHistoryItem insere o item no início da lista
	AddHistoryItem(item *domain.HistoryItem)
	UpdateHistoryStatus(itemID string, status domain.HistoryStatus) bool
	DeleteHistoryItem(itemID string) bool
}

type historyRepository struct {
	conn *memory.Connection
}

func NewHistoryRepository(conn *memory.Connection) HistoryRepository {
	return &historyRepository{
		conn: conn,
	}
}

func (r *historyRepository) ListHistory() []*domain.HistoryItem {
	var items []*domain.HistoryItem
	r.conn.View(func(d *memory.Dataset) {
		items = make([]*domain.HistoryItem, 0, len(d.History))
		for _, h := range d.History {
			items = append(items, h.Clone())
		}
	})
	return items
}

func (r *historyRepository) AddHistoryItem(item *domain.HistoryItem) {
	stored := item.Clone()
	r.conn.Update(func(d *memory.Dataset) {
		d.History = append([]*domain.HistoryItem{stored}, d.History...)
	})
}

func (r *historyRepository) UpdateHistoryStatus(itemID string, status domain.HistoryStatus) bool {
	found := false
	r.conn.Update(func(d *memory.Dataset) {
		for _, h := range d.History {
			if h.ID == itemID {
				h.Status = status
				found = true
				return
			}
		}
	})
	return found
}

func (r *historyRepository) DeleteHistoryItem(itemID string) bool {
	found := false
	r.conn.Update(func(d *memory.Dataset) {
		for i, h := range d.History {
			if h.ID == itemID {
				d.History = append(d.History[:i], d.History[i+1:]...)
				found = true
				return
			}
		}
	})
	return found
}
