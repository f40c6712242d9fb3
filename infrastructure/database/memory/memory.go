// Package memory guarda o estado da aplicação em memória
package memory

import (
	"sync"

	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

// Dataset é o conjunto de coleções pertencentes à aplicação.
// Reports, Uploads e History ficam do mais novo para o mais antigo.
type Dataset struct {
	Campaigns []*domain.Campaign       `yaml:"campaigns"`
	Leads     []*domain.Lead           `yaml:"leads"`
	Reports   []*domain.AnalysisReport `yaml:"reports"`
	Uploads   []*domain.FileUpload     `yaml:"uploads"`
	History   []*domain.HistoryItem    `yaml:"history"`
}

// Connection é o único dono do Dataset. Cada operação roda inteira sob o lock,
// então nenhuma leitura observa uma alteração pela metade.
type Connection struct {
	mu   sync.RWMutex
	data *Dataset
}

func NewConnection(data *Dataset) *Connection {
	if data == nil {
		data = &Dataset{}
	}
	return &Connection{data: data}
}

// View executa fn com acesso somente leitura
func (c *Connection) View(fn func(d *Dataset)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.data)
}

// Update executa fn com acesso exclusivo
func (c *Connection) Update(fn func(d *Dataset)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.data)
}

// Stats retorna o tamanho de cada coleção
func (c *Connection) Stats() map[string]int {
	stats := make(map[string]int, 5)
	c.View(func(d *Dataset) {
		stats["campaigns"] = len(d.Campaigns)
		stats["leads"] = len(d.Leads)
		stats["reports"] = len(d.Reports)
		stats["uploads"] = len(d.Uploads)
		stats["history"] = len(d.History)
	})
	return stats
}
