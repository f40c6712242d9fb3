// Package seed carrega os dados iniciais da aplicação
package seed

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vfg2006/campaign-leads-api/infrastructure/database/memory"
)

//go:embed seed.yaml
var embedded []byte

// Load lê o dataset do arquivo informado ou, com path vazio, do seed embutido
func Load(path string) (*memory.Dataset, error) {
	content := embedded
	if path != "" {
		var err error
		content, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read seed file %s", path)
		}
	}

	return Parse(content)
}

func Parse(content []byte) (*memory.Dataset, error) {
	dataset := &memory.Dataset{}
	if err := yaml.Unmarshal(content, dataset); err != nil {
		return nil, errors.Wrap(err, "failed to decode seed data")
	}

	if err := validate(dataset); err != nil {
		return nil, err
	}

	return dataset, nil
}

// validate rejeita enums desconhecidos e IDs repetidos
func validate(d *memory.Dataset) error {
	seen := map[string]bool{}
	for _, c := range d.Campaigns {
		if seen[c.ID] {
			return errors.Errorf("duplicated campaign id %q", c.ID)
		}
		seen[c.ID] = true
		if !c.Platform.IsValid() || !c.Status.IsValid() {
			return errors.Errorf("campaign %q: invalid platform %q or status %q", c.ID, c.Platform, c.Status)
		}
	}

	seen = map[string]bool{}
	for _, l := range d.Leads {
		if seen[l.ID] {
			return errors.Errorf("duplicated lead id %q", l.ID)
		}
		seen[l.ID] = true
		if !l.Score.IsValid() || !l.Status.IsValid() {
			return errors.Errorf("lead %q: invalid score %q or status %q", l.ID, l.Score, l.Status)
		}
		for _, i := range l.Interactions {
			if !i.Type.IsValid() {
				return errors.Errorf("lead %q: invalid interaction type %q", l.ID, i.Type)
			}
		}
	}

	for _, u := range d.Uploads {
		if !u.Status.IsValid() {
			return errors.Errorf("upload %q: invalid status %q", u.ID, u.Status)
		}
	}

	return nil
}
