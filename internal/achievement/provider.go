// Package achievement supplies the badges shown to clients. The current
// implementation picks random badges from a static catalog; the Provider
// interface exists so a real progress-based computation can replace it
// without touching callers.
package achievement

import (
	"math/rand/v2"

	"github.com/saunova/saunova-server/internal/domain"
)

type Provider interface {
	// BadgesFor returns up to count badges for the given user.
	BadgesFor(authID string, count int) []domain.Badge
}

// StaticProvider selects badges at random from the catalog. Not tied to
// actual session history.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) BadgesFor(_ string, count int) []domain.Badge {
	catalog := Catalog()
	if count > len(catalog) {
		count = len(catalog)
	}

	shuffled := make([]domain.Badge, len(catalog))
	copy(shuffled, catalog)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}
