package achievement_test

import (
	"testing"

	"github.com/saunova/saunova-server/internal/achievement"
	"github.com/stretchr/testify/assert"
)

func TestStaticProvider_BadgesFor(t *testing.T) {
	p := achievement.NewStaticProvider()

	badges := p.BadgesFor("anyone", 3)
	assert.Len(t, badges, 3)

	seen := map[string]bool{}
	for _, b := range badges {
		assert.False(t, seen[b.ID], "badge %s returned twice", b.ID)
		seen[b.ID] = true
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Rarity)
	}

	t.Run("count capped at catalog size", func(t *testing.T) {
		badges := p.BadgesFor("anyone", 1000)
		assert.Len(t, badges, len(achievement.Catalog()))
	})
}
