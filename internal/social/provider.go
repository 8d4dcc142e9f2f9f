// Package social supplies the friends list shown to clients. The mock
// implementation stands in for a real social graph; callers depend only on
// GraphProvider.
package social

import (
	"fmt"
	"math/rand/v2"

	"github.com/saunova/saunova-server/internal/achievement"
	"github.com/saunova/saunova-server/internal/domain"
)

type GraphProvider interface {
	FriendsOf(authID string) []domain.Friend
}

// MockProvider generates 3-10 placeholder friends with random statuses and
// badge sets.
type MockProvider struct {
	badges achievement.Provider
}

func NewMockProvider(badges achievement.Provider) *MockProvider {
	return &MockProvider{badges: badges}
}

func (p *MockProvider) FriendsOf(authID string) []domain.Friend {
	statuses := []domain.FriendStatus{domain.FriendOnline, domain.FriendOffline, domain.FriendInSauna}

	count := rand.IntN(8) + 3
	friends := make([]domain.Friend, 0, count)
	for i := 0; i < count; i++ {
		image := fmt.Sprintf("https://picsum.photos/200/300?seed=%d", i+1)
		friends = append(friends, domain.Friend{
			ID:     fmt.Sprintf("friend_%d", i+1),
			Name:   fmt.Sprintf("Friend %d", i+1),
			Image:  &image,
			Status: statuses[rand.IntN(len(statuses))],
			Badges: p.badges.BadgesFor(authID, rand.IntN(5)+1),
		})
	}
	return friends
}
