package achievement

import "github.com/saunova/saunova-server/internal/domain"

var allBadges = []domain.Badge{
	{ID: "1", Name: "First Steam", Description: "Complete your first sauna session", Icon: "♨️", Requirement: 1, Rarity: domain.RarityCommon},
	{ID: "2", Name: "Early Steam", Description: "Use the sauna before 7 AM", Icon: "🌅", Requirement: 5, Rarity: domain.RarityCommon},
	{ID: "3", Name: "Night Heat", Description: "Use the sauna after 10 PM", Icon: "🦉", Requirement: 5, Rarity: domain.RarityCommon},
	{ID: "4", Name: "Weekly Ritual", Description: "Complete 7 consecutive sauna days", Icon: "🔥", Requirement: 7, Rarity: domain.RarityRare},
	{ID: "5", Name: "Century Steamer", Description: "Complete 100 sauna sessions", Icon: "💯", Requirement: 100, Rarity: domain.RarityEpic},
	{ID: "6", Name: "Iron Heat", Description: "Use the sauna 30 days in a row", Icon: "💪", Requirement: 30, Rarity: domain.RarityEpic},
	{ID: "7", Name: "Quick Steam", Description: "Finish a sauna session in under 10 minutes", Icon: "⚡", Requirement: 1, Rarity: domain.RarityRare},
	{ID: "8", Name: "Year of Heat", Description: "Use the sauna every day for a year", Icon: "🏆", Requirement: 365, Rarity: domain.RarityLegendary},
	{ID: "9", Name: "Social Steamer", Description: "Share a sauna session with 10 different friends", Icon: "🦋", Requirement: 10, Rarity: domain.RarityRare},
	{ID: "10", Name: "Perfect Temp", Description: "Complete 50 sauna sessions at optimal temperature", Icon: "⭐", Requirement: 50, Rarity: domain.RarityEpic},
	{ID: "11", Name: "Humid Master", Description: "Maintain optimal humidity in 25 sessions", Icon: "💧", Requirement: 25, Rarity: domain.RarityEpic},
	{ID: "12", Name: "Long Steam", Description: "Spend 60 minutes in the sauna in a single session", Icon: "⏱️", Requirement: 1, Rarity: domain.RarityRare},
	{ID: "13", Name: "Daily Devotee", Description: "Use the sauna 14 consecutive days", Icon: "📅", Requirement: 14, Rarity: domain.RarityRare},
	{ID: "14", Name: "High Heat Hero", Description: "Reach 90°C in 20 sessions", Icon: "🔥", Requirement: 20, Rarity: domain.RarityEpic},
	{ID: "15", Name: "Chill Beginner", Description: "Start a sauna session at lower temperature (≤60°C)", Icon: "❄️", Requirement: 5, Rarity: domain.RarityCommon},
	{ID: "16", Name: "Temperature Explorer", Description: "Experience 10 different temperature ranges", Icon: "🌡️", Requirement: 10, Rarity: domain.RarityRare},
	{ID: "17", Name: "Humidity Explorer", Description: "Experience 10 different humidity levels", Icon: "💦", Requirement: 10, Rarity: domain.RarityRare},
	{ID: "18", Name: "Steam Duo", Description: "Complete 50 sessions with a friend", Icon: "🤝", Requirement: 50, Rarity: domain.RarityEpic},
	{ID: "19", Name: "Ultimate Streak", Description: "Use the sauna 60 days in a row", Icon: "🏅", Requirement: 60, Rarity: domain.RarityLegendary},
	{ID: "20", Name: "Sauna Marathon", Description: "Complete 500 sauna sessions", Icon: "🥇", Requirement: 500, Rarity: domain.RarityLegendary},
}

// Catalog returns the full static badge table.
func Catalog() []domain.Badge {
	return allBadges
}
