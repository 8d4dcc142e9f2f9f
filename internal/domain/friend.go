package domain

type FriendStatus string

const (
	FriendOnline  FriendStatus = "online"
	FriendOffline FriendStatus = "offline"
	FriendInSauna FriendStatus = "in sauna"
)

type Friend struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Image  *string      `json:"image"`
	Status FriendStatus `json:"status"`
	Badges []Badge      `json:"badges"`
}
