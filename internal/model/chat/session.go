package chat

import "time"

// Session captures a transient anonymous conversation. It lives only as long
// as the process and is never persisted.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
