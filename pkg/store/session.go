package store

import "time"

// Session is the server-side record of an authenticated operator.
// It lives only in memory; evicting it ends the login.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IpAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
