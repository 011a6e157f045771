package response

import "time"

// AuthResponse is returned after a successful admin login
type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
	Username    string    `json:"username"`
}

// DocumentSummary describes one stored content document
type DocumentSummary struct {
	Domain     string    `json:"domain"`
	StorageKey string    `json:"storage_key"`
	Version    int64     `json:"version"`
	Sections   []string  `json:"sections"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// SnapshotResponse describes a written content snapshot
type SnapshotResponse struct {
	Path      string    `json:"path"`
	Documents int       `json:"documents"`
	TakenAt   time.Time `json:"taken_at"`
}

// SeedResponse reports what a seed run inserted
type SeedResponse struct {
	Documents []string `json:"documents"`
	Blogs     int      `json:"blogs"`
	Events    int      `json:"events"`
	Contacts  int      `json:"contacts"`
}
