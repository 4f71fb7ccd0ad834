package models

import "time"

const (
	SessionPending   = "PENDING"
	SessionCompleted = "COMPLETED"
)

// EvidenceSession is the short-lived record behind the QR hand-off: created
// by the dashboard, completed exactly once by whichever device uploads the
// photo. Status only ever moves PENDING -> COMPLETED.
type EvidenceSession struct {
	ID     string `json:"id"`
	Token  string `json:"token"`
	Target string `json:"target"`
	Status string `json:"status"`

	// ImagePath keeps the original wire name imageUrl even though it holds
	// a storage path, not a URL.
	ImagePath string `json:"imageUrl"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (s EvidenceSession) Completed() bool {
	return s.Status == SessionCompleted && s.ImagePath != ""
}
