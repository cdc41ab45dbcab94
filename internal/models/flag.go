package models

import (
	"time"

	"github.com/TomSchuck/yardcrop/internal/utils"
)

// ReportReason enumerates why a listing can be flagged.
type ReportReason string

const (
	ReasonInappropriateContent ReportReason = "inappropriate_content"
	ReasonIncorrectInfo        ReportReason = "incorrect_info"
	ReasonSpam                 ReportReason = "spam"
	ReasonSafetyConcern        ReportReason = "safety_concern"
	ReasonOther                ReportReason = "other"
)

// Valid reports whether r is a known report reason.
func (r ReportReason) Valid() bool {
	switch r {
	case ReasonInappropriateContent, ReasonIncorrectInfo, ReasonSpam, ReasonSafetyConcern, ReasonOther:
		return true
	}
	return false
}

// ListingFlag is a moderation report against a listing. Flags are append-only:
// they are never updated or removed by users.
type ListingFlag struct {
	ID        utils.SixID  `json:"id"`
	ListingID utils.SixID  `json:"listing_id"`
	UserID    string       `json:"user_id"` // Session-scoped identity, not an account
	Reason    ReportReason `json:"reason"`
	Details   string       `json:"details,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
