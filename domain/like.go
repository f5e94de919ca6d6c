package domain

import "time"

// UserLike is representing a like record
type UserLike struct {
	ArticleID int64
	UserID    int64
	CreatedAt time.Time
}

// LikeResult is the state of a like relation right after a toggle.
type LikeResult struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}
