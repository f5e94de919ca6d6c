package domain

import (
	"context"
	"time"
)

// EventType names a board activity.
type EventType string

const (
	EventArticleCreated EventType = "article.created"
	EventArticleUpdated EventType = "article.updated"
	EventArticleDeleted EventType = "article.deleted"
	EventArticleLiked   EventType = "article.liked"
	EventArticleUnliked EventType = "article.unliked"
	EventCommentCreated EventType = "comment.created"
	EventCommentDeleted EventType = "comment.deleted"
)

// Event is one board activity sent to the message broker.
type Event struct {
	Type       EventType `json:"type"`
	ArticleID  int64     `json:"article_id"`
	CommentID  int64     `json:"comment_id,omitempty"`
	UserID     int64     `json:"user_id"`
	Likes      int64     `json:"likes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent stamps an event with the current time.
func NewEvent(t EventType, articleID, userID int64) Event {
	return Event{
		Type:       t,
		ArticleID:  articleID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisher delivers events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}
