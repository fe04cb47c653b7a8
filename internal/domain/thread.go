package domain

import (
	"time"
)

type Thread struct {
	Id           ThreadId  `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"` // markdown source
	ContentHtml  string    `json:"contentHtml,omitempty"`
	Tags         []Tag     `json:"tags"`
	Author       UserRef   `json:"author"`
	Contributors []UserRef `json:"contributors"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	AiSummary    string    `json:"aiSummary,omitempty"`
	Views        int       `json:"views"`
	Likes        int       `json:"likes"`
	LikedBy      []UserId  `json:"likedBy"`

	Comments []*Comment `json:"comments"` // newest first
}

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title   string
	Content string
	Tags    []Tag
	Author  UserRef
}

type ThreadUpdateData struct {
	Title   *string
	Content *string
	Tags    *[]Tag
}

// LikedByUser reports membership of uid in the thread's likedBy set.
func (t *Thread) LikedByUser(uid UserId) bool {
	for _, id := range t.LikedBy {
		if id == uid {
			return true
		}
	}
	return false
}

// HasContributor reports whether uid is already a contributor or the author.
func (t *Thread) HasContributor(uid UserId) bool {
	if t.Author.Id == uid {
		return true
	}
	for _, c := range t.Contributors {
		if c.Id == uid {
			return true
		}
	}
	return false
}
