package domain

import "time"

// Comment content is immutable after creation. There is no edit or delete
// path; comments are destroyed only together with their thread.
type Comment struct {
	Id          CommentId `json:"id"`
	ThreadId    ThreadId  `json:"threadId"`
	Content     string    `json:"content"` // markdown source
	ContentHtml string    `json:"contentHtml,omitempty"`
	Author      UserRef   `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Likes       int       `json:"likes"`
	LikedBy     []UserId  `json:"likedBy"`
}

type CommentCreationData struct {
	ThreadId ThreadId
	Content  string
	Author   UserRef
}

func (c *Comment) LikedByUser(uid UserId) bool {
	for _, id := range c.LikedBy {
		if id == uid {
			return true
		}
	}
	return false
}
