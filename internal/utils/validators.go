package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/errors"
)

type ThreadValidator struct {
	TitleMaxLen   int
	ContentMaxLen int
	MaxTags       int
}

func (v *ThreadValidator) Title(title string) error {
	if utf8.RuneCountInString(strings.TrimSpace(title)) == 0 {
		return errors.NewBadRequest("Title must not be empty")
	}
	if utf8.RuneCountInString(title) > v.TitleMaxLen {
		return errors.NewBadRequest(fmt.Sprintf("Title is too long (max %d characters)", v.TitleMaxLen))
	}
	return nil
}

func (v *ThreadValidator) Content(content string) error {
	if utf8.RuneCountInString(strings.TrimSpace(content)) == 0 {
		return errors.NewBadRequest("Content must not be empty")
	}
	if utf8.RuneCountInString(content) > v.ContentMaxLen {
		return errors.NewBadRequest(fmt.Sprintf("Content is too long (max %d characters)", v.ContentMaxLen))
	}
	return nil
}

func (v *ThreadValidator) Tags(tags []domain.Tag) error {
	if len(tags) > v.MaxTags {
		return errors.NewBadRequest(fmt.Sprintf("Too many tags (max %d)", v.MaxTags))
	}
	seen := make(map[domain.Tag]struct{}, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return errors.NewBadRequest("Tags must not be empty")
		}
		if _, ok := seen[tag]; ok {
			return errors.NewBadRequest("Duplicate tag: " + tag)
		}
		seen[tag] = struct{}{}
	}
	return nil
}

type CommentValidator struct {
	MaxLen int
}

// Content enforces the comment bounds before anything reaches the store:
// non-empty after trimming and at most MaxLen characters.
func (v *CommentValidator) Content(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return errors.NewBadRequest("Comment must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > v.MaxLen {
		return errors.NewBadRequest(fmt.Sprintf("Comment is too long (max %d characters)", v.MaxLen))
	}
	return nil
}
