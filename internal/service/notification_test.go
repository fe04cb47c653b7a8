package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/storage/memory"
)

func TestNotifySkipsEmptyUser(t *testing.T) {
	storage := memory.New(100)
	n := NewNotification(storage)

	n.Notify("", "ignored", domain.SeverityInfo)
	n.Notify("u1", "kept", domain.SeverityInfo)

	assert.Len(t, n.List("u1"), 1)
	assert.Empty(t, n.List(""))
}

func TestNotificationLifecycle(t *testing.T) {
	storage := memory.New(100)
	n := NewNotification(storage)

	n.Notify("u1", "first", domain.SeveritySuccess)
	n.Notify("u1", "second", domain.SeverityError)

	list := n.List("u1")
	assert.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Message)

	n.Remove("u1", list[0].Id)
	assert.Len(t, n.List("u1"), 1)

	n.ClearAll("u1")
	assert.Empty(t, n.List("u1"))
}
