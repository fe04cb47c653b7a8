package service

import (
	"github.com/threadmind-dev/threadmind/internal/domain"
)

type NotificationService interface {
	Notify(uid domain.UserId, message, typ string)
	List(uid domain.UserId) []*domain.Notification
	Remove(uid domain.UserId, id string)
	ClearAll(uid domain.UserId)
}

type Notification struct {
	storage NotificationStorage
}

type NotificationStorage interface {
	AddNotification(uid domain.UserId, message, typ string) *domain.Notification
	Notifications(uid domain.UserId) []*domain.Notification
	RemoveNotification(uid domain.UserId, id string)
	ClearNotifications(uid domain.UserId)
}

func NewNotification(storage NotificationStorage) *Notification {
	return &Notification{storage}
}

func (n *Notification) Notify(uid domain.UserId, message, typ string) {
	if uid == "" {
		return
	}
	n.storage.AddNotification(uid, message, typ)
}

func (n *Notification) List(uid domain.UserId) []*domain.Notification {
	return n.storage.Notifications(uid)
}

func (n *Notification) Remove(uid domain.UserId, id string) {
	n.storage.RemoveNotification(uid, id)
}

func (n *Notification) ClearAll(uid domain.UserId) {
	n.storage.ClearNotifications(uid)
}
