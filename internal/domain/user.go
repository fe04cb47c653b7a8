package domain

import "time"

type User struct {
	Id        UserId    `json:"id"`
	Name      string    `json:"name"`
	Email     Email     `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	PassHash  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRef is the denormalized author snapshot embedded into threads and
// comments at creation time. Profile changes do not update old snapshots.
type UserRef struct {
	Id     UserId `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

func (u *User) Ref() UserRef {
	return UserRef{Id: u.Id, Name: u.Name, Avatar: u.Avatar}
}

type Credentials struct {
	Email    Email
	Password Password
}
