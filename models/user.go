package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      Role
	CreatedAt time.Time
}

func (u User) FullName() string {
	return u.IntoCredentials().ActorName()
}
