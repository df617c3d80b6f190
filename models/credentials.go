package models

import "github.com/google/uuid"

type Role string

const (
	ROLE_ADMIN    Role = "ADMIN"
	ROLE_OPERATOR Role = "OPERATOR"
)

type Identity struct {
	UserId    *uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

// Credentials identify the actor of an audited action. They are established by
// the enclosing web framework and carried in the request context; scheduled
// jobs run without credentials and are recorded as system actions.
type Credentials struct {
	ActorIdentity Identity
	Role          Role
}

func (c Credentials) ActorName() string {
	switch {
	case c.ActorIdentity.FirstName != "" || c.ActorIdentity.LastName != "":
		if c.ActorIdentity.FirstName == "" {
			return c.ActorIdentity.LastName
		}
		if c.ActorIdentity.LastName == "" {
			return c.ActorIdentity.FirstName
		}
		return c.ActorIdentity.FirstName + " " + c.ActorIdentity.LastName
	case c.ActorIdentity.Email != "":
		return c.ActorIdentity.Email
	default:
		return ""
	}
}

func (u User) IntoCredentials() Credentials {
	userId := u.Id
	return Credentials{
		ActorIdentity: Identity{
			UserId:    &userId,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		},
		Role: u.Role,
	}
}
