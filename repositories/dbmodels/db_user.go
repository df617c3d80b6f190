package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/utils"
)

type DbUser struct {
	Id        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumns = utils.ColumnList[DbUser]()

func AdaptUser(db DbUser) (models.User, error) {
	return models.User{
		Id:        db.Id,
		Email:     db.Email,
		FirstName: db.FirstName,
		LastName:  db.LastName,
		Role:      models.Role(db.Role),
		CreatedAt: db.CreatedAt,
	}, nil
}
