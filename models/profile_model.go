package models

import (
	"github.com/google/uuid"
)

type ProfileModel struct {
	UserId       string `bson:"_id"`
	Username     string `bson:"username"`
	Email        string `bson:"email"`
	Bio          string `bson:"bio"`
	Image        string `bson:"image"`
	PasswordHash string `bson:"passwordHash"`
	CreatedOn    int64  `bson:"createdOn"`
}

func (p *ProfileModel) Id() string {
	if len(p.UserId) == 0 {
		p.UserId = uuid.NewString()
	}
	return p.UserId
}
