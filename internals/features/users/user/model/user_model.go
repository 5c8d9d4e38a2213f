package model

import (
	"time"
)

// UserModel merepresentasikan tabel users di database.
// Password selalu berisi hash bcrypt, tidak pernah plaintext.
type UserModel struct {
	UserID    int       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	LastName  string    `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Email     string    `gorm:"column:email;size:255;unique;not null" json:"email"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	Role      string    `gorm:"column:role;type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string {
	return "users"
}
