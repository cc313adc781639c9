package models

type User struct {
	Id       int    `db:"id"`
	Email    string `db:"email"`
	IsAdmin  bool   `db:"is_admin"`
	UserType string `db:"-"`
	PassHash []byte `db:"password_hash"`
}
