// File: internal/model/author.go
package model

type Author struct {
	ID     int    `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Avatar string `db:"avatar" json:"avatar"`
	Role   string `db:"role" json:"role"`
	Bio    string `db:"bio" json:"bio"`
}
