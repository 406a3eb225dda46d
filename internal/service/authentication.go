// File: internal/service/authentication.go
package service

import (
	"errors"

	"brainfeed/internal/model"
)

// AuthenticateUser 以明文密碼驗證使用者，成功回傳使用者本身
// 失敗一律回傳相同錯誤，不透露帳號是否存在
func AuthenticateUser(user model.User, password string) (*model.User, error) {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, errors.New("invalid credentials")
	}
	return &user, nil
}
