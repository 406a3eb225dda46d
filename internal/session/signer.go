// File: internal/session/signer.go
package session

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Signer 以共享密鑰對任意位元組資料產生 HMAC-SHA256 簽章
// 密鑰於建構時注入，建構後唯讀，可安全地被多個請求共用
type Signer struct {
	secret []byte
}

func NewSigner(secret []byte) *Signer {
	return &Signer{secret: secret}
}

// Sign 回傳 data 的 HMAC-SHA256 簽章，相同輸入必得相同輸出
func (s *Signer) Sign(data []byte) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(data)
	return mac.Sum(nil)
}

// Verify 重新計算簽章並以常數時間比較，長度不符直接視為失敗
func (s *Signer) Verify(data, sig []byte) bool {
	return hmac.Equal(s.Sign(data), sig)
}
