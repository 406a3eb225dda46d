// File: internal/session/session.go
package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Session 為自包含的登入憑證內容，僅存在於簽章後的 token 中，
// 伺服器端不保存任何 session 狀態
type Session struct {
	UserID    int    `json:"uid"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"exp"`
}

// Expired 回傳 session 是否已過期
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt > 0 && now.Unix() >= s.ExpiresAt
}

// Manager 將 Session 與不透明 token 字串互相轉換
// token 格式為 base64url(payload) + "." + base64url(signature)
type Manager struct {
	signer *Signer
	ttl    time.Duration

	// 測試可覆寫此變數
	now func() time.Time
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{
		signer: NewSigner(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL 回傳 token 的存活期間，供 cookie 傳輸層設定 max-age
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create 將 session 序列化、編碼並簽章為 token
// 到期時間寫入簽章內容本身，重放已過期 token 於應用層即失效
func (m *Manager) Create(s Session) (string, error) {
	s.ExpiresAt = m.now().Add(m.ttl).Unix()
	payload, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	sig := m.signer.Sign([]byte(encoded))
	return encoded + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// Parse 驗證並還原 token，任何一種失敗都回傳 nil 而非錯誤：
// 分段數不為二、任一段為空、簽章不符、base64 或 JSON 解碼失敗、已過期。
// 簽章驗證先於解碼，未通過驗證的內容一律不信任。
// base64 採 strict 模式，尾端填充位元不為零即拒絕，
// 確保 token 任一 bit 被翻轉都會解析失敗。
func (m *Manager) Parse(token string) *Session {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil
	}
	sig, err := base64.RawURLEncoding.Strict().DecodeString(parts[1])
	if err != nil {
		return nil
	}
	if !m.signer.Verify([]byte(parts[0]), sig) {
		return nil
	}
	payload, err := base64.RawURLEncoding.Strict().DecodeString(parts[0])
	if err != nil {
		return nil
	}
	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil
	}
	if s.Expired(m.now()) {
		return nil
	}
	return &s
}
