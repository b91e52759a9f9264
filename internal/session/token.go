package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the signed session token. The token only proves identity
// plus session id; the authoritative state lives in the Redis record.
type Claims struct {
	AdminID   uint
	Username  string
	Role      string
	SessionID string
}

func SignToken(secret string, claims Claims, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      float64(claims.AdminID),
		"username": claims.Username,
		"role":     claims.Role,
		"sid":      claims.SessionID,
		"iat":      now.Unix(),
		"exp":      now.Add(TTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature and expiry and extracts the claims.
func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNotFound
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNotFound
	}

	adminID, ok1 := mc["sub"].(float64)
	username, ok2 := mc["username"].(string)
	sid, ok3 := mc["sid"].(string)
	role, _ := mc["role"].(string)
	if !ok1 || !ok2 || !ok3 {
		return nil, ErrNotFound
	}

	return &Claims{
		AdminID:   uint(adminID),
		Username:  username,
		Role:      role,
		SessionID: sid,
	}, nil
}
