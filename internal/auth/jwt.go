package auth

import (
	"errors"
	"time"

	"blogapi/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the JWT payload: the token asserts only the subject id.
// It embeds RegisteredClaims so expiration and issuance metadata are centralized.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// GenerateToken 为指定用户签发 token，有效期为配置中的固定 TTL。
func GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.GlobalConfig.JWT.Expire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.GlobalConfig.JWT.Secret))
}

// ParseToken validates signature + expiry. Malformed, badly signed and
// expired tokens all come back as a plain error; callers only log the detail.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.GlobalConfig.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
