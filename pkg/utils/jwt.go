package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/luminastore/catalog-service/pkg/errs"
)

func CreateJWTToken(username string, role string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["sub"] = username
	claims["role"] = role
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

func ParseJWTToken(tokenString string, jwtSecretKey string) (username string, role string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", "", errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errs.ErrNotLoggedIn
	}

	username, _ = claims["sub"].(string)
	role, _ = claims["role"].(string)

	return username, role, nil
}
