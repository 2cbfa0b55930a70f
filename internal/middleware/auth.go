package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/luminastore/catalog-service/internal/dto"
	"github.com/luminastore/catalog-service/pkg/errs"
	"github.com/luminastore/catalog-service/pkg/response"
	"github.com/luminastore/catalog-service/pkg/utils"
)

const identityContextKey = "identity"

// Auth gates admin routes: it verifies the bearer token and requires the
// admin role, then stores the verified identity on the request context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

			username, role, err := utils.ParseJWTToken(token, jwtSecret)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			if role != "admin" {
				return response.WriteErrorResponse(c, errs.ErrNoPermission, nil)
			}

			c.Set(identityContextKey, dto.AdminIdentity{Username: username, Role: role})

			return next(c)
		}
	}
}

func TokenIdentity(c echo.Context) dto.AdminIdentity {
	identity, ok := c.Get(identityContextKey).(dto.AdminIdentity)
	if !ok {
		return dto.AdminIdentity{}
	}

	return identity
}
