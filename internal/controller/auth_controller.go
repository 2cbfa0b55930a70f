package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/luminastore/catalog-service/internal/dto"
	"github.com/luminastore/catalog-service/internal/middleware"
	"github.com/luminastore/catalog-service/internal/service"
	"github.com/luminastore/catalog-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	service service.AuthService
}

func CreateAuthController(e *echo.Group, service service.AuthService, isLoggedIn echo.MiddlewareFunc) {
	c := AuthController{
		service: service,
	}
	e.POST("/auth/login", c.Login)
	e.GET("/auth/env-check", c.EnvCheck)
	e.GET("/auth/me", c.Me, isLoggedIn)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AuthController) EnvCheck(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.service.EnvCheck())
}

func (c *AuthController) Me(e echo.Context) error {
	identity := middleware.TokenIdentity(e)

	return response.WriteSuccessResponse(e, "", identity)
}
