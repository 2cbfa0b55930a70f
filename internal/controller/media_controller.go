package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/luminastore/catalog-service/internal/dto"
	"github.com/luminastore/catalog-service/internal/service"
	"github.com/luminastore/catalog-service/pkg/errs"
	"github.com/luminastore/catalog-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type MediaController struct {
	service service.MediaService
}

func CreateMediaController(e *echo.Group, service service.MediaService, isLoggedIn echo.MiddlewareFunc) {
	c := MediaController{
		service: service,
	}
	e.POST("/media/upload", c.Upload, isLoggedIn)
	e.GET("/media/sign", c.SignURL, isLoggedIn)
	e.POST("/media/sign-upload", c.SignUpload, isLoggedIn)
}

func (c *MediaController) Upload(e echo.Context) error {
	fileHeader, err := e.FormFile("file")
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}
	defer file.Close()

	resp, err := c.service.Upload(e.Request().Context(), file, e.FormValue("folder"))
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrMediaAuthority, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MediaController) SignURL(e echo.Context) error {
	publicID := e.QueryParam("public_id")
	if publicID == "" {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.SignURL(e.Request().Context(), publicID, e.QueryParam("type"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MediaController) SignUpload(e echo.Context) error {
	payload := dto.UploadSignatureRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SignUpload").Msg("")
	}

	resp, err := c.service.SignUpload(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
