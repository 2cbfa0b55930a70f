package service

import (
	"context"
	"strings"

	"github.com/luminastore/catalog-service/config"
	"github.com/luminastore/catalog-service/internal/dto"
	"github.com/luminastore/catalog-service/pkg/errs"
	"github.com/luminastore/catalog-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

type AuthServiceImpl struct {
	config config.Config
}

func CreateAuthService(config config.Config) AuthService {
	return &AuthServiceImpl{config: config}
}

func (s *AuthServiceImpl) adminCredentials() (username string, password string) {
	username = s.config.AdminConfig.Username
	if username == "" {
		username = defaultAdminUsername
	}

	password = s.config.AdminConfig.Password
	if password == "" {
		password = defaultAdminPassword
	}

	return
}

func (s *AuthServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (resp dto.LoginResponse, err error) {
	adminUsername, adminPassword := s.adminCredentials()

	userValid := payload.Username == adminUsername

	// A configured value with the bcrypt prefix is a hash, anything else is
	// compared as plain text.
	var passwordValid bool
	if strings.HasPrefix(adminPassword, "$2") {
		passwordValid = bcrypt.CompareHashAndPassword([]byte(adminPassword), []byte(payload.Password)) == nil
	} else {
		passwordValid = payload.Password == adminPassword
	}

	if !userValid || !passwordValid {
		log.Ctx(ctx).Error().Str("component", "Login").Msg("invalid admin credentials")
		return resp, errs.ErrInvalidCredentials
	}

	token, err := utils.CreateJWTToken(adminUsername, "admin", s.config.JWTSecret)
	if err != nil {
		return
	}

	resp.AccessToken = token

	return resp, nil
}

func (s *AuthServiceImpl) EnvCheck() dto.EnvCheckResponse {
	adminUsername, adminPassword := s.adminCredentials()

	sample := adminUsername
	if len(sample) > 2 {
		sample = sample[:2]
	}

	return dto.EnvCheckResponse{
		AdminUserConfigured:     adminUsername != "",
		AdminUserValueSample:    sample + "***",
		AdminPasswordConfigured: adminPassword != "",
		AdminPasswordIsHashed:   strings.HasPrefix(adminPassword, "$2"),
	}
}
