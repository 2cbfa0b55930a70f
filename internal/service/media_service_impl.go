package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/luminastore/catalog-service/config"
	"github.com/luminastore/catalog-service/internal/dto"
	"github.com/oklog/ulid/v2"
)

type MediaServiceImpl struct {
	gateway MediaGateway
	config  config.Config
}

func CreateMediaService(gateway MediaGateway, config config.Config) MediaService {
	return &MediaServiceImpl{gateway: gateway, config: config}
}

func (s *MediaServiceImpl) Upload(ctx context.Context, file io.Reader, folder string) (resp dto.UploadResponse, err error) {
	if folder == "" {
		folder = s.config.CloudinaryConfig.UploadFolder
	}

	return s.gateway.Upload(ctx, file, folder)
}

func (s *MediaServiceImpl) SignURL(ctx context.Context, publicID string, resourceType string) (resp dto.SignURLResponse, err error) {
	if resourceType == "" {
		resourceType = "image"
	}

	signedURL, err := s.gateway.SignDeliveryURL(publicID, resourceType)
	if err != nil {
		return
	}

	resp.URL = signedURL

	return resp, nil
}

// SignUpload produces the signature payload a browser needs to push file
// bytes straight to the media authority.
func (s *MediaServiceImpl) SignUpload(ctx context.Context, req dto.UploadSignatureRequest) (resp dto.UploadSignatureResponse, err error) {
	folder := req.Folder
	if folder == "" {
		folder = s.config.CloudinaryConfig.UploadFolder
	}

	publicID := req.PublicID
	if publicID == "" {
		publicID = ulid.Make().String()
	}

	overwrite := true
	if req.Overwrite != nil {
		overwrite = *req.Overwrite
	}

	resourceType := req.Type
	if resourceType == "" {
		resourceType = "image"
	}

	timestamp := time.Now().Unix()

	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))
	params.Set("access_mode", "authenticated")
	params.Set("folder", folder)
	params.Set("public_id", publicID)
	params.Set("overwrite", strconv.FormatBool(overwrite))

	signature, err := s.gateway.SignUploadParams(params)
	if err != nil {
		return
	}

	resp = dto.UploadSignatureResponse{
		UploadURL:  fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/%s/upload", s.gateway.CloudName(), resourceType),
		Timestamp:  timestamp,
		Signature:  signature,
		APIKey:     s.gateway.APIKey(),
		CloudName:  s.gateway.CloudName(),
		AccessMode: "authenticated",
		Folder:     folder,
		PublicID:   publicID,
		Overwrite:  overwrite,
	}

	return resp, nil
}
