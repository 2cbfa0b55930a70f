package media

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/asset"
	"github.com/luminastore/catalog-service/config"
	"github.com/luminastore/catalog-service/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// CloudinaryClient wraps the Cloudinary SDK. Assets are stored with the
// authenticated delivery type, so every shopper-facing URL has to be signed.
type CloudinaryClient struct {
	cld          *cloudinary.Cloudinary
	cb           *gobreaker.CircuitBreaker[string]
	signedURLTTL time.Duration
}

func CreateCloudinaryClient(config *config.Config, cb *gobreaker.CircuitBreaker[string]) (*CloudinaryClient, error) {
	cld, err := cloudinary.NewFromParams(config.CloudinaryConfig.CloudName, config.CloudinaryConfig.APIKey, config.CloudinaryConfig.APISecret)
	if err != nil {
		return nil, err
	}

	return &CloudinaryClient{
		cld:          cld,
		cb:           cb,
		signedURLTTL: time.Duration(config.CloudinaryConfig.SignedURLTTL) * time.Second,
	}, nil
}

func (c *CloudinaryClient) CloudName() string {
	return c.cld.Config.Cloud.CloudName
}

func (c *CloudinaryClient) APIKey() string {
	return c.cld.Config.Cloud.APIKey
}

func (c *CloudinaryClient) Upload(ctx context.Context, file io.Reader, folder string) (resp dto.UploadResponse, err error) {
	result, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
		Type:         "authenticated",
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return
	}

	resp = dto.UploadResponse{
		PublicID:     result.PublicID,
		ResourceType: result.ResourceType,
		Width:        result.Width,
		Height:       result.Height,
		Format:       result.Format,
	}

	return resp, nil
}

// SignedReadURL looks up the stored format of the asset and issues a
// time-limited private download URL for it. The metadata lookup and the
// signing share one circuit breaker so a flapping Cloudinary API trips fast.
func (c *CloudinaryClient) SignedReadURL(ctx context.Context, publicID string, resourceType string) (string, error) {
	return c.cb.Execute(func() (string, error) {
		info, err := c.cld.Admin.Asset(ctx, admin.AssetParams{
			PublicID:     publicID,
			AssetType:    api.AssetType(resourceType),
			DeliveryType: "authenticated",
		})
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "SignedReadURL").Msg("")
			return "", err
		}

		expiry := time.Unix(c.expiresAt(time.Now()), 0)

		return c.cld.Upload.PrivateDownloadURL(uploader.PrivateDownloadURLParams{
			PublicID:     publicID,
			Format:       info.Format,
			DeliveryType: "authenticated",
			ResourceType: api.AssetType(resourceType),
			ExpiresAt:    &expiry,
		})
	})
}

func (c *CloudinaryClient) expiresAt(now time.Time) int64 {
	return now.Add(c.signedURLTTL).Unix()
}

// SignDeliveryURL builds a signed res.cloudinary.com delivery URL for an
// authenticated asset.
func (c *CloudinaryClient) SignDeliveryURL(publicID string, resourceType string) (string, error) {
	var a *asset.Asset
	var err error

	if resourceType == "video" {
		a, err = c.cld.Video(publicID)
	} else {
		a, err = c.cld.Image(publicID)
	}
	if err != nil {
		return "", err
	}

	a.DeliveryType = "authenticated"
	a.Config.URL.SignURL = true

	return a.String()
}

// SignUploadParams signs the payload a browser sends along with a direct
// upload, so file bytes never pass through this service.
func (c *CloudinaryClient) SignUploadParams(params url.Values) (string, error) {
	return api.SignParameters(params, c.cld.Config.Cloud.APISecret)
}
