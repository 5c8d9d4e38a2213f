// internals/helpers/oss/video_blob_service.go
package helper

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"surveyku_backend/internals/constants"
)

/*
VideoBlobService adalah facade upload yang seragam untuk controller:
stream file → grant public-read → kembalikan link shareable.
Controller tidak pernah menyentuh SDK OSS langsung, jadi unit test
cukup pakai MockVideoBlobService.
*/
type VideoBlobService interface {
	UploadVideo(ctx context.Context, fh *multipart.FileHeader) (publicURL string, err error)
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS
// --------------------------------------------------

type OSSVideoBlobService struct {
	svc *OSSService
}

// NewOSSVideoBlobServiceFromEnv membangun instance dari ENV.
// Prefix default "videos/" bisa dioverride lewat ALI_OSS_VIDEO_PREFIX.
func NewOSSVideoBlobServiceFromEnv() (*OSSVideoBlobService, error) {
	prefix := getEnv("ALI_OSS_VIDEO_PREFIX")
	if prefix == "" {
		prefix = "videos"
	}
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSVideoBlobService{svc: s}, nil
}

func (b *OSSVideoBlobService) UploadVideo(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Video file missing")
	}
	if fh.Size > constants.MaxVideoUploadSize {
		return "", fiber.NewError(fiber.StatusBadRequest, "Video exceeds the 100MB limit")
	}
	ct := constants.DetectVideoContentType(fh.Filename)
	if ct == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "Unsupported video format")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Cannot read uploaded video")
	}
	defer src.Close()

	key := b.svc.BuildObjectKey(fh.Filename)
	if err := b.svc.UploadStream(ctx, key, src, ct); err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Upload to OSS failed: %v", err))
	}
	if err := b.svc.SetPublicRead(ctx, key); err != nil {
		// object sudah terlanjur naik; bersihkan supaya tidak ada file yatim private
		_ = b.svc.DeleteObject(ctx, key)
		return "", fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Grant public-read failed: %v", err))
	}
	return b.svc.PublicURL(key), nil
}

// --------------------------------------------------
// Helper kecil untuk controller
// --------------------------------------------------

// IsMultipart menilai request multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// ValidateVideoSize menegakkan batas 100MB di boundary request.
// Video kebesaran harus jadi 400 eksplisit, bukan videoAdded:false diam-diam.
func ValidateVideoSize(fh *multipart.FileHeader) error {
	if fh != nil && fh.Size > constants.MaxVideoUploadSize {
		return fiber.NewError(fiber.StatusBadRequest, "Video exceeds the 100MB limit")
	}
	return nil
}

// GetVideoFile mengambil file dari field "video"; (nil, nil) kalau tidak ada
// supaya controller bisa lanjut tanpa video.
func GetVideoFile(c *fiber.Ctx) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, nil
	}
	fh, err := c.FormFile("video")
	if err != nil || fh == nil {
		return nil, nil
	}
	if err := ValidateVideoSize(fh); err != nil {
		return nil, err
	}
	return fh, nil
}

// --------------------------------------------------
// Mock untuk unit test
// --------------------------------------------------

type MockVideoBlobService struct {
	UploadVideoFn func(ctx context.Context, fh *multipart.FileHeader) (string, error)
	Calls         int
}

func (m *MockVideoBlobService) UploadVideo(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	m.Calls++
	if m.UploadVideoFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadVideoFn(ctx, fh)
}
