package helper

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyku_backend/internals/constants"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "video-intro", slugify("Video Intro"))
	assert.Equal(t, "rekaman-final", slugify("rekaman_final"))
	assert.Equal(t, "abc123", slugify("  ABC123!@# "))
	assert.Equal(t, "file", slugify("???"))
	assert.Equal(t, "file", slugify(""))
}

func TestBuildObjectKey(t *testing.T) {
	s := &OSSService{Prefix: "videos"}

	key := s.BuildObjectKey("My Recording.MP4")
	assert.True(t, strings.HasPrefix(key, "videos/my-recording_"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))

	other := s.BuildObjectKey("My Recording.MP4")
	assert.NotEqual(t, key, other, "keys must be unique per upload")
}

func TestBuildObjectKeyNoPrefix(t *testing.T) {
	s := &OSSService{}
	key := s.BuildObjectKey("clip.webm")
	assert.False(t, strings.HasPrefix(key, "/"))
	assert.True(t, strings.HasPrefix(key, "clip_"))
}

func TestPublicURL(t *testing.T) {
	s := &OSSService{
		Endpoint:   "https://oss-ap-southeast-5.aliyuncs.com",
		BucketName: "survey-videos",
	}

	assert.Equal(t,
		"https://survey-videos.oss-ap-southeast-5.aliyuncs.com/videos/a.mp4",
		s.PublicURL("videos/a.mp4"))
	assert.Equal(t, "", s.PublicURL(""))
}

func TestPublicURLWithBaseOverride(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.example.com/")
	s := &OSSService{Endpoint: "ignored", BucketName: "ignored"}
	assert.Equal(t, "https://cdn.example.com/videos/a.mp4", s.PublicURL("videos/a.mp4"))
}

func TestValidateVideoSize(t *testing.T) {
	assert.NoError(t, ValidateVideoSize(nil))
	assert.NoError(t, ValidateVideoSize(&multipart.FileHeader{Size: constants.MaxVideoUploadSize}))

	err := ValidateVideoSize(&multipart.FileHeader{Size: constants.MaxVideoUploadSize + 1})
	require.Error(t, err)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestMockVideoBlobServiceCountsCalls(t *testing.T) {
	mock := &MockVideoBlobService{
		UploadVideoFn: func(ctx context.Context, fh *multipart.FileHeader) (string, error) {
			return "https://cdn.example.com/videos/x.mp4", nil
		},
	}

	url, err := mock.UploadVideo(context.Background(), &multipart.FileHeader{Filename: "x.mp4"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/videos/x.mp4", url)
	assert.Equal(t, 1, mock.Calls)

	empty := &MockVideoBlobService{}
	_, err = empty.UploadVideo(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, 1, empty.Calls)
}
