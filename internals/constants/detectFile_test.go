package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectVideoContentType(t *testing.T) {
	assert.Equal(t, "video/webm", DetectVideoContentType("clip.webm"))
	assert.Equal(t, "video/mp4", DetectVideoContentType("CLIP.MP4"))
	assert.Equal(t, "video/quicktime", DetectVideoContentType("a.mov"))
	assert.Equal(t, "", DetectVideoContentType("notes.txt"))
	assert.Equal(t, "", DetectVideoContentType("noext"))
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleAsker))
	assert.False(t, IsValidRole("SUPERUSER"))

	assert.True(t, IsRegisterableRole(RoleResponder))
	assert.False(t, IsRegisterableRole(RoleAdmin), "ADMIN is never self-assignable")
}
