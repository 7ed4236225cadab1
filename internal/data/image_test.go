package data

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImagePath(t *testing.T) {
	for _, in := range []string{"/pics/cat.jpg", "/pics/cat.JPEG", "dog.png", "/a/b/anim.gif"} {
		got, err := ValidateImagePath(in)
		require.NoError(t, err, in)
		assert.True(t, filepath.IsAbs(got), got)
		assert.Equal(t, filepath.Base(in), filepath.Base(got))
	}
}

func TestValidateImagePathBlank(t *testing.T) {
	got, err := ValidateImagePath("  ")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidateImagePathRejectsOtherTypes(t *testing.T) {
	for _, in := range []string{"notes.txt", "/pics/cat.bmp", "jpg", "/pics/png/"} {
		_, err := ValidateImagePath(in)
		assert.ErrorIs(t, err, ErrInvalidImagePath, in)
	}
}
