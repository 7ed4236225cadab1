package data

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ImagePattern lists the image extensions a note may reference.
const ImagePattern = "*.{jpg,jpeg,png,gif}"

// ValidateImagePath checks that path names a supported image type and returns
// it in absolute form. The file itself is never opened. A blank path means
// "no image" and yields "" without error.
func ValidateImagePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	base := strings.ToLower(filepath.Base(path))
	ok, err := doublestar.Match(ImagePattern, base)
	if err != nil {
		return "", fmt.Errorf("failed to match image pattern: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("%w: %s (expected jpg, jpeg, png or gif)", ErrInvalidImagePath, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve image path: %w", err)
	}
	return abs, nil
}
