package filemgr

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// UploadDir holds recipe photos, served under /static/recipepic.
const UploadDir = "./static/recipepic"

const MaxUploadSize = 10 << 20

var (
	allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	allowedMIMEs      = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
)

func isExtensionAllowed(ext string) bool {
	return slices.Contains(allowedExtensions, ext)
}

func isMIMEAllowed(mimeType string) bool {
	return slices.Contains(allowedMIMEs, mimeType)
}

// SaveImageWithThumb validates and stores an uploaded recipe photo,
// re-encoded as JPEG with EXIF discarded, together with a Lanczos
// thumbnail. Returns the stored paths relative to the working directory.
func SaveImageWithThumb(file multipart.File, header *multipart.FileHeader, thumbWidth int) (string, string, error) {
	if header.Size > MaxUploadSize {
		return "", "", fmt.Errorf("file too large")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isExtensionAllowed(ext) {
		return "", "", fmt.Errorf("extension %q not allowed", ext)
	}
	if mimeType := header.Header.Get("Content-Type"); !isMIMEAllowed(mimeType) {
		return "", "", fmt.Errorf("mime type %q not allowed", mimeType)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	if err := os.MkdirAll(UploadDir, 0755); err != nil {
		return "", "", err
	}

	base := uuid.New().String()
	mainPath := filepath.Join(UploadDir, base+".jpg")
	if err := imaging.Save(img, mainPath, imaging.JPEGQuality(90)); err != nil {
		return "", "", fmt.Errorf("save image: %w", err)
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	thumbPath := filepath.Join(UploadDir, base+"_thumb.jpg")
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(85)); err != nil {
		return "", "", fmt.Errorf("save thumbnail: %w", err)
	}

	return mainPath, thumbPath, nil
}
