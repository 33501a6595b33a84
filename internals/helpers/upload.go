package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// GenerateUniqueFilename keeps the original extension and prefixes a
// timestamp + short uuid so concurrent uploads never collide.
func GenerateUniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%d_%s_%s%s", time.Now().Unix(), uuid.NewString()[:8], base, ext)
}

// SaveUploadedFile streams a multipart file to dir and returns the stored path.
func SaveUploadedFile(fh *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst := filepath.Join(dir, GenerateUniqueFilename(fh.Filename))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return dst, nil
}

// SaveImageAsWebp decodes an uploaded image, bounds it to maxDim on the longest
// side and re-encodes it as webp under dir. Profile photos go through this so
// the uploads tree stays small regardless of what the client sends.
func SaveImageAsWebp(fh *multipart.FileHeader, dir string, maxDim int) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if maxDim > 0 {
		b := img.Bounds()
		if b.Dx() > maxDim || b.Dy() > maxDim {
			img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := fmt.Sprintf("%d_%s.webp", time.Now().Unix(), uuid.NewString()[:8])
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write webp: %w", err)
	}
	return dst, nil
}
