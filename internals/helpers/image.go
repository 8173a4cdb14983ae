package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	imageMaxWidth  = 1600
	imageMaxHeight = 1600
	webpQuality    = 80
)

// SaveImageAsWebP decodes an uploaded image (jpeg/png/gif/...), downscales it
// to fit the max bounds and stores it under dir as a .webp file. Returns the
// stored path relative to dir's parent, e.g. "uploads/artworks/<name>.webp".
func SaveImageAsWebP(dir, folder string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(buf.Bytes()), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("unsupported image: %w", err)
	}
	img = imaging.Fit(img, imageMaxWidth, imageMaxHeight, imaging.CatmullRom)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	name := GenerateUniqueFilename(fh.Filename)
	rel := filepath.Join(folder, name+".webp")
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, out.Bytes(), 0o644); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(filepath.Base(dir), rel)), nil
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func GenerateUniqueFilename(original string) string {
	base := strings.TrimSuffix(original, filepath.Ext(original))
	safe := unsafeFilename.ReplaceAllString(base, "_")
	return fmt.Sprintf("%s-%s-%s", time.Now().Format("20060102"), uuid.New().String(), safe)
}
