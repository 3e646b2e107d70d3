// internals/helpers/oss/oss_image.go
package oss

import (
	"bytes"
	"fmt"
	"image"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxPosterEdge = 1600
	webpQuality   = 80
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func newBucket() (*oss.Bucket, error) {
	client, err := oss.New(getEnv("OSS_ENDPOINT"), getEnv("OSS_ACCESS_KEY_ID"), getEnv("OSS_ACCESS_KEY_SECRET"))
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(getEnv("OSS_BUCKET"))
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}
	return bucket, nil
}

// UploadPosterImage converts the uploaded image to webp (bounded to
// maxPosterEdge on the long side) and stores it under posters/ in the
// OSS bucket, returning the public URL.
func UploadPosterImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", fmt.Errorf("image exceeds %dMB limit", maxUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	encoded, err := encodeWebP(img)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("posters/%s-%s.webp", time.Now().Format("20060102"), uuid.New().String())

	bucket, err := newBucket()
	if err != nil {
		return "", err
	}
	if err := bucket.PutObject(key, bytes.NewReader(encoded), oss.ContentType("image/webp")); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}

	base := getEnv("OSS_PUBLIC_BASE_URL")
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", getEnv("OSS_BUCKET"), getEnv("OSS_ENDPOINT"))
	}
	return strings.TrimRight(base, "/") + "/" + key, nil
}

func encodeWebP(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() > maxPosterEdge || bounds.Dy() > maxPosterEdge {
		img = imaging.Fit(img, maxPosterEdge, maxPosterEdge, imaging.Lanczos)
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}
