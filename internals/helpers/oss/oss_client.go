// internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// material uploads are guarded lightly in the controller too
const MaxUploadSize = int64(10 * 1024 * 1024)

/* =======================================================================
   Client
======================================================================= */

type Client struct {
	bucket    *oss.Bucket
	publicURL string
}

// NewClientFromEnv builds the OSS client from OSS_ENDPOINT, OSS_ACCESS_KEY,
// OSS_SECRET_KEY, OSS_BUCKET and optional OSS_PUBLIC_BASE_URL.
func NewClientFromEnv() (*Client, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY")
	keySecret := getEnv("OSS_SECRET_KEY")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, errors.New("OSS env is incomplete (OSS_ENDPOINT/OSS_ACCESS_KEY/OSS_SECRET_KEY/OSS_BUCKET)")
	}

	cli, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	publicURL := getEnv("OSS_PUBLIC_BASE_URL")
	if publicURL == "" {
		// virtual-host style: bucket.endpoint
		publicURL = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}

	return &Client{bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

/* =======================================================================
   Upload
======================================================================= */

// UploadMaterial stores one uploaded material. Images are recompressed to
// WebP first; other MIME types are stored as-is. Returns the public URL,
// the stored content type and the stored size.
func (c *Client) UploadMaterial(folder string, fh *multipart.FileHeader) (string, string, int64, error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", 0, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", "", 0, fmt.Errorf("read upload: %w", err)
	}

	data := buf.Bytes()
	contentType := fh.Header.Get("Content-Type")
	name := fh.Filename

	if isImage(data, name) {
		if converted, err := ConvertToWebP(data, name); err == nil {
			data = converted
			contentType = "image/webp"
			name = strings.TrimSuffix(name, filepath.Ext(name)) + ".webp"
		}
		// on conversion failure keep the original bytes
	}

	key := GenerateObjectKey(folder, name)
	if err := c.bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType)); err != nil {
		return "", "", 0, fmt.Errorf("oss put: %w", err)
	}

	return c.publicURL + "/" + key, contentType, int64(len(data)), nil
}

// DeleteByPublicURL removes the object behind a stored material URL.
func (c *Client) DeleteByPublicURL(fullURL string) error {
	u, err := url.Parse(fullURL)
	if err != nil {
		return err
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return errors.New("empty object key")
	}
	return c.bucket.DeleteObject(key)
}

func GenerateObjectKey(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	safe := sanitizeFilename(originalFilename)
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), safe)
}

func sanitizeFilename(filename string) string {
	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

/* =======================================================================
   Image → WebP (sniff MIME, downscale keep-aspect, encode)
======================================================================= */

func isImage(data []byte, filename string) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	if strings.HasPrefix(ct, "image/") {
		return true
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

func ConvertToWebP(data []byte, filename string) ([]byte, error) {
	img, err := decodeImage(data, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, 1600, 1600)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, errors.New("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

// downscale keep-aspect with CatmullRom
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	nw, nh := int(float64(w)*scale), int(float64(h)*scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
