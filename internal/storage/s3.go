package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/empresatech/resource-booking/internal/config"
)

const (
	maxPhotoWidth = 1280
	webpQuality   = 80
)

// Uploader grava fotos de recursos no bucket S3, sempre reencodadas em webp.
type Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewUploader devolve nil quando não há bucket configurado.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}

	creds := credentials.NewStaticCredentialsProvider(
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		"",
	)

	client := s3.New(s3.Options{
		Region:       cfg.S3Region,
		Credentials:  creds,
		UsePathStyle: cfg.S3Endpoint != "",
		BaseEndpoint: optionalEndpoint(cfg.S3Endpoint),
	})

	return &Uploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: cfg.PhotoPublicURL,
	}
}

func optionalEndpoint(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}

// UploadResourcePhoto decodifica a imagem, reduz para no máximo
// maxPhotoWidth de largura e sobe como webp sob uma chave uuid.
// Retorna a URL pública do objeto.
func (u *Uploader) UploadResourcePhoto(ctx context.Context, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	src = scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := "resources/" + uuid.NewString() + ".webp"

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.publicURL, key), nil
}

func scaleDown(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxPhotoWidth {
		return src
	}

	ratio := float64(maxPhotoWidth) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, maxPhotoWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
