package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

const (
	maxFileSize       = 5 * 1024 * 1024
	compressThreshold = 1 * 1024 * 1024
	compressedWidth   = 1200
)

// PrepareEvidence validates an uploaded photo and recompresses anything over
// the threshold so phone camera shots don't fill the bucket. Small files
// pass through untouched.
func PrepareEvidence(data []byte, contentType string) ([]byte, string, error) {
	if len(data) > maxFileSize {
		return nil, "", fmt.Errorf("el archivo excede el límite de 5MB")
	}
	if contentType != "image/jpeg" && contentType != "image/png" {
		return nil, "", fmt.Errorf("formato no soportado: %s", contentType)
	}
	if len(data) < compressThreshold {
		return data, contentType, nil
	}

	var (
		img image.Image
		err error
	)
	if contentType == "image/png" {
		img, err = png.Decode(bytes.NewReader(data))
	} else {
		img, err = jpeg.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, "", fmt.Errorf("no se pudo decodificar la imagen: %v", err)
	}

	resized := resize.Resize(compressedWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 80}); err != nil {
		return nil, "", fmt.Errorf("no se pudo recomprimir la imagen: %v", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
