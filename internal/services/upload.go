package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

const (
	// MaxImageSizeBytes caps uploaded image size.
	MaxImageSizeBytes = 5 * 1024 * 1024

	uploadChunkSize = 1024 * 1024
)

// allowedImageTypes is checked against the declared Content-Type only; no
// magic-byte sniffing is performed.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var (
	ErrImageRequired        = errors.New("image file is required")
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrImageTooLarge        = errors.New("image too large")
)

// UploadService validates incoming image streams and writes them under a
// fixed directory. The checks run in a fixed order: filename, declared
// content type, then size while streaming.
type UploadService struct {
	dir string
	now func() time.Time
}

func NewUploadService(dir string) *UploadService {
	return &UploadService{
		dir: dir,
		now: time.Now,
	}
}

// Store streams an image to disk in 1 MiB chunks and returns the
// root-relative reference to persist. The body is never buffered whole: the
// running byte count is checked per chunk and an overflow aborts the write
// and removes the partial file (best effort).
func (s *UploadService) Store(r io.Reader, contentType, filename string) (string, error) {
	if filename == "" {
		return "", ErrImageRequired
	}

	if !allowedImageTypes[contentType] {
		return "", ErrUnsupportedImageType
	}

	// Timestamp prefix keeps repeated uploads of the same file apart
	safeName := fmt.Sprintf("%d_%s", s.now().Unix(), secureFilename(filename))
	path := filepath.Join(s.dir, safeName)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	var size int64
	buf := make([]byte, uploadChunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			size += int64(n)
			if size > MaxImageSizeBytes {
				f.Close()
				os.Remove(path)
				return "", ErrImageTooLarge
			}
			if _, err := f.Write(buf[:n]); err != nil {
				f.Close()
				os.Remove(path)
				return "", err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			f.Close()
			os.Remove(path)
			return "", readErr
		}
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	return "/uploads/" + safeName, nil
}

// secureFilename reduces a client-supplied filename to a safe basename:
// directory components are discarded and anything outside letters, digits,
// underscore, hyphen and dot is stripped.
func secureFilename(filename string) string {
	base := filepath.Base(filename)

	var b strings.Builder
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}

	safe := b.String()
	if safe == "" || strings.Trim(safe, ".") == "" {
		return "image"
	}
	return safe
}
