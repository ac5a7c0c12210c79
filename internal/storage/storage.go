// Package storage keeps uploaded resumes outside the database and hands
// back a URL the rest of the service stores and redirects to.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"jobify/internal/config"

	"github.com/google/uuid"
)

// ResumeFolder is the folder every resume upload lands in.
const ResumeFolder = "job-portal/resumes"

type Storage interface {
	// Upload stores data under folder and returns its public URL.
	Upload(ctx context.Context, folder, filename string, data []byte) (string, error)
}

// New picks the backend named in cfg.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "cloudinary":
		return NewCloudinary(cfg.CloudinaryURL)
	case "local":
		return NewLocal(cfg.LocalDir, cfg.PublicURL), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// objectName gives every upload a unique name while keeping the original
// extension, which later tells the text extractor what it is reading.
func objectName(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return uuid.NewString() + ext
}
