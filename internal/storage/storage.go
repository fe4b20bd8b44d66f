package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store owns the two flat directories the service works with: uploads holds
// request-scoped audio clips, outputs holds synthesized audio that is served
// back by filename.
type Store struct {
	UploadDir string
	OutputDir string
}

func New(uploadDir, outputDir string) (*Store, error) {
	for _, dir := range []string{uploadDir, outputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return &Store{
		UploadDir: uploadDir,
		OutputDir: outputDir,
	}, nil
}

// NewUploadPath returns a unique path for an incoming audio clip.
func (s *Store) NewUploadPath() string {
	return filepath.Join(s.UploadDir, uuid.NewString()+".wav")
}

// NewOutputName returns a unique filename for a synthesized clip.
func (s *Store) NewOutputName() string {
	return uuid.NewString() + ".mp3"
}

func (s *Store) OutputPath(name string) string {
	return filepath.Join(s.OutputDir, name)
}

func (s *Store) SaveUpload(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}
	return nil
}

// Remove deletes a scoped upload. Failures are logged and swallowed so a
// cleanup error never replaces the primary response.
func (s *Store) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[storage] remove %s: %v", path, err)
	}
}
