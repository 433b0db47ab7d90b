package signature

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store keeps the signatures of one session as transient PNG files in a work directory.
// Files live only until Release is called after the render attempt.
type Store struct {
	dir     string
	session string
	files   map[Role]string
	logger  *zap.Logger
}

// NewStore creates a store writing into dir.
func NewStore(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		dir:     dir,
		session: uuid.NewString(),
		files:   make(map[Role]string),
		logger:  logger,
	}
}

// Session returns the identifier used in transient file names.
func (s *Store) Session() string {
	return s.session
}

// Save writes img as the signature for role, replacing any earlier one.
// A nil or blank image removes the stored signature and returns an empty path.
func (s *Store) Save(role Role, img image.Image) (string, error) {
	if err := s.remove(role); err != nil {
		return "", err
	}
	if IsBlank(img) {
		return "", nil
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create work directory: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("signature-%s-%s.png", s.session, role))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create signature file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to encode %s signature: %w", role, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write signature file: %w", err)
	}

	s.files[role] = path
	s.logger.Debug("Saved signature", zap.String("role", string(role)), zap.String("path", path))
	return path, nil
}

// Path returns the stored file for role, or "" when none was saved.
func (s *Store) Path(role Role) string {
	return s.files[role]
}

// Load decodes the stored signatures. Missing roles yield nil images.
func (s *Store) Load(ctx context.Context) (sub, foreman image.Image, err error) {
	return LoadPair(ctx, s.files[Subcontractor], s.files[Foreman])
}

// Release removes every file the store wrote. It keeps going after a failure
// and returns all removal errors joined.
func (s *Store) Release() error {
	var errs []error
	for _, role := range Roles {
		if err := s.remove(role); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) remove(role Role) error {
	path, ok := s.files[role]
	if !ok {
		return nil
	}
	delete(s.files, role)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s signature file: %w", role, err)
	}
	s.logger.Debug("Removed signature", zap.String("role", string(role)), zap.String("path", path))
	return nil
}
