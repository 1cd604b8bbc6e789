package storage

import (
	"fmt"
	"path"

	"preizo/internal/layout"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultLogoFiles are the file names of the logos in the static directory.
var DefaultLogoFiles = map[layout.Logo]string{
	layout.LogoStore:     "kemper_markt_logo.png",
	layout.LogoPromotion: "sonder_angebot_logo.png",
	layout.LogoBio:       "bio_logo.png",
}

// LogoStore resolves logical logo names to files. Existence is checked once
// when the store is built; a missing logo is simply not offered.
type LogoStore struct {
	fs        afero.Fs
	available map[layout.Logo]string
}

func NewLogoStore(fs afero.Fs, files map[layout.Logo]string, logger *zap.Logger) *LogoStore {
	s := &LogoStore{
		fs:        fs,
		available: make(map[layout.Logo]string, len(files)),
	}

	for logo, name := range files {
		if name == "" {
			continue
		}
		p := path.Clean(name)
		ok, err := afero.Exists(fs, p)
		if err != nil || !ok {
			logger.Warn("Logo not available",
				zap.String("logo", string(logo)),
				zap.String("file", p),
				zap.Error(err))
			continue
		}
		s.available[logo] = p
	}

	logger.Info("Logo store ready", zap.Int("available", len(s.available)))
	return s
}

// NewDirLogoStore serves logos from a directory on disk.
func NewDirLogoStore(dir string, files map[layout.Logo]string, logger *zap.Logger) *LogoStore {
	return NewLogoStore(afero.NewBasePathFs(afero.NewOsFs(), dir), files, logger)
}

func (s *LogoStore) Has(logo layout.Logo) bool {
	_, ok := s.available[logo]
	return ok
}

// ReadLogo returns the image bytes of an available logo.
func (s *LogoStore) ReadLogo(logo layout.Logo) ([]byte, error) {
	const operation = "storage.ReadLogo"

	p, ok := s.available[logo]
	if !ok {
		return nil, fmt.Errorf("%s: logo %q not available", operation, logo)
	}
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read %s: %w", operation, p, err)
	}
	return data, nil
}
