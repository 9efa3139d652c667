// Package images supplies the image metadata consumed by the layout
// engine. It decodes only image headers to obtain pixel dimensions; pixel
// content is never read here.
//
// Supported formats: JPEG, PNG, GIF from the standard library, plus BMP,
// TIFF, and WebP via golang.org/x/image.
package images

import (
	"context"
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// Header decoders registered for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/printgrid/pkg/errors"
	"github.com/matzehuels/printgrid/pkg/layout"
)

// supportedExtensions guards directory scans so non-image files are
// skipped silently instead of producing decode errors.
var supportedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// ReadRef decodes the header of one image file and returns its ref. The
// ref id is the file path as given.
func ReadRef(path string) (layout.ImageRef, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return layout.ImageRef{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open image %s", path)
		}
		return layout.ImageRef{}, errors.Wrap(errors.ErrCodeInvalidImage, err, "open image %s", path)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return layout.ImageRef{}, errors.Wrap(errors.ErrCodeInvalidImage, err, "decode image header %s", path)
	}

	return layout.NewImageRef(path, cfg.Width, cfg.Height), nil
}

// ScanFiles reads refs for the given paths, preserving order. The first
// unreadable file aborts the scan.
func ScanFiles(ctx context.Context, paths []string) ([]layout.ImageRef, error) {
	refs := make([]layout.ImageRef, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ref, err := ReadRef(p)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// ScanDir reads refs for every supported image in dir, sorted by filename
// so page order is stable across runs. Unsupported files are skipped.
func ScanDir(ctx context.Context, dir string) ([]layout.ImageRef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read directory %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	return ScanFiles(ctx, paths)
}

// Manifest is the JSON document exchanged with external tools: an ordered
// image list as produced by a scan.
type Manifest struct {
	Images []layout.ImageRef `json:"images"`
}

// ReadManifest loads an image manifest from a JSON file.
func ReadManifest(path string) ([]layout.ImageRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read manifest %s", path)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse manifest %s", path)
	}
	for i := range m.Images {
		if m.Images[i].AspectRatio <= 0 {
			m.Images[i].AspectRatio = m.Images[i].Ratio()
		}
	}
	return m.Images, nil
}

// WriteManifest writes an image manifest as pretty-printed JSON.
func WriteManifest(path string, refs []layout.ImageRef) error {
	data, err := json.MarshalIndent(Manifest{Images: refs}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
