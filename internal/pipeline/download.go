package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/astroshell/cosmonaut/internal/apod"
)

// ErrNoHD signals that an item has no high-resolution version. The UI
// uses this to decide whether to offer a download at all.
var ErrNoHD = errors.New("item has no HD image")

// DownloadHD fetches the full-resolution image for an item. HD downloads
// bypass the cache: they are one-shot saves, not feed thumbnails, and
// caching multi-megabyte originals would evict the whole feed.
func (p *Pipeline) DownloadHD(ctx context.Context, item apod.Item) ([]byte, error) {
	if !item.HasHD() {
		return nil, ErrNoHD
	}
	data, err := p.fetcher.Get(ctx, item.HDURL)
	if err != nil {
		return nil, err
	}
	if !decodable(data) {
		data = Placeholder()
	}
	return data, nil
}

// SaveHD writes downloaded HD bytes into dir as apod-<date>-hd.<ext>,
// sniffing the extension from the image header. It returns the written
// path.
func SaveHD(dir string, item apod.Item, data []byte) (string, error) {
	ext := "img"
	if _, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		ext = format
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("apod-%s-hd.%s", item.Date, ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}
