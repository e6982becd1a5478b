// Package scenario fetches scenario files from any go-getter source:
// local paths, http(s) URLs, git repositories, S3 or GCS buckets.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// maxSize bounds the scenario file read into memory.
const maxSize = 1 << 20

// Fetch downloads the scenario at src and returns its contents.
// Relative local paths are resolved against the working directory.
func Fetch(ctx context.Context, src string) ([]byte, error) {
	if src == "" {
		return nil, errors.New("scenario source required")
	}

	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	tmp, err := os.MkdirTemp("", "heightmap-scenario-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	dst := filepath.Join(tmp, "scenario.json")
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return nil, fmt.Errorf("fetch scenario %s: %w", src, err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		return nil, fmt.Errorf("stat scenario: %w", err)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("scenario too large: %d bytes (max %d)", info.Size(), maxSize)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return data, nil
}
