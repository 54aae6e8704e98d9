package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter"
	"github.com/ms-henglu/xmlmap/internal/log"
	"github.com/otiai10/copy"
)

// CacheDir returns the directory downloaded documents are kept in.
// It checks XMLMAP_CACHE_DIR environment variable first, then defaults to ~/.xmlmap/cache.
func CacheDir() (string, error) {
	if dir := os.Getenv("XMLMAP_CACHE_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return "", fmt.Errorf("failed to get user home directory (%v) and current working directory (%w)", err, wdErr)
		}
		log.Warn(fmt.Sprintf("Failed to get user home directory: %v. Falling back to current directory for cache. Set XMLMAP_CACHE_DIR to specify a custom cache location.", err))
		return filepath.Join(cwd, ".xmlmap", "cache"), nil
	}
	return filepath.Join(homeDir, ".xmlmap", "cache"), nil
}

// Resolve returns a local path for src. Existing local files are used as is,
// anything else is downloaded into cacheDir unless it is already there.
// The boolean reports a cache hit.
func Resolve(ctx context.Context, src string, cacheDir string) (string, bool, error) {
	if info, err := os.Stat(src); err == nil {
		if info.IsDir() {
			return "", false, fmt.Errorf("source is a directory: %s", src)
		}
		log.Debug("Using local file %s", src)
		return src, false, nil
	}

	if cacheDir == "" {
		dir, err := CacheDir()
		if err != nil {
			return "", false, err
		}
		cacheDir = dir
	}

	cachePath := filepath.Join(cacheDir, CacheKey(src))
	if _, err := os.Stat(cachePath); err == nil {
		log.Debug("Cache hit for %s (%s)", src, cachePath)
		return cachePath, true, nil
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", false, fmt.Errorf("failed to create cache directory: %w", err)
	}

	log.Debug("Downloading %s to %s...", src, cachePath)
	pwd, err := os.Getwd()
	if err != nil {
		return "", false, err
	}
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  cachePath,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}

	if err := client.Get(); err != nil {
		_ = os.Remove(cachePath)
		return "", false, fmt.Errorf("failed to download document: %w", err)
	}

	return cachePath, false, nil
}

// Save copies a resolved document to dest.
func Save(path, dest string) error {
	if err := copy.Copy(path, dest); err != nil {
		return fmt.Errorf("failed to save %s to %s: %w", path, dest, err)
	}
	return nil
}

const maxKeyPrefix = 120

// CacheKey returns a human-readable and unique file name for a source.
func CacheKey(src string) string {
	// https://example.com/books.xml -> https---example.com-books.xml
	sanitized := strings.ReplaceAll(src, "/", "-")
	sanitized = strings.ReplaceAll(sanitized, ":", "-")
	if len(sanitized) > maxKeyPrefix {
		sanitized = sanitized[len(sanitized)-maxKeyPrefix:]
	}

	shortHash := hashString(src)[:8]
	key := fmt.Sprintf("%s-%s", sanitized, shortHash)

	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' || r == '?' || r == '*' || r == '"' || r == '<' || r == '>' || r == '|' || r == '&' || r == '=' {
			return '-'
		}
		return r
	}, key)
}

func hashString(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}
