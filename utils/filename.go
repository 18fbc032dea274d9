package utils

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

const publishedPrefix = "updated_"

// FileNameFromURL returns the last path segment of an image URL.
// Example: https://apod.nasa.gov/apod/image/2401/foo.jpg -> foo.jpg
func FileNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid image url %q: %w", rawURL, err)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" || strings.HasSuffix(u.Path, "/") {
		return "", fmt.Errorf("image url %q has no file name", rawURL)
	}
	return name, nil
}

// PublishedFileName derives the composed image name: updated_<name>.png.
// The original extension is kept, so foo.jpg becomes updated_foo.jpg.png
func PublishedFileName(name string) string {
	return publishedPrefix + name + ".png"
}
