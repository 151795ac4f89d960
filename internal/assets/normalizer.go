// Package assets rewrites engine resource paths into public CDN URLs.
package assets

import (
	"strings"
)

// imageMarkers are the directory segments that anchor an engine image path.
// Everything before the first marker is engine-internal prefix noise.
var imageMarkers = []string{"abilities/", "upgrades/", "hud/", "heroes/"}

const (
	imagesPlaceholder = "{images}/"
	videoMarker       = "videos/"

	psdRasterSuffix = "_psd.png"
)

// Normalizer turns raw resource references like
// "panorama:file://{images}/abilities/dash.psd" into stable public URLs.
type Normalizer struct {
	imageBaseURL string
	videoBaseURL string
}

// NewNormalizer creates a normalizer with the given CDN base URLs.
func NewNormalizer(imageBaseURL, videoBaseURL string) *Normalizer {
	return &Normalizer{
		imageBaseURL: strings.TrimSuffix(imageBaseURL, "/"),
		videoBaseURL: strings.TrimSuffix(videoBaseURL, "/"),
	}
}

// ImageURL normalizes a raw image reference. Returns nil for empty input.
// Already-normalized URLs pass through unchanged.
func (n *Normalizer) ImageURL(raw *string) *string {
	if raw == nil {
		return nil
	}
	path := strings.TrimSpace(strings.ReplaceAll(*raw, `"`, ""))
	path = strings.Trim(path, `'`)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, n.imageBaseURL+"/") {
		return &path
	}

	relative := relativeImagePath(path)

	// The CDN only publishes rasterized copies of the source art, all
	// carrying a _psd.png suffix regardless of the original extension.
	switch {
	case strings.HasSuffix(relative, psdRasterSuffix):
	case strings.HasSuffix(relative, ".png"):
		relative = strings.TrimSuffix(relative, ".png") + psdRasterSuffix
	case strings.HasSuffix(relative, ".psd"):
		relative = strings.TrimSuffix(relative, ".psd") + psdRasterSuffix
	}

	url := n.imageBaseURL + "/" + relative
	return &url
}

// WebpURL returns the .webp sibling of a normalized .png URL, nil when the
// input is nil or not a .png.
func (n *Normalizer) WebpURL(pngURL *string) *string {
	if pngURL == nil || !strings.HasSuffix(*pngURL, ".png") {
		return nil
	}
	url := strings.TrimSuffix(*pngURL, ".png") + ".webp"
	return &url
}

// VideoURL normalizes a raw video reference. Returns nil for empty input.
func (n *Normalizer) VideoURL(raw *string) *string {
	if raw == nil {
		return nil
	}
	path := strings.Trim(strings.TrimSpace(*raw), `"'`)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, n.videoBaseURL+"/") {
		return &path
	}

	if idx := strings.LastIndex(path, videoMarker); idx >= 0 {
		path = path[idx+len(videoMarker):]
	}
	url := n.videoBaseURL + "/" + path
	return &url
}

// Mp4URL returns the h264 .mp4 sibling of a normalized .webm URL.
func (n *Normalizer) Mp4URL(webmURL *string) *string {
	if webmURL == nil || !strings.HasSuffix(*webmURL, ".webm") {
		return nil
	}
	url := strings.TrimSuffix(*webmURL, ".webm") + "_h264.mp4"
	return &url
}

// relativeImagePath cuts an engine path down to its CDN-relative form.
func relativeImagePath(path string) string {
	for _, marker := range imageMarkers {
		if idx := strings.Index(path, marker); idx >= 0 {
			return path[idx:]
		}
	}
	if idx := strings.Index(path, imagesPlaceholder); idx >= 0 {
		return path[idx+len(imagesPlaceholder):]
	}
	return path
}
