// Package imagecdn builds delivery URLs for stored image assets. Cloudinary
// bases receive crop and delivery transforms; other bases serve files as-is.
package imagecdn

import (
	"errors"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// ErrAssetIDRequired reports a request without an asset id.
var ErrAssetIDRequired = errors.New("asset id is required")

// Crop selects a region of the source image in pixels.
type Crop struct {
	X        int
	Y        int
	WidthPX  int
	HeightPX int
}

// Delivery bounds the delivered image width.
type Delivery struct {
	WidthPX int
}

// Request identifies one asset and optional transforms.
type Request struct {
	AssetID   string
	Extension string
	Crop      *Crop
	Delivery  *Delivery
}

// CDN resolves asset URLs against a base URL.
type CDN struct {
	base       string
	cloudinary bool
}

// New returns a CDN for baseURL.
func New(baseURL string) CDN {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	parsed, err := url.Parse(base)
	cloudinary := err == nil && strings.EqualFold(parsed.Hostname(), "res.cloudinary.com")
	return CDN{base: base, cloudinary: cloudinary}
}

// Configured reports whether a base URL is set.
func (c CDN) Configured() bool {
	return c.base != ""
}

// URL returns the delivery URL of req.
func (c CDN) URL(req Request) (string, error) {
	assetID := strings.Trim(strings.TrimSpace(req.AssetID), "/")
	if assetID == "" {
		return "", ErrAssetIDRequired
	}
	ext := strings.TrimSpace(req.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	segments := []string{}
	if c.cloudinary {
		if crop := req.Crop; crop != nil && crop.WidthPX > 0 && crop.HeightPX > 0 {
			segments = append(segments, "c_crop,w_"+strconv.Itoa(crop.WidthPX)+",h_"+strconv.Itoa(crop.HeightPX)+",x_"+strconv.Itoa(crop.X)+",y_"+strconv.Itoa(crop.Y))
		}
		if delivery := req.Delivery; delivery != nil && delivery.WidthPX > 0 {
			segments = append(segments, "f_auto,q_auto,dpr_auto,c_limit,w_"+strconv.Itoa(delivery.WidthPX))
		}
	}
	segments = append(segments, assetID+ext)

	if c.base == "" {
		return "/" + path.Join(segments...), nil
	}
	return c.base + "/" + path.Join(segments...), nil
}
