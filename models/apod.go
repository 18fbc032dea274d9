package models

// APOD represents the Astronomy Picture of the Day record returned by the NASA API
type APOD struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	MediaType   string `json:"media_type,omitempty"`
	Copyright   string `json:"copyright,omitempty"`
}

// ImageURL returns the HD image location when preferHD is set and one is available
func (a *APOD) ImageURL(preferHD bool) string {
	if preferHD && a.HDURL != "" {
		return a.HDURL
	}
	return a.URL
}

// ImageAsset represents an image downloaded to local storage
type ImageAsset struct {
	URL   string
	Path  string
	Bytes int64
}

// PublishResult represents the composed image written to disk
type PublishResult struct {
	Path         string
	WallpaperSet bool
}
