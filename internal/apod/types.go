package apod

// Item is one day's APOD record as served by the API. An empty Copyright
// or HDURL means the field was absent from the response. Items are
// identified by Date (one picture per calendar day) and never mutated
// after decoding.
type Item struct {
	Copyright      string `json:"copyright,omitempty"`
	Date           string `json:"date"`
	Explanation    string `json:"explanation"`
	HDURL          string `json:"hdurl,omitempty"`
	MediaType      string `json:"media_type"`
	ServiceVersion string `json:"service_version"`
	Title          string `json:"title"`
	URL            string `json:"url"`
}

// IsImage reports whether the item is feed-eligible. The API also serves
// video entries, which the feed skips.
func (it Item) IsImage() bool {
	return it.MediaType == "image"
}

// HasHD reports whether a high-resolution version exists.
func (it Item) HasHD() bool {
	return it.HDURL != ""
}
