package dto

// Track and Video mirror the external Python search API's result elements.
// The upstream schema is not guaranteed per element, so every field is
// best-effort; elements that fail to decode are dropped by the adapter.

type Track struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	ArtistName string `json:"artist_name,omitempty"`
	Audio      string `json:"audio,omitempty"`
	Image      string `json:"image,omitempty"`
	Duration   int    `json:"duration,omitempty"`
}

type Video struct {
	VideoID   string `json:"video_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Channel   string `json:"channel,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	URL       string `json:"url,omitempty"`
	Duration  string `json:"duration,omitempty"`
}
