package objects

// Media is implemented by the media post variants: ImageMedia, VideoMedia
// and YoutubeMedia. Use a type switch to access variant-specific fields.
type Media interface {
	// MediaPost returns the underlying post representation of the media.
	MediaPost() *Post
	// ThumbnailURL returns the media thumbnail, when present.
	ThumbnailURL() string
}

func thumbnailURL(p *Post) string {
	if p.Extension.MediaInfo == nil {
		return ""
	}
	return p.Extension.MediaInfo.Thumbnail.URL
}

// ImageMedia is a media post that contains images.
type ImageMedia struct {
	Post
}

func (m *ImageMedia) MediaPost() *Post { return &m.Post }

func (m *ImageMedia) ThumbnailURL() string { return thumbnailURL(&m.Post) }

func (m *ImageMedia) Photos() []Photo {
	if m.Extension.Image == nil {
		return nil
	}
	return m.Extension.Image.Photos
}

// VideoMedia is a media post that contains a Weverse-hosted video.
type VideoMedia struct {
	Post
}

func (m *VideoMedia) MediaPost() *Post { return &m.Post }

func (m *VideoMedia) ThumbnailURL() string { return thumbnailURL(&m.Post) }

func (m *VideoMedia) Video() *VideoDetail { return m.Extension.Video }

// Duration returns the video duration in seconds. The second return value
// is false for a live broadcast that has not been converted into a VOD yet.
func (m *VideoMedia) Duration() (int, bool) {
	if m.Extension.Video == nil || m.Extension.Video.PlayTime == nil {
		return 0, false
	}
	return *m.Extension.Video.PlayTime, true
}

// YoutubeMedia is a media post that links a YouTube video.
type YoutubeMedia struct {
	Post
}

func (m *YoutubeMedia) MediaPost() *Post { return &m.Post }

func (m *YoutubeMedia) ThumbnailURL() string { return thumbnailURL(&m.Post) }

func (m *YoutubeMedia) YoutubeURL() string {
	if m.Extension.Youtube == nil {
		return ""
	}
	return m.Extension.Youtube.VideoPath
}

func (m *YoutubeMedia) Duration() int {
	if m.Extension.Youtube == nil {
		return 0
	}
	return m.Extension.Youtube.PlayTime
}
