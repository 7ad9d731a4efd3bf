package objects

// Photo is an image attachment.
type Photo struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Video is a video attachment.
type Video struct {
	VideoURL          string `json:"videoUrl"`
	ThumbnailURL      string `json:"thumbnailUrl"`
	PlayTime          int    `json:"playTime"`
	ScreenOrientation string `json:"screenOrientation"`
}

// Attachment holds the keyed attachment maps of a post or notice.
type Attachment struct {
	Photo map[string]Photo `json:"photo"`
	Video map[string]Video `json:"video"`
}

// Photos flattens the photo attachment map.
func (a Attachment) Photos() []Photo {
	if len(a.Photo) == 0 {
		return nil
	}
	photos := make([]Photo, 0, len(a.Photo))
	for _, p := range a.Photo {
		photos = append(photos, p)
	}
	return photos
}

// Videos flattens the video attachment map.
func (a Attachment) Videos() []Video {
	if len(a.Video) == 0 {
		return nil
	}
	videos := make([]Video, 0, len(a.Video))
	for _, v := range a.Video {
		videos = append(videos, v)
	}
	return videos
}
