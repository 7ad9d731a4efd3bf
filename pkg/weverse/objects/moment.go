package objects

import "time"

// MomentLike is implemented by Moment and OldMoment.
type MomentLike interface {
	// MomentPost returns the underlying post representation of the moment.
	MomentPost() *Post
	// ExpireTime is when the moment disappears.
	ExpireTime() time.Time
}

// Moment is a moment created after the moment rework; it always carries a
// video.
type Moment struct {
	Post
}

func (m *Moment) MomentPost() *Post { return &m.Post }

func (m *Moment) ExpireTime() time.Time {
	if m.Extension.Moment == nil {
		return time.Time{}
	}
	return epochToTime(m.Extension.Moment.ExpireAt)
}

func (m *Moment) Video() *Video {
	if m.Extension.Moment == nil {
		return nil
	}
	return m.Extension.Moment.Video
}

// OldMoment is a moment created before the moment rework; it carries either
// an uploaded photo or a default Weverse background image.
type OldMoment struct {
	Post
}

func (m *OldMoment) MomentPost() *Post { return &m.Post }

func (m *OldMoment) ExpireTime() time.Time {
	if m.Extension.MomentW1 == nil {
		return time.Time{}
	}
	return epochToTime(m.Extension.MomentW1.ExpireAt)
}

func (m *OldMoment) Photo() *Photo {
	if m.Extension.MomentW1 == nil {
		return nil
	}
	return m.Extension.MomentW1.Photo
}

func (m *OldMoment) BackgroundImageURL() string {
	if m.Extension.MomentW1 == nil {
		return ""
	}
	return m.Extension.MomentW1.BackgroundImageURL
}
