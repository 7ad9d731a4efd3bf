package objects

import (
	"time"

	"github.com/Anson-Quek/weverse-go/pkg/lib"
)

// Post is the shared representation behind posts, media, lives and moments.
// The Extension sections determine which specialized view applies.
type Post struct {
	ID               string       `json:"postId"`
	Title            string       `json:"title"`
	Body             string       `json:"body"`
	PlainBody        string       `json:"plainBody"`
	URL              string       `json:"shareUrl"`
	PublishedAt      int64        `json:"publishedAt"`
	CommentCount     int          `json:"commentCount"`
	EmotionCount     int          `json:"emotionCount"`
	IsMembershipOnly bool         `json:"membershipOnly"`
	IsLocked         bool         `json:"locked"`
	Author           Member       `json:"author"`
	Community        CommunityRef `json:"community"`
	Attachment       Attachment   `json:"attachment"`
	Extension        Extension    `json:"extension"`
}

func (p *Post) PublishedTime() time.Time {
	return epochToTime(p.PublishedAt)
}

// BodyText returns the post body with Weverse markup stripped.
func (p *Post) BodyText() string {
	if p.PlainBody != "" {
		return p.PlainBody
	}
	return lib.TextFromHTML(p.Body)
}

// Extension holds the optional typed sections of a post response.
// At most one of Video, Youtube, Image, Moment and MomentW1 is set.
type Extension struct {
	MediaInfo *MediaInfo      `json:"mediaInfo"`
	Video     *VideoDetail    `json:"video"`
	Youtube   *YoutubeDetail  `json:"youtube"`
	Image     *ImageDetail    `json:"image"`
	Moment    *MomentDetail   `json:"moment"`
	MomentW1  *MomentW1Detail `json:"momentW1"`
}

type MediaInfo struct {
	Thumbnail Photo     `json:"thumbnail"`
	Chat      *ChatInfo `json:"chat"`
}

type ChatInfo struct {
	MessageCount int `json:"messageCount"`
}

// VideoDetail describes a Weverse-hosted video. InfraVideoID and PlayTime
// are absent while a live broadcast has not been converted to a VOD yet.
type VideoDetail struct {
	VideoID           int64  `json:"videoId"`
	InfraVideoID      string `json:"infraVideoId"`
	Type              string `json:"type"`
	OnAirStartAt      int64  `json:"onAirStartAt"`
	Paid              bool   `json:"paid"`
	MembershipOnly    bool   `json:"membershipOnly"`
	ScreenOrientation string `json:"screenOrientation"`
	PlayCount         int    `json:"playCount"`
	LikeCount         int    `json:"likeCount"`
	PlayTime          *int   `json:"playTime"`
}

type YoutubeDetail struct {
	PlayTime          int    `json:"playTime"`
	VideoPath         string `json:"videoPath"`
	ScreenOrientation string `json:"screenOrientation"`
}

type ImageDetail struct {
	Photos []Photo `json:"photos"`
}

type MomentDetail struct {
	ExpireAt int64  `json:"expireAt"`
	Video    *Video `json:"video"`
}

type MomentW1Detail struct {
	ExpireAt           int64  `json:"expireAt"`
	Photo              *Photo `json:"photo"`
	BackgroundImageURL string `json:"backgroundImageUrl"`
}
