package objects

import (
	"time"

	"github.com/Anson-Quek/weverse-go/pkg/lib"
)

// Comment is an artist comment on a post, media or moment.
type Comment struct {
	ID           string `json:"commentId"`
	PostID       string `json:"postId"`
	Body         string `json:"body"`
	URL          string `json:"shareUrl"`
	CreatedAt    int64  `json:"createdAt"`
	CommentCount int    `json:"commentCount"`
	EmotionCount int    `json:"emotionCount"`
	Author       Member `json:"author"`
}

func (c *Comment) CreatedTime() time.Time {
	return epochToTime(c.CreatedAt)
}

// BodyText returns the comment body with markup stripped.
func (c *Comment) BodyText() string {
	return lib.TextFromHTML(c.Body)
}
