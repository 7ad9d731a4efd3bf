// Package objects contains the read-only value types parsed from Weverse
// API responses. They carry no lifecycle beyond the callback invocation
// that receives them.
package objects

import "time"

// Category is the kind of activity a notification refers to.
type Category string

const (
	CategoryPost              Category = "post"
	CategoryArtistPostComment Category = "artist_post_comment"
	CategoryUserPostComment   Category = "user_post_comment"
	CategoryMediaComment      Category = "media_comment"
	CategoryMomentComment     Category = "moment_comment"
	CategoryMoment            Category = "moment"
	CategoryLive              Category = "live"
	CategoryNotice            Category = "notice"
	CategoryMedia             Category = "media"
	CategoryBirthday          Category = "birthday"
)

// IsComment reports whether the category refers to artist comment activity.
// Comment notifications only carry a running count, so the referenced post's
// artist comments have to be fetched to learn which comments are new.
func (c Category) IsComment() bool {
	switch c {
	case CategoryArtistPostComment, CategoryUserPostComment, CategoryMediaComment, CategoryMomentComment:
		return true
	}
	return false
}

// CommunityRef is the community summary embedded in other objects.
type CommunityRef struct {
	ID   int64  `json:"communityId"`
	Name string `json:"communityName"`
}

// AuthorRef is the author summary embedded in a notification.
type AuthorRef struct {
	ID   string `json:"memberId"`
	Name string `json:"profileName"`
}

// Notification is one entry of the activity feed. Community is nil for
// account-level entries that do not belong to any community.
type Notification struct {
	ID        int64         `json:"activityId"`
	Category  Category      `json:"logName"`
	PostID    string        `json:"postId"`
	Message   string        `json:"message"`
	URL       string        `json:"webUrl"`
	Count     int           `json:"count"`
	CreatedAt int64         `json:"createdAt"`
	Community *CommunityRef `json:"community"`
	Author    AuthorRef     `json:"author"`
}

func (n *Notification) CreatedTime() time.Time {
	return epochToTime(n.CreatedAt)
}

func epochToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
