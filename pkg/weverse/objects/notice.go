package objects

import (
	"regexp"
	"strconv"
	"time"

	"github.com/Anson-Quek/weverse-go/pkg/lib"
)

var noticeParentIDPattern = regexp.MustCompile(`(\d+)$`)

// Notice is a community announcement.
type Notice struct {
	ID                 int64      `json:"noticeId"`
	Title              string     `json:"title"`
	Body               string     `json:"body"`
	PlainBody          string     `json:"plainBody"`
	URL                string     `json:"shareUrl"`
	IsExposed          bool       `json:"exposed"`
	IsPublished        bool       `json:"published"`
	IsHiddenFromArtist bool       `json:"hideFromArtist"`
	IsMembershipOnly   bool       `json:"membershipOnly"`
	IsPinned           bool       `json:"pinned"`
	PublishedAt        int64      `json:"publishAt"`
	NoticeType         string     `json:"noticeType"`
	ExposedStatus      string     `json:"exposedStatus"`
	ParentID           string     `json:"parentId"`
	Attachment         Attachment `json:"attachment"`
}

func (n *Notice) PublishedTime() time.Time {
	return epochToTime(n.PublishedAt)
}

// CommunityID extracts the community ID from the notice parent ID, which has
// the form "community-<id>". Returns 0 when the parent is not a community.
func (n *Notice) CommunityID() int64 {
	match := noticeParentIDPattern.FindString(n.ParentID)
	if match == "" {
		return 0
	}
	id, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Photos returns the photo attachments of the notice.
func (n *Notice) Photos() []Photo {
	return n.Attachment.Photos()
}

// BodyText returns the notice body with HTML markup stripped.
func (n *Notice) BodyText() string {
	if n.PlainBody != "" {
		return n.PlainBody
	}
	return lib.TextFromHTML(n.Body)
}

// BodyImageURLs returns the URLs of images embedded in the notice body HTML.
func (n *Notice) BodyImageURLs() []string {
	return lib.ImageURLsFromHTML(n.Body)
}
