package weverse

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	neturl "net/url"
	"time"
)

const (
	defaultAPIBaseURL     = "https://global.apis.naver.com/weverse/wevweb"
	defaultAccountAPIURL  = "https://accountapi.weverse.io/web/api/v2/auth/token/by-credentials"
	defaultRefererURL     = "https://weverse.io"
	wevwebKey             = "1b9cb6378d959b45714bec49971ade22e6e24e42"
	accountAppSecret      = "5419526f1c624b38b10787e5c10b2a7a"
	apiParams             = "?appId=be4d79eb8fc7bd008ee82c8ec4ff6fd4&language=en&platform=WEB&wpf=pc"
	signedPathPrefixLimit = 255
)

// signPath appends the wmsgpad/wmd pair the wevweb API requires to a
// parameterized endpoint path. The digest covers at most the first 255 bytes
// of the path followed by the epoch timestamp in milliseconds.
func signPath(path string, now time.Time) string {
	indexed := path
	if len(indexed) > signedPathPrefixLimit {
		indexed = indexed[:signedPathPrefixLimit]
	}
	epoch := now.UnixMilli()
	digest := messageDigest(fmt.Sprintf("%s%d", indexed, epoch))
	return fmt.Sprintf("%s&wmsgpad=%d&wmd=%s", path, epoch, digest)
}

// messageDigest computes the URL-escaped base64 HMAC-SHA1 digest of a message
// keyed with the wevweb key.
func messageDigest(message string) string {
	mac := hmac.New(sha1.New, []byte(wevwebKey))
	mac.Write([]byte(message))
	digest := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return neturl.QueryEscape(digest)
}

func latestNotificationsPath() string {
	return "/noti/feed/v1.0/activities" + apiParams
}

// notificationPath targets a single notification by requesting the feed page
// that starts right after the given ID.
func notificationPath(notificationID int64) string {
	return fmt.Sprintf("/noti/feed/v1.0/activities%s&next=%d", apiParams, notificationID+1)
}

func joinedCommunitiesPath() string {
	return "/noti/feed/v1.0/activities/community" + apiParams
}

func communityPath(communityID int64) string {
	return fmt.Sprintf("/community/v1.0/community-%d%s&fieldSet=communityHomeV1", communityID, apiParams)
}

func artistsPath(communityID int64) string {
	return fmt.Sprintf("/member/v1.0/community-%d/artistMembers%s&fieldSet=artistMembersV1&fields=communityId"+
		"%%2CjoinedDate%%2CprofileType%%2CprofileName%%2CprofileImageUrl"+
		"%%2CprofileCoverImageUrl%%2CprofileComment", communityID, apiParams)
}

func postPath(postID string) string {
	return fmt.Sprintf("/post/v1.0/post-%s%s&fieldSet=postV1", postID, apiParams)
}

func videoDownloadPath(videoID string) string {
	return fmt.Sprintf("/cvideo/v1.0/cvideo-%s/downloadInfo%s", videoID, apiParams)
}

func noticePath(noticeID int64) string {
	return fmt.Sprintf("/notice/v1.0/notice-%d%s&fieldSet=noticeV1", noticeID, apiParams)
}

func memberPath(memberID string) string {
	return fmt.Sprintf("/member/v1.0/member-%s%s&fields=memberId%%2CcommunityId%%2Cjoined%%2CjoinedDate%%2CprofileType"+
		"%%2CprofileName%%2CprofileImageUrl%%2CprofileCoverImageUrl%%2CprofileComment"+
		"%%2Chidden%%2Cblinded%%2CmemberJoinStatus%%2CfollowCount%%2ChasMembership"+
		"%%2ChasOfficialMark%%2CfirstJoinAt%%2Cfollowed%%2CartistOfficialProfile%%2CmyProfile", memberID, apiParams)
}

func commentPath(commentID string) string {
	return fmt.Sprintf("/comment/v1.0/comment-%s%s&fieldSet=commentV1", commentID, apiParams)
}

func artistCommentsPath(postID string) string {
	return fmt.Sprintf("/comment/v1.0/post-%s/artistComments%s&fieldSet=postArtistCommentsV1", postID, apiParams)
}
