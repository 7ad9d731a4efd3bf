// Package weverse is a client for Weverse's private backend API. It covers
// the credential/token lifecycle and the fetch operations the notification
// stream is built on. The API is undocumented and versioned by Weverse;
// field coverage follows what the live API returns.
package weverse

import (
	"context"
	"fmt"

	"github.com/Anson-Quek/weverse-go/pkg/weverse/objects"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Config carries the Weverse account credentials.
type Config struct {
	Email    string `env:"WEVERSE_EMAIL" validate:"required,email"`
	Password string `env:"WEVERSE_PASSWORD" validate:"required"`
}

// Client exposes the Weverse API as typed fetch operations.
type Client struct {
	fetcher *Fetcher
	logger  *zerolog.Logger
}

func NewClient(cfg *Config, logger *zerolog.Logger) *Client {
	return &Client{
		fetcher: NewFetcher(cfg.Email, cfg.Password, logger),
		logger:  logger,
	}
}

// Login authenticates against the account API. It must be called before any
// fetch operation; subsequent token refreshes happen transparently.
func (c *Client) Login(ctx context.Context) error {
	return c.fetcher.Login(ctx)
}

type dataEnvelope[T any] struct {
	Data []T `json:"data"`
}

// LatestNotifications fetches the newest page of the activity feed.
// Entries without a community (account-level noise) are skipped.
func (c *Client) LatestNotifications(ctx context.Context) ([]objects.Notification, error) {
	feed, err := fetchJSON[dataEnvelope[objects.Notification]](ctx, c.fetcher, latestNotificationsPath())
	if err != nil {
		return nil, fmt.Errorf("fetch latest notifications: %w", err)
	}

	notifications := make([]objects.Notification, 0, len(feed.Data))
	for _, n := range feed.Data {
		if n.Community == nil {
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// Notification fetches a single notification by ID.
func (c *Client) Notification(ctx context.Context, notificationID int64) (*objects.Notification, error) {
	path := notificationPath(notificationID)
	feed, err := fetchJSON[dataEnvelope[objects.Notification]](ctx, c.fetcher, path)
	if err != nil {
		return nil, fmt.Errorf("fetch notification: %w", err)
	}

	if len(feed.Data) == 0 || feed.Data[0].Community == nil {
		return nil, newAPIError(path, 404, "notification does not exist")
	}
	return &feed.Data[0], nil
}

// JoinedCommunities lists the communities the signed-in account has joined.
func (c *Client) JoinedCommunities(ctx context.Context) ([]objects.PartialCommunity, error) {
	resp, err := fetchJSON[dataEnvelope[objects.PartialCommunity]](ctx, c.fetcher, joinedCommunitiesPath())
	if err != nil {
		return nil, fmt.Errorf("fetch joined communities: %w", err)
	}
	return resp.Data, nil
}

// SearchCommunities fuzzy-matches joined communities by name.
func (c *Client) SearchCommunities(ctx context.Context, query string) ([]objects.PartialCommunity, error) {
	communities, err := c.JoinedCommunities(ctx)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return communities, nil
	}

	var matches []objects.PartialCommunity
	for _, community := range communities {
		if fuzzy.MatchNormalizedFold(query, community.Name) {
			matches = append(matches, community)
		}
	}
	return matches, nil
}

// Community fetches a full community by ID.
func (c *Client) Community(ctx context.Context, communityID int64) (*objects.Community, error) {
	community, err := fetchJSON[objects.Community](ctx, c.fetcher, communityPath(communityID))
	if err != nil {
		return nil, fmt.Errorf("fetch community: %w", err)
	}
	return &community, nil
}

// Communities fetches the full community object for every joined community.
func (c *Client) Communities(ctx context.Context) ([]objects.Community, error) {
	partials, err := c.JoinedCommunities(ctx)
	if err != nil {
		return nil, err
	}

	communities := make([]objects.Community, len(partials))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(4)

	for i, partial := range partials {
		i, partial := i, partial
		group.Go(func() error {
			community, err := c.Community(gctx, partial.ID)
			if err != nil {
				return err
			}
			communities[i] = *community
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return communities, nil
}

// Artists fetches the artist roster of a community.
func (c *Client) Artists(ctx context.Context, communityID int64) ([]objects.Artist, error) {
	artists, err := fetchJSON[[]objects.Artist](ctx, c.fetcher, artistsPath(communityID))
	if err != nil {
		return nil, fmt.Errorf("fetch artists: %w", err)
	}
	return artists, nil
}

// Member fetches a member profile by ID.
func (c *Client) Member(ctx context.Context, memberID string) (*objects.Member, error) {
	member, err := fetchJSON[objects.Member](ctx, c.fetcher, memberPath(memberID))
	if err != nil {
		return nil, fmt.Errorf("fetch member: %w", err)
	}
	return &member, nil
}

// Post fetches a post by ID.
func (c *Client) Post(ctx context.Context, postID string) (*objects.Post, error) {
	post, err := fetchJSON[objects.Post](ctx, c.fetcher, postPath(postID))
	if err != nil {
		return nil, fmt.Errorf("fetch post: %w", err)
	}
	return &post, nil
}

// Media fetches a media post by ID. The returned variant depends on the
// extension section the API includes: images, a Weverse-hosted video, or a
// YouTube link.
func (c *Client) Media(ctx context.Context, mediaID string) (objects.Media, error) {
	post, err := c.Post(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	switch {
	case post.Extension.Image != nil:
		return &objects.ImageMedia{Post: *post}, nil
	case post.Extension.Video != nil:
		return &objects.VideoMedia{Post: *post}, nil
	default:
		return &objects.YoutubeMedia{Post: *post}, nil
	}
}

// Live fetches a live broadcast by ID.
func (c *Client) Live(ctx context.Context, liveID string) (*objects.Live, error) {
	post, err := c.Post(ctx, liveID)
	if err != nil {
		return nil, err
	}
	return &objects.Live{VideoMedia: objects.VideoMedia{Post: *post}}, nil
}

// Moment fetches a moment by ID, returning the post-rework or pre-rework
// variant depending on which extension section the API includes.
func (c *Client) Moment(ctx context.Context, momentID string) (objects.MomentLike, error) {
	post, err := c.Post(ctx, momentID)
	if err != nil {
		return nil, err
	}

	if post.Extension.Moment != nil {
		return &objects.Moment{Post: *post}, nil
	}
	return &objects.OldMoment{Post: *post}, nil
}

// Comment fetches a comment by ID.
func (c *Client) Comment(ctx context.Context, commentID string) (*objects.Comment, error) {
	comment, err := fetchJSON[objects.Comment](ctx, c.fetcher, commentPath(commentID))
	if err != nil {
		return nil, fmt.Errorf("fetch comment: %w", err)
	}
	return &comment, nil
}

// ArtistComments fetches the artist comments on a post, newest first.
func (c *Client) ArtistComments(ctx context.Context, postID string) ([]objects.Comment, error) {
	resp, err := fetchJSON[dataEnvelope[objects.Comment]](ctx, c.fetcher, artistCommentsPath(postID))
	if err != nil {
		return nil, fmt.Errorf("fetch artist comments: %w", err)
	}
	return resp.Data, nil
}

// Notice fetches a notice by ID.
func (c *Client) Notice(ctx context.Context, noticeID int64) (*objects.Notice, error) {
	path := noticePath(noticeID)
	notice, err := fetchJSON[objects.Notice](ctx, c.fetcher, path)
	if err != nil {
		return nil, fmt.Errorf("fetch notice: %w", err)
	}

	// The notice endpoint answers 200 with an empty object for unknown IDs.
	if notice.ParentID == "" {
		return nil, newAPIError(path, 404, "notice does not exist")
	}
	return &notice, nil
}

type videoDownloadInfo struct {
	DownloadInfo []struct {
		Resolution string `json:"resolution"`
		URL        string `json:"url"`
	} `json:"downloadInfo"`
}

// VideoURL resolves the download URL of a post video at its highest
// available resolution. Videos need a separate call because post responses
// only include URLs for images.
func (c *Client) VideoURL(ctx context.Context, videoID string) (string, error) {
	info, err := fetchJSON[videoDownloadInfo](ctx, c.fetcher, videoDownloadPath(videoID))
	if err != nil {
		return "", fmt.Errorf("fetch video download info: %w", err)
	}

	best := -1
	bestURL := ""
	for _, video := range info.DownloadInfo {
		resolution := parseResolution(video.Resolution)
		if resolution > best {
			best = resolution
			bestURL = video.URL
		}
	}

	if bestURL == "" {
		return "", fmt.Errorf("no download info for video %s", videoID)
	}
	return bestURL, nil
}

// parseResolution turns a label like "1080P" into its numeric value.
func parseResolution(label string) int {
	n := 0
	for _, r := range label {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
