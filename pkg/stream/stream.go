// Package stream implements the polling notification stream: on a fixed
// interval it fetches the latest Weverse activity, diffs it against the
// in-memory seen state, resolves the referenced objects and dispatches them
// through a Handler.
package stream

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/Anson-Quek/weverse-go/pkg/weverse"
	"github.com/Anson-Quek/weverse-go/pkg/weverse/objects"
	"github.com/alitto/pond/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	defaultPollInterval       = 20 * time.Second
	defaultNotificationWindow = 10 * time.Minute
	defaultCommentWindow      = time.Minute

	// The comment endpoint rate limits aggressively; keep a gap between
	// consecutive artist comment fetches.
	commentFetchInterval = 350 * time.Millisecond

	resolveConcurrency = 4
)

// commentCategory keys seen comments so the same comment is never delivered
// twice, regardless of which notification category surfaced it.
const commentCategory = objects.Category("comment")

// Config tunes the polling stream.
type Config struct {
	// PollInterval is how often the activity feed is queried.
	PollInterval time.Duration `env:"POLL_INTERVAL,default=20s" validate:"required"`
	// NotificationWindow is how far back an unseen notification still
	// counts as new.
	NotificationWindow time.Duration `env:"NOTIFICATION_WINDOW,default=10m" validate:"required"`
	// CommentWindow is how far back an unseen artist comment still counts
	// as new when its post has no tracked comment count yet.
	CommentWindow time.Duration `env:"COMMENT_WINDOW,default=1m" validate:"required"`
}

// client is the subset of the weverse API the stream polls.
type client interface {
	LatestNotifications(ctx context.Context) ([]objects.Notification, error)
	ArtistComments(ctx context.Context, postID string) ([]objects.Comment, error)
	Post(ctx context.Context, postID string) (*objects.Post, error)
	Media(ctx context.Context, mediaID string) (objects.Media, error)
	Live(ctx context.Context, liveID string) (*objects.Live, error)
	Moment(ctx context.Context, momentID string) (objects.MomentLike, error)
	Notice(ctx context.Context, noticeID int64) (*objects.Notice, error)
}

// Stream polls the activity feed and dispatches new items to a Handler.
type Stream struct {
	client  client
	handler Handler
	state   *State
	logger  *zerolog.Logger

	pollInterval       time.Duration
	notificationWindow time.Duration
	commentWindow      time.Duration

	commentLimiter *rate.Limiter
	resolvePool    pond.Pool

	cancel context.CancelFunc
	done   chan struct{}

	now func() time.Time
}

func New(c client, handler Handler, logger *zerolog.Logger, cfg *Config) *Stream {
	s := &Stream{
		client:             c,
		handler:            handler,
		state:              NewState(0),
		logger:             logger,
		pollInterval:       defaultPollInterval,
		notificationWindow: defaultNotificationWindow,
		commentWindow:      defaultCommentWindow,
		commentLimiter:     rate.NewLimiter(rate.Every(commentFetchInterval), 1),
		resolvePool:        pond.NewPool(resolveConcurrency),
		now:                time.Now,
	}

	if cfg != nil {
		if cfg.PollInterval > 0 {
			s.pollInterval = cfg.PollInterval
		}
		if cfg.NotificationWindow > 0 {
			s.notificationWindow = cfg.NotificationWindow
		}
		if cfg.CommentWindow > 0 {
			s.commentWindow = cfg.CommentWindow
		}
	}

	return s
}

// Start primes the seen state with one fetch, then launches the poll loop.
// The caller must have logged in the client already.
func (s *Stream) Start(ctx context.Context) error {
	if s.cancel != nil {
		return errors.New("stream already started")
	}

	if err := s.cycle(ctx, false); err != nil {
		return fmt.Errorf("prime seen state: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)

	s.logger.Info().
		Dur("poll_interval", s.pollInterval).
		Msg("Started listening for Weverse notifications")
	return nil
}

// Stop ends the poll loop and waits for the current cycle to finish. The
// stream can be started again afterwards; the seen state carries over.
func (s *Stream) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.logger.Info().Msg("Notification stream stopped")
}

func (s *Stream) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.cycle(ctx, true); err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.Error().Err(err).Msg("Poll cycle failed")
				s.handler.OnError(err)
			}
		}
	}
}

// event is one deliverable item of a cycle.
type event struct {
	createdAt time.Time
	deliver   func(Handler)
}

// cycle performs one poll: fetch, diff against the seen state and, when
// dispatch is set, resolve and deliver the new items. With dispatch unset it
// only marks the current feed as seen.
func (s *Stream) cycle(ctx context.Context, dispatch bool) error {
	notifications, err := s.client.LatestNotifications(ctx)
	if err != nil {
		return fmt.Errorf("fetch latest notifications: %w", err)
	}

	now := s.now()
	var newNotifications []objects.Notification
	var commentNotifications []objects.Notification

	for _, notification := range notifications {
		if notification.Category.IsComment() {
			commentNotifications = append(commentNotifications, notification)
			continue
		}

		key := Key{
			CommunityID: notification.Community.ID,
			Category:    notification.Category,
			ID:          strconv.FormatInt(notification.ID, 10),
		}
		if s.state.Seen(key) {
			continue
		}
		s.state.MarkSeen(key)

		if now.Sub(notification.CreatedTime()) > s.notificationWindow {
			continue
		}
		newNotifications = append(newNotifications, notification)
	}

	newComments, err := s.diffComments(ctx, now, commentNotifications)
	if err != nil {
		return err
	}

	if !dispatch {
		return nil
	}

	events, resolveErrs := s.resolve(ctx, newNotifications)
	for _, comment := range newComments {
		c := comment
		events = append(events, event{
			createdAt: c.CreatedTime(),
			deliver:   func(h Handler) { h.OnComment(&c) },
		})
	}

	for _, resolveErr := range resolveErrs {
		s.logger.Warn().Err(resolveErr).Msg("Failed to resolve notification")
		s.handler.OnError(resolveErr)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].createdAt.Before(events[j].createdAt)
	})
	for _, ev := range events {
		ev.deliver(s.handler)
	}

	return nil
}

// diffComments determines which artist comments are new. Comment
// notifications only carry a running count, so the referenced post's artist
// comments are fetched (rate limited) and diffed against the tracked count.
func (s *Stream) diffComments(ctx context.Context, now time.Time, notifications []objects.Notification) ([]objects.Comment, error) {
	var newComments []objects.Comment

	for _, notification := range notifications {
		if err := s.commentLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		comments, err := s.client.ArtistComments(ctx, notification.PostID)
		if errors.Is(err, weverse.ErrNotFound) {
			// The referenced post has been deleted.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("fetch artist comments: %w", err)
		}

		oldCount, tracked := s.state.CommentCount(notification.PostID, notification.Author.ID)

		if !tracked {
			for _, comment := range comments {
				key := Key{
					CommunityID: notification.Community.ID,
					Category:    commentCategory,
					ID:          comment.ID,
				}
				if s.state.Seen(key) || now.Sub(comment.CreatedTime()) > s.commentWindow {
					continue
				}
				s.state.MarkSeen(key)
				newComments = append(newComments, comment)
			}
		} else {
			// Several artists can comment on the same post; only comments
			// by the notification's author count against its running total.
			var authored []objects.Comment
			for _, comment := range comments {
				if comment.Author.ID == notification.Author.ID {
					authored = append(authored, comment)
				}
			}

			newCount := notification.Count - oldCount
			if newCount > len(authored) {
				newCount = len(authored)
			}
			for _, comment := range authored[:max(newCount, 0)] {
				key := Key{
					CommunityID: notification.Community.ID,
					Category:    commentCategory,
					ID:          comment.ID,
				}
				if s.state.Seen(key) {
					continue
				}
				s.state.MarkSeen(key)
				newComments = append(newComments, comment)
			}
		}

		s.state.SetCommentCount(notification.PostID, notification.Author.ID, notification.Count)
	}

	return newComments, nil
}

// resolve fetches the referenced object of each new notification on the
// worker pool. A failed resolution is reported as an error but never aborts
// the cycle; the bare notification is still delivered.
func (s *Stream) resolve(ctx context.Context, notifications []objects.Notification) ([]event, []error) {
	var mu sync.Mutex
	events := make([]event, 0, len(notifications))
	var errs []error

	tasks := make([]pond.Task, 0, len(notifications))
	for _, notification := range notifications {
		n := notification
		task := s.resolvePool.Submit(func() {
			ev, err := s.resolveNotification(ctx, n)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
			}
			events = append(events, ev)
		})
		tasks = append(tasks, task)
	}
	for _, task := range tasks {
		_ = task.Wait()
	}

	return events, errs
}

func (s *Stream) resolveNotification(ctx context.Context, n objects.Notification) (event, error) {
	notificationOnly := event{
		createdAt: n.CreatedTime(),
		deliver:   func(h Handler) { h.OnNotification(&n) },
	}

	withHook := func(hook func(Handler)) event {
		return event{
			createdAt: n.CreatedTime(),
			deliver: func(h Handler) {
				h.OnNotification(&n)
				hook(h)
			},
		}
	}

	switch n.Category {
	case objects.CategoryPost:
		post, err := s.client.Post(ctx, n.PostID)
		if err != nil {
			return notificationOnly, fmt.Errorf("resolve post %s: %w", n.PostID, err)
		}
		return withHook(func(h Handler) { h.OnPost(post) }), nil

	case objects.CategoryMoment:
		moment, err := s.client.Moment(ctx, n.PostID)
		if err != nil {
			return notificationOnly, fmt.Errorf("resolve moment %s: %w", n.PostID, err)
		}
		return withHook(func(h Handler) { h.OnMoment(moment) }), nil

	case objects.CategoryMedia:
		media, err := s.client.Media(ctx, n.PostID)
		if errors.Is(err, weverse.ErrForbidden) {
			// Paid or membership-only media; deliver the notification alone.
			return notificationOnly, nil
		}
		if err != nil {
			return notificationOnly, fmt.Errorf("resolve media %s: %w", n.PostID, err)
		}
		return withHook(func(h Handler) { h.OnMedia(media) }), nil

	case objects.CategoryLive:
		live, err := s.client.Live(ctx, n.PostID)
		if err != nil {
			return notificationOnly, fmt.Errorf("resolve live %s: %w", n.PostID, err)
		}
		return withHook(func(h Handler) { h.OnLive(live) }), nil

	case objects.CategoryNotice:
		// Community ID 0 marks Weverse-wide service notices.
		if n.Community.ID == 0 {
			return notificationOnly, nil
		}
		noticeID, err := strconv.ParseInt(n.PostID, 10, 64)
		if err != nil {
			return notificationOnly, fmt.Errorf("parse notice id %q: %w", n.PostID, err)
		}
		notice, err := s.client.Notice(ctx, noticeID)
		if err != nil {
			return notificationOnly, fmt.Errorf("resolve notice %d: %w", noticeID, err)
		}
		return withHook(func(h Handler) { h.OnNotice(notice) }), nil

	default:
		// Unknown categories still surface as plain notifications.
		return notificationOnly, nil
	}
}
