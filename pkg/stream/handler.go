package stream

import "github.com/Anson-Quek/weverse-go/pkg/weverse/objects"

// Handler receives newly detected Weverse activity. OnNotification fires for
// every new non-comment notification; the category hooks fire additionally
// with the resolved object. Comment notifications only carry running counts,
// so new artist comments arrive through OnComment alone. Callbacks are
// invoked sequentially from the poll loop, in ascending chronological order
// within one cycle.
//
// Embed BaseHandler to only implement the hooks you care about.
type Handler interface {
	OnNotification(notification *objects.Notification)
	OnPost(post *objects.Post)
	OnComment(comment *objects.Comment)
	OnMedia(media objects.Media)
	OnLive(live *objects.Live)
	OnNotice(notice *objects.Notice)
	OnMoment(moment objects.MomentLike)
	// OnError is called when a poll cycle or the resolution of a single
	// item fails. The loop keeps running either way.
	OnError(err error)
}

// BaseHandler is a no-op Handler implementation for embedding.
type BaseHandler struct{}

func (BaseHandler) OnNotification(*objects.Notification) {}
func (BaseHandler) OnPost(*objects.Post)                 {}
func (BaseHandler) OnComment(*objects.Comment)           {}
func (BaseHandler) OnMedia(objects.Media)                {}
func (BaseHandler) OnLive(*objects.Live)                 {}
func (BaseHandler) OnNotice(*objects.Notice)             {}
func (BaseHandler) OnMoment(objects.MomentLike)          {}
func (BaseHandler) OnError(error)                        {}
