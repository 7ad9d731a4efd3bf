package stream

import (
	"container/list"

	"github.com/Anson-Quek/weverse-go/pkg/weverse/objects"
)

const defaultSeenLimit = 5000

// Key identifies one trackable item within a community and category.
type Key struct {
	CommunityID int64
	Category    objects.Category
	ID          string
}

// State is the in-memory bookkeeping of already seen items and per-post
// artist comment counts. Both maps are bounded with FIFO eviction so a
// long-running stream cannot grow without limit. State is not safe for
// concurrent use; only the poll loop mutates it.
type State struct {
	limit int

	seen      map[Key]struct{}
	seenOrder *list.List

	commentCounts map[string]int
	countOrder    *list.List
}

func NewState(limit int) *State {
	if limit <= 0 {
		limit = defaultSeenLimit
	}
	return &State{
		limit:         limit,
		seen:          make(map[Key]struct{}),
		seenOrder:     list.New(),
		commentCounts: make(map[string]int),
		countOrder:    list.New(),
	}
}

// Seen reports whether the key has been marked before.
func (s *State) Seen(key Key) bool {
	_, ok := s.seen[key]
	return ok
}

// MarkSeen records the key, evicting the oldest entry at the limit.
func (s *State) MarkSeen(key Key) {
	if s.Seen(key) {
		return
	}

	if s.seenOrder.Len() >= s.limit {
		oldest := s.seenOrder.Front()
		s.seenOrder.Remove(oldest)
		delete(s.seen, oldest.Value.(Key))
	}

	s.seen[key] = struct{}{}
	s.seenOrder.PushBack(key)
}

// CommentCount returns the last recorded artist comment count for a
// post+author pair. The second return value is false when the pair has not
// been tracked yet.
func (s *State) CommentCount(postID, authorID string) (int, bool) {
	count, ok := s.commentCounts[postID+authorID]
	return count, ok
}

// SetCommentCount records the artist comment count for a post+author pair,
// evicting the oldest entry at the limit.
func (s *State) SetCommentCount(postID, authorID string, count int) {
	key := postID + authorID

	if _, ok := s.commentCounts[key]; !ok {
		if s.countOrder.Len() >= s.limit {
			oldest := s.countOrder.Front()
			s.countOrder.Remove(oldest)
			delete(s.commentCounts, oldest.Value.(string))
		}
		s.countOrder.PushBack(key)
	}

	s.commentCounts[key] = count
}
