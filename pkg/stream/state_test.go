package stream

import (
	"strconv"
	"testing"

	"github.com/Anson-Quek/weverse-go/pkg/weverse/objects"
)

func TestState_MarkSeen(t *testing.T) {
	s := NewState(10)
	key := Key{CommunityID: 14, Category: objects.CategoryPost, ID: "1"}

	if s.Seen(key) {
		t.Error("Seen() = true before MarkSeen")
	}
	s.MarkSeen(key)
	if !s.Seen(key) {
		t.Error("Seen() = false after MarkSeen")
	}

	// Marking twice must not grow the eviction order.
	s.MarkSeen(key)
	if got := s.seenOrder.Len(); got != 1 {
		t.Errorf("seenOrder.Len() = %d, want 1", got)
	}

	other := Key{CommunityID: 14, Category: objects.CategoryMedia, ID: "1"}
	if s.Seen(other) {
		t.Error("Seen() = true for a different category with the same ID")
	}
}

func TestState_SeenEviction(t *testing.T) {
	s := NewState(3)

	for i := 0; i < 4; i++ {
		s.MarkSeen(Key{CommunityID: 14, Category: objects.CategoryPost, ID: strconv.Itoa(i)})
	}

	if s.Seen(Key{CommunityID: 14, Category: objects.CategoryPost, ID: "0"}) {
		t.Error("oldest key survived eviction")
	}
	for i := 1; i < 4; i++ {
		if !s.Seen(Key{CommunityID: 14, Category: objects.CategoryPost, ID: strconv.Itoa(i)}) {
			t.Errorf("key %d evicted too early", i)
		}
	}
	if got := len(s.seen); got != 3 {
		t.Errorf("len(seen) = %d, want 3", got)
	}
}

func TestState_CommentCount(t *testing.T) {
	s := NewState(10)

	if _, tracked := s.CommentCount("2-101", "m1"); tracked {
		t.Error("CommentCount() tracked before SetCommentCount")
	}

	s.SetCommentCount("2-101", "m1", 3)
	count, tracked := s.CommentCount("2-101", "m1")
	if !tracked || count != 3 {
		t.Errorf("CommentCount() = %d, %t, want 3, true", count, tracked)
	}

	// Overwriting must not grow the eviction order.
	s.SetCommentCount("2-101", "m1", 5)
	if got := s.countOrder.Len(); got != 1 {
		t.Errorf("countOrder.Len() = %d, want 1", got)
	}
	if count, _ := s.CommentCount("2-101", "m1"); count != 5 {
		t.Errorf("CommentCount() after overwrite = %d, want 5", count)
	}

	if _, tracked := s.CommentCount("2-101", "m2"); tracked {
		t.Error("CommentCount() tracked for a different author")
	}
}

func TestState_CommentCountEviction(t *testing.T) {
	s := NewState(2)

	s.SetCommentCount("p1", "m1", 1)
	s.SetCommentCount("p2", "m1", 2)
	s.SetCommentCount("p3", "m1", 3)

	if _, tracked := s.CommentCount("p1", "m1"); tracked {
		t.Error("oldest comment count survived eviction")
	}
	if count, tracked := s.CommentCount("p3", "m1"); !tracked || count != 3 {
		t.Errorf("CommentCount(p3) = %d, %t, want 3, true", count, tracked)
	}
}
