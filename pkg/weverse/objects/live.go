package objects

// Live is a live broadcast. It shares the video media representation.
type Live struct {
	VideoMedia
}

// MessageCount returns the number of chat messages in the broadcast.
// The second return value is false when the broadcast has no chat.
func (l *Live) MessageCount() (int, bool) {
	if l.Extension.MediaInfo == nil || l.Extension.MediaInfo.Chat == nil {
		return 0, false
	}
	return l.Extension.MediaInfo.Chat.MessageCount, true
}
