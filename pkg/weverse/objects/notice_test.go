package objects

import "testing"

func TestNotice_CommunityID(t *testing.T) {
	tests := []struct {
		name     string
		parentID string
		want     int64
	}{
		{name: "community parent", parentID: "community-14", want: 14},
		{name: "multi-digit", parentID: "community-20481", want: 20481},
		{name: "non-community parent", parentID: "weverse", want: 0},
		{name: "empty", parentID: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Notice{ParentID: tt.parentID}
			if got := n.CommunityID(); got != tt.want {
				t.Errorf("CommunityID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNotice_BodyText(t *testing.T) {
	tests := []struct {
		name   string
		notice Notice
		want   string
	}{
		{
			name:   "plain body preferred",
			notice: Notice{Body: "<p>html body</p>", PlainBody: "plain body"},
			want:   "plain body",
		},
		{
			name:   "html stripped when plain body absent",
			notice: Notice{Body: "<p>hello <b>world</b></p>"},
			want:   "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.notice.BodyText(); got != tt.want {
				t.Errorf("BodyText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotice_BodyImageURLs(t *testing.T) {
	n := &Notice{Body: `<p>tour dates</p><img src="https://cdn.example.com/a.jpg"><img src="https://cdn.example.com/b.jpg">`}

	urls := n.BodyImageURLs()
	if len(urls) != 2 {
		t.Fatalf("got %d URLs, want 2", len(urls))
	}
	if urls[0] != "https://cdn.example.com/a.jpg" || urls[1] != "https://cdn.example.com/b.jpg" {
		t.Errorf("BodyImageURLs() = %v", urls)
	}
}
