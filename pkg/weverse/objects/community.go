package objects

// PartialCommunity is the community summary returned by the joined
// communities listing. Fetch the full Community when more detail is needed.
type PartialCommunity struct {
	ID           int64  `json:"communityId"`
	Name         string `json:"communityName"`
	LogoImageURL string `json:"logoImage"`
	URLPath      string `json:"urlPath"`
}

// Community is a followed creator community.
type Community struct {
	ID                 int64  `json:"communityId"`
	Name               string `json:"communityName"`
	Alias              string `json:"communityAlias"`
	FanName            string `json:"fanName"`
	MemberCount        int    `json:"memberCount"`
	LogoImageURL       string `json:"logoImage"`
	HomeHeaderImageURL string `json:"homeHeaderImage"`
	HasMembership      bool   `json:"hasMembership"`
}
