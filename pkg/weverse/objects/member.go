package objects

import "time"

// Member is a community member profile. Artist rosters return the same
// shape restricted to the artist profile fields.
type Member struct {
	ID                   string `json:"memberId"`
	CommunityID          int64  `json:"communityId"`
	IsJoined             bool   `json:"joined"`
	JoinedDate           string `json:"joinedDate"`
	ProfileType          string `json:"profileType"`
	ProfileName          string `json:"profileName"`
	ProfileImageURL      string `json:"profileImageUrl"`
	ProfileCoverImageURL string `json:"profileCoverImageUrl"`
	ProfileComment       string `json:"profileComment"`
	IsHidden             bool   `json:"hidden"`
	IsBlinded            bool   `json:"blinded"`
	JoinStatus           string `json:"memberJoinStatus"`
	FollowCount          int    `json:"followCount"`
	HasMembership        bool   `json:"hasMembership"`
	HasOfficialMark      bool   `json:"hasOfficialMark"`
	FirstJoinedAt        int64  `json:"firstJoinAt"`
	IsFollowed           bool   `json:"followed"`
}

// Artist is a member that belongs to a community's artist roster.
type Artist = Member

func (m *Member) FirstJoinedTime() time.Time {
	return epochToTime(m.FirstJoinedAt)
}
