package domain

// SiteStats 按需聚合出的站点统计，不落库
type SiteStats struct {
	OnlineMembers int64  `json:"onlineMembers"`
	TotalComments int64  `json:"totalComments"`
	TotalMembers  int64  `json:"totalMembers"`
	LatestMember  string `json:"latestMember"`
}
