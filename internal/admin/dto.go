package admin

// ListQuery caps listing pages; the original console pages in blocks of 50.
type ListQuery struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

type UpdateMemberStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending active suspended"`
}

// DashboardStats holds four independently read aggregate counts; each number
// reflects its own read time, with no cross-count consistency guarantee.
type DashboardStats struct {
	TotalMembers          int64 `json:"total_members"`
	TotalApplications     int64 `json:"total_applications"`
	PendingInquiries      int64 `json:"pending_inquiries"`
	NewsletterSubscribers int64 `json:"newsletter_subscribers"`
}
