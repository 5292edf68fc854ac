package domain

// ApprovalStats are the aggregate counts shown on the admin dashboard.
type ApprovalStats struct {
	TotalOwners      int64 `json:"totalOwners"`
	TotalRealtors    int64 `json:"totalRealtors"`
	PendingApprovals int64 `json:"pendingApprovals"`
}
