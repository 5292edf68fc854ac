package domain

// Role identifies which account collection a claim or operation refers to.
// Authorization is an exact match on this value; there is no role hierarchy,
// so an admin token does not open owner/realtor/customer routes.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOwner    Role = "owner"
	RoleRealtor  Role = "realtor"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleRealtor, RoleCustomer:
		return true
	}
	return false
}

// RequiresApproval reports whether accounts of this role must be approved by an
// admin before a session may be issued.
func (r Role) RequiresApproval() bool {
	return r == RoleOwner || r == RoleRealtor
}

// ApprovalStatus tracks the admin review state of an owner or realtor account.
// pending is the only non-terminal state; approved and rejected are terminal
// (re-review requires an administrative override outside the workflow).
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)
