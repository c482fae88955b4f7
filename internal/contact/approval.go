package contact

import "strings"

// Approval represents a guest's registration outcome.
type Approval string

const (
	ApprovalApproved Approval = "approved"
	ApprovalDeclined Approval = "declined"
	ApprovalPending  Approval = "pending"
)

var allApprovals = []Approval{
	ApprovalApproved,
	ApprovalDeclined,
	ApprovalPending,
}

var approvalSet = func() map[Approval]struct{} {
	set := make(map[Approval]struct{}, len(allApprovals))
	for _, approval := range allApprovals {
		set[approval] = struct{}{}
	}
	return set
}()

// ParseApproval maps a raw status cell onto an Approval. Anything
// unrecognized, including an empty cell, counts as pending so it lands
// in the declined archive rather than the directory.
func ParseApproval(raw string) Approval {
	candidate := Approval(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := approvalSet[candidate]; ok {
		return candidate
	}
	return ApprovalPending
}

// Approved reports whether the contact may enter the directory.
func (a Approval) Approved() bool {
	return a == ApprovalApproved
}

// String returns the lowercase wire form.
func (a Approval) String() string {
	return string(a)
}
