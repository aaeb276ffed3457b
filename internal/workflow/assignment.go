package workflow

import "fmt"

// ErrNoSelection aborts an assignment before any write when the operator
// selected neither a company nor a group-purchase service.
var ErrNoSelection = fmt.Errorf("업체 또는 공동구매를 선택해주세요")

// SelectionItem is one picked target: a company or a group-purchase service.
type SelectionItem struct {
	CompanyID   int
	ServiceID   int // group purchase round id, 0 for a plain company
	CompanyName string
}

// AssignmentTarget is one planned row mutation. The primary row is the source
// order itself (filled in place when it has no assigned company yet); every
// other target spawns a copy of the source order.
type AssignmentTarget struct {
	SelectionItem
	IsPrimaryRow bool
}

// PlanAssignment applies the §4.4 allocation rules. existingAssignments holds
// the company names already present among rows sharing the source order's
// post link; those selections are dropped (dedup by full name). The first
// surviving selection fills the source row when it is still unassigned,
// every additional one becomes a new row.
func PlanAssignment(assignedCompany string, selection []SelectionItem, existingAssignments map[string]struct{}) ([]AssignmentTarget, error) {
	deduped := make([]SelectionItem, 0, len(selection))
	seen := make(map[string]struct{})
	for _, item := range selection {
		if _, dup := existingAssignments[item.CompanyName]; dup {
			continue
		}
		if _, dup := seen[item.CompanyName]; dup {
			continue
		}
		seen[item.CompanyName] = struct{}{}
		deduped = append(deduped, item)
	}

	if len(deduped) == 0 {
		return nil, ErrNoSelection
	}

	targets := make([]AssignmentTarget, 0, len(deduped))
	primaryFree := assignedCompany == ""
	for i, item := range deduped {
		targets = append(targets, AssignmentTarget{
			SelectionItem: item,
			IsPrimaryRow:  primaryFree && i == 0,
		})
	}
	return targets, nil
}
