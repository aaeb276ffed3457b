package workflow

import "fmt"

// Status is an order's position in its fixed lifecycle. Values are stored and
// transferred as the Korean labels the operators work with.
type Status string

const (
	StatusWaiting             Status = "대기중"
	StatusAssigned            Status = "할당"
	StatusInsufficientCompany Status = "업체미비"
	StatusDuplicate           Status = "중복접수"
	StatusContactError        Status = "연락처오류"
	StatusAvailabilityInquiry Status = "가능문의"
	StatusCustomerInquiry     Status = "고객문의"
	StatusRejected            Status = "반려"
	StatusCancelled           Status = "취소"
	StatusExcluded            Status = "제외"
	StatusImpossibleAnswer    Status = "불가능답변(X)"
	StatusContracted          Status = "계약"
)

// StatusMeta is the single canonical source for per-status display metadata
// and allowed transitions. Every surface reads from this map instead of
// re-declaring its own lookup table.
type StatusMeta struct {
	Label string
	Color string
	Next  []Status
}

var statusTable = map[Status]StatusMeta{
	StatusWaiting: {
		Label: "대기중", Color: "default",
		Next: []Status{StatusAssigned, StatusInsufficientCompany, StatusDuplicate, StatusContactError, StatusAvailabilityInquiry, StatusCustomerInquiry},
	},
	StatusAssigned: {
		Label: "할당", Color: "blue",
		Next: []Status{StatusRejected, StatusCancelled, StatusExcluded, StatusContactError, StatusContracted},
	},
	StatusContactError: {
		Label: "연락처오류", Color: "red",
		Next: []Status{StatusWaiting, StatusAssigned},
	},
	StatusAvailabilityInquiry: {
		Label: "가능문의", Color: "orange",
		Next: []Status{StatusAssigned, StatusImpossibleAnswer},
	},
	StatusRejected: {
		Label: "반려", Color: "volcano",
		Next: []Status{StatusWaiting, StatusAssigned, StatusContracted},
	},
	StatusCustomerInquiry: {
		Label: "고객문의", Color: "purple",
		Next: []Status{StatusWaiting, StatusAssigned},
	},
	StatusCancelled: {
		Label: "취소", Color: "magenta",
		Next: []Status{StatusContracted},
	},
	StatusExcluded: {
		Label: "제외", Color: "gray",
		Next: []Status{},
	},
	StatusInsufficientCompany: {
		Label: "업체미비", Color: "gold",
		Next: []Status{StatusWaiting},
	},
	StatusDuplicate: {
		Label: "중복접수", Color: "gray",
		Next: []Status{},
	},
	StatusImpossibleAnswer: {
		Label: "불가능답변(X)", Color: "red",
		Next: []Status{StatusWaiting},
	},
	StatusContracted: {
		Label: "계약", Color: "green",
		Next: []Status{},
	},
}

func IsKnownStatus(s Status) bool {
	_, ok := statusTable[s]
	return ok
}

// Meta returns the display metadata for a status.
func Meta(s Status) (StatusMeta, bool) {
	m, ok := statusTable[s]
	return m, ok
}

// AllowedNext returns the fixed set of statuses reachable from current.
// The 연락처오류 → 할당 edge additionally requires a company to already be
// attached to the order; pass the order's assigned company name.
func AllowedNext(current Status, assignedCompany string) []Status {
	meta, ok := statusTable[current]
	if !ok {
		return nil
	}
	next := make([]Status, 0, len(meta.Next))
	for _, s := range meta.Next {
		if current == StatusContactError && s == StatusAssigned && assignedCompany == "" {
			continue
		}
		next = append(next, s)
	}
	return next
}

// IsTerminal reports whether no transition leaves the status.
func IsTerminal(s Status) bool {
	meta, ok := statusTable[s]
	return ok && len(meta.Next) == 0
}

// TransitionError explains a rejected status transition.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("허용되지 않는 상태 변경입니다: %s → %s", e.From, e.To)
}

// CanTransition validates a requested transition against the table and the
// assigned-company gate. Violations never reach the database.
func CanTransition(current, target Status, assignedCompany string) error {
	if !IsKnownStatus(current) || !IsKnownStatus(target) {
		return &TransitionError{From: current, To: target}
	}
	for _, s := range AllowedNext(current, assignedCompany) {
		if s == target {
			return nil
		}
	}
	return &TransitionError{From: current, To: target}
}

// AllStatuses returns every known status, waiting first, terminal states last.
func AllStatuses() []Status {
	return []Status{
		StatusWaiting, StatusAssigned, StatusContactError, StatusAvailabilityInquiry,
		StatusRejected, StatusCustomerInquiry, StatusCancelled, StatusInsufficientCompany,
		StatusImpossibleAnswer, StatusExcluded, StatusDuplicate, StatusContracted,
	}
}
