package constants

// Designation types: how the customer narrowed the assignment.
const (
	DesignationNone          = "지정없음"
	DesignationCompany       = "업체지정"
	DesignationGroupPurchase = "공동구매"
)

// Notification recipients, passed through to the delivery channel verbatim.
const (
	RecipientCompanyAndCustomer = "업체+고객"
	RecipientCompany            = "업체"
	RecipientCustomer           = "고객"
)

func IsValidRecipient(r string) bool {
	switch r {
	case RecipientCompanyAndCustomer, RecipientCompany, RecipientCustomer:
		return true
	}
	return false
}

func IsValidDesignationType(d string) bool {
	switch d {
	case DesignationNone, DesignationCompany, DesignationGroupPurchase:
		return true
	}
	return false
}

// Quote link draft labels. Labels between 초안 and 최종 are numbered rounds
// (1차, 2차, ...) allocated from the existing link count.
const (
	DraftTypeInitial = "초안"
	DraftTypeFinal   = "최종"
)

// Company region applicability flag.
const (
	RegionActual    = "실제적용"
	RegionRequested = "업체요청"
)
