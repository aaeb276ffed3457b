package workflow

import "strings"

// Default notification templates per target status. The database table
// message_templates overrides these; an absent entry resolves to "" and the
// operator types the message by hand.
var defaultTemplates = map[Status]string{
	StatusAssigned:            "{name}님, 요청하신 인테리어 견적이 업체에 전달되었습니다. 곧 연락드리겠습니다.",
	StatusContactError:        "{name}님, 남겨주신 연락처로 연결이 되지 않아 확인 부탁드립니다.",
	StatusAvailabilityInquiry: "{name}님, 요청하신 시공({workContent}) 가능 여부를 업체에 확인 중입니다.",
	StatusRejected:            "{name}님, 배정된 업체에서 진행이 어려워 다른 업체를 찾고 있습니다.",
	StatusCancelled:           "{name}님, 요청하신 견적 접수가 취소 처리되었습니다.",
	StatusInsufficientCompany: "{name}님, 해당 지역에 시공 가능한 업체를 찾는 중입니다. 조금만 기다려주세요.",
	StatusContracted:          "{name}님, 계약이 확정되었습니다. 이용해주셔서 감사합니다.",
}

// Customer-inquiry sub-templates, selectable only when the target status is
// 고객문의. Selecting one overwrites any drafted content (last write wins).
var inquiryTemplates = map[string]string{
	"내용문의":  "{name}님, 요청하신 시공 내용을 조금 더 자세히 알려주시겠어요?",
	"주소문의":  "{name}님, 정확한 시공 주소(동까지)를 알려주시면 업체 배정이 빨라집니다.",
	"일정문의":  "{name}님, 희망하시는 시공 일정을 알려주시겠어요?",
	"예산문의":  "{name}님, 생각하고 계신 예산 범위를 알려주시면 맞는 업체를 찾아드립니다.",
	"평수문의":  "{name}님, 시공하실 공간의 평수를 알려주시겠어요?",
	"기타문의":  "{name}님, 추가로 확인이 필요한 사항이 있어 연락드립니다.",
}

// ResolveTemplate maps a target status to its notification message with
// {name} and {workContent} substituted. overrides (loaded from the DB) win
// over the compiled defaults. Unknown status resolves to "".
func ResolveTemplate(target Status, name, workContent string, overrides map[Status]string) string {
	tpl, ok := overrides[target]
	if !ok || tpl == "" {
		tpl, ok = defaultTemplates[target]
		if !ok {
			return ""
		}
	}
	return substitute(tpl, name, workContent)
}

// ResolveInquiry resolves one of the customer-inquiry sub-templates. Valid
// only for 고객문의; callers pass the template key shown to the operator.
func ResolveInquiry(target Status, kind, name string) (string, bool) {
	if target != StatusCustomerInquiry {
		return "", false
	}
	tpl, ok := inquiryTemplates[kind]
	if !ok {
		return "", false
	}
	return substitute(tpl, name, ""), true
}

// InquiryKinds lists the selectable sub-template keys.
func InquiryKinds() []string {
	return []string{"내용문의", "주소문의", "일정문의", "예산문의", "평수문의", "기타문의"}
}

func substitute(tpl, name, workContent string) string {
	out := strings.ReplaceAll(tpl, "{name}", name)
	out = strings.ReplaceAll(out, "{workContent}", workContent)
	return out
}
