package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTemplateSubstitutesPlaceholders(t *testing.T) {
	got := ResolveTemplate(StatusAvailabilityInquiry, "김철수", "주방 리모델링", nil)
	assert.Contains(t, got, "김철수")
	assert.Contains(t, got, "주방 리모델링")
	assert.NotContains(t, got, "{name}")
	assert.NotContains(t, got, "{workContent}")
}

func TestResolveTemplateOverridesWin(t *testing.T) {
	overrides := map[Status]string{
		StatusAssigned: "{name}님 전용 안내",
	}
	assert.Equal(t, "김철수님 전용 안내", ResolveTemplate(StatusAssigned, "김철수", "", overrides))

	// empty override falls back to the default
	overrides[StatusAssigned] = ""
	got := ResolveTemplate(StatusAssigned, "김철수", "", overrides)
	assert.Contains(t, got, "김철수")
	assert.NotEqual(t, "", got)
}

func TestResolveTemplateUnknownStatusIsEmpty(t *testing.T) {
	assert.Equal(t, "", ResolveTemplate(StatusWaiting, "김철수", "", nil))
	assert.Equal(t, "", ResolveTemplate(Status("없는상태"), "김철수", "", nil))
}

func TestResolveInquiryOnlyForCustomerInquiry(t *testing.T) {
	got, ok := ResolveInquiry(StatusCustomerInquiry, "주소문의", "김철수")
	require.True(t, ok)
	assert.Contains(t, got, "김철수")

	_, ok = ResolveInquiry(StatusAssigned, "주소문의", "김철수")
	assert.False(t, ok)

	_, ok = ResolveInquiry(StatusCustomerInquiry, "없는문의", "김철수")
	assert.False(t, ok)
}

func TestInquiryKindsAllResolve(t *testing.T) {
	for _, kind := range InquiryKinds() {
		_, ok := ResolveInquiry(StatusCustomerInquiry, kind, "김철수")
		assert.True(t, ok, "kind %s", kind)
	}
	assert.Len(t, InquiryKinds(), 6)
}
