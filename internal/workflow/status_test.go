package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedNextMatchesTable(t *testing.T) {
	cases := map[Status][]Status{
		StatusWaiting:             {StatusAssigned, StatusInsufficientCompany, StatusDuplicate, StatusContactError, StatusAvailabilityInquiry, StatusCustomerInquiry},
		StatusAssigned:            {StatusRejected, StatusCancelled, StatusExcluded, StatusContactError, StatusContracted},
		StatusAvailabilityInquiry: {StatusAssigned, StatusImpossibleAnswer},
		StatusRejected:            {StatusWaiting, StatusAssigned, StatusContracted},
		StatusCustomerInquiry:     {StatusWaiting, StatusAssigned},
		StatusCancelled:           {StatusContracted},
		StatusInsufficientCompany: {StatusWaiting},
		StatusImpossibleAnswer:    {StatusWaiting},
	}
	for from, want := range cases {
		assert.ElementsMatch(t, want, AllowedNext(from, "어떤업체"), "from %s", from)
	}
}

func TestContactErrorRequiresCompanyForAssignment(t *testing.T) {
	withCompany := AllowedNext(StatusContactError, "한빛인테리어")
	assert.Contains(t, withCompany, StatusAssigned)

	withoutCompany := AllowedNext(StatusContactError, "")
	assert.NotContains(t, withoutCompany, StatusAssigned)
	assert.Contains(t, withoutCompany, StatusWaiting)

	err := CanTransition(StatusContactError, StatusAssigned, "")
	require.Error(t, err)
	var transitionErr *TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, StatusContactError, transitionErr.From)
	assert.Equal(t, StatusAssigned, transitionErr.To)

	assert.NoError(t, CanTransition(StatusContactError, StatusAssigned, "한빛인테리어"))
}

func TestTerminalStatusesHaveNoExit(t *testing.T) {
	for _, s := range []Status{StatusExcluded, StatusDuplicate, StatusContracted} {
		assert.True(t, IsTerminal(s), "%s should be terminal", s)
		assert.Empty(t, AllowedNext(s, "업체"))
	}
	assert.False(t, IsTerminal(StatusWaiting))
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	assert.Error(t, CanTransition(StatusWaiting, Status("없는상태"), ""))
	assert.Error(t, CanTransition(Status("없는상태"), StatusWaiting, ""))
}

func TestCanTransitionRejectsUnlistedEdge(t *testing.T) {
	assert.Error(t, CanTransition(StatusWaiting, StatusContracted, "업체"))
	assert.Error(t, CanTransition(StatusCancelled, StatusWaiting, "업체"))
	assert.NoError(t, CanTransition(StatusWaiting, StatusAssigned, ""))
}

func TestEveryStatusHasMeta(t *testing.T) {
	for _, s := range AllStatuses() {
		meta, ok := Meta(s)
		require.True(t, ok, "missing meta for %s", s)
		assert.Equal(t, string(s), meta.Label)
		assert.NotEmpty(t, meta.Color)
	}
	assert.Len(t, AllStatuses(), 12)
}
