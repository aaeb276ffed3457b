package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanAssignmentFirstSelectionFillsUnassignedRow(t *testing.T) {
	targets, err := PlanAssignment("", []SelectionItem{
		{CompanyID: 1, CompanyName: "갑"},
		{CompanyID: 2, CompanyName: "을"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.True(t, targets[0].IsPrimaryRow)
	assert.Equal(t, "갑", targets[0].CompanyName)
	assert.False(t, targets[1].IsPrimaryRow)
}

func TestPlanAssignmentAssignedRowOnlySpawnsCopies(t *testing.T) {
	targets, err := PlanAssignment("기존업체", []SelectionItem{
		{CompanyID: 1, CompanyName: "갑"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.False(t, targets[0].IsPrimaryRow)
}

func TestPlanAssignmentDedupsAgainstExisting(t *testing.T) {
	existing := map[string]struct{}{"갑": {}}
	targets, err := PlanAssignment("", []SelectionItem{
		{CompanyID: 1, CompanyName: "갑"},
		{CompanyID: 2, CompanyName: "을"},
	}, existing)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "을", targets[0].CompanyName)
	assert.True(t, targets[0].IsPrimaryRow)
}

func TestPlanAssignmentDedupsWithinSelection(t *testing.T) {
	targets, err := PlanAssignment("", []SelectionItem{
		{CompanyID: 1, CompanyName: "갑"},
		{CompanyID: 1, ServiceID: 7, CompanyName: "갑"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, targets, 1)
}

func TestPlanAssignmentEmptySelectionFails(t *testing.T) {
	_, err := PlanAssignment("", nil, nil)
	assert.ErrorIs(t, err, ErrNoSelection)

	// everything deduped away counts as empty too
	_, err = PlanAssignment("", []SelectionItem{{CompanyID: 1, CompanyName: "갑"}}, map[string]struct{}{"갑": {}})
	assert.ErrorIs(t, err, ErrNoSelection)
}
