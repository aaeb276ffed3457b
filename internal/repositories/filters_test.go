package repositories

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqValueSplitsCommaJoinedFilters(t *testing.T) {
	assert.Equal(t, []string{"대기중", "할당"}, eqValue("대기중,할당"))
	assert.Equal(t, []string{"대기중", "할당"}, eqValue("대기중, 할당"))
	assert.Equal(t, "대기중", eqValue("대기중"))
	assert.Equal(t, 7, eqValue(7))
}

func TestEqValueBuildsInClause(t *testing.T) {
	sql, args, err := sq.Select("id").
		From("orders").
		Where(sq.Eq{"status": eqValue("대기중,할당")}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "status IN ($1,$2)")
	assert.Equal(t, []interface{}{"대기중", "할당"}, args)
}
