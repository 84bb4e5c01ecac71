package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("absences").
		Where(squirrel.Eq{"tenant_id": 1}).
		Where(squirrel.Eq{"employee_id": 2}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM absences WHERE tenant_id = $1 AND employee_id = $2", query)
	assert.Equal(t, []interface{}{1, 2}, args)
}

func TestInsert_UsesDollarPlaceholders(t *testing.T) {
	query, _, err := Insert("bookings").Columns("a", "b").Values(1, 2).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO bookings (a,b) VALUES ($1,$2)", query)
}
