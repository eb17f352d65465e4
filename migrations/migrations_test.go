package migrations

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentsFreeTextColumnsAreUnbounded(t *testing.T) {
	schema, err := FS.ReadFile("000001_create_appointments.up.sql")
	require.NoError(t, err)

	for _, column := range []string{"email", "reason"} {
		pattern := regexp.MustCompile(`(?m)^\s*` + column + `\s+TEXT\b`)
		assert.Regexp(t, pattern, string(schema), "%s must be TEXT", column)
	}
}
