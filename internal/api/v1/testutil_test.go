package v1_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosuda/tasklist/internal/domain"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}
