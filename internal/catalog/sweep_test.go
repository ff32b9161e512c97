package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSweeper(t *testing.T) {
	cat := newTestCatalog(t)

	sweeper, err := NewSweeper(cat, "0 3 * * *")
	require.NoError(t, err)
	require.NoError(t, sweeper.scheduler.Shutdown())
}

func TestNewSweeper_InvalidSchedule(t *testing.T) {
	cat := newTestCatalog(t)

	_, err := NewSweeper(cat, "often")
	assert.Error(t, err)
}
