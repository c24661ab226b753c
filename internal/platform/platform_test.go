package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostSelection(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, IsWeb(), IsNative())

	r := Default()
	require.NotNil(t, r)
	if IsWeb() {
		assert.Equal(t, "web", r.Name())
	} else {
		assert.Equal(t, "term", r.Name())
	}
}

func TestScaleFontSize(t *testing.T) {
	t.Parallel()

	for _, size := range []float64{0, 12, 14.5, 48} {
		assert.InDelta(t, size, ScaleFontSize(size), 0.0001)
	}
}
