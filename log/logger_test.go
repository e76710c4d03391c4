package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
)

// TestParseLevel tests the level names parsing.
func TestParseLevel(t *testing.T) {
	assert.Equal(t, LDEBUG, ParseLevel("debug"))
	assert.Equal(t, LWARNING, ParseLevel(" WARNING "))
	assert.Equal(t, LDEBUG3, ParseLevel("debug3"))
	assert.Equal(t, LUNKNOWN, ParseLevel("verbose"))
}

// TestModuleLogger tests the module logger filtering.
func TestModuleLogger(t *testing.T) {
	defer func() {
		logger = nil
		debugLeveled, isDebugLeveled = nil, false
		currentLevel = LINFO
	}()

	buf := &bytes.Buffer{}
	New(buf, "", 0)

	require.NoError(t, SetLevel(LDEBUG))

	m := NewModuleLogger("testing")
	assert.Equal(t, LDEBUG, m.Level())

	m.Debugf("joined: %s", "posts")
	assert.Contains(t, buf.String(), "[testing] joined: posts")

	buf.Reset()
	m.SetLevel(LERROR)
	m.Infof("should not be written")
	assert.Empty(t, buf.String())

	m.Errorf("failed: %d", 1)
	assert.Contains(t, buf.String(), "[testing] failed: 1")

	err := SetLevel(LUNKNOWN)
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.CommonLoggerUnknownLevel))
}
