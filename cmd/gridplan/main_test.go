package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePose(t *testing.T) {
	pose, err := parsePose("1.5, -2")
	require.NoError(t, err)
	assert.Equal(t, 1.5, pose.Position.X)
	assert.Equal(t, -2.0, pose.Position.Y)
	assert.Zero(t, pose.Yaw)

	pose, err = parsePose("0,0,3.14")
	require.NoError(t, err)
	assert.Equal(t, 3.14, pose.Yaw)

	for _, bad := range []string{"", "1", "1,2,3,4", "a,2"} {
		_, err := parsePose(bad)
		assert.Error(t, err, bad)
	}
}
