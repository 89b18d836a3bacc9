package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMQTTTopic(t *testing.T) {
	topic, err := CheckMQTTTopic("TEC_Lab1")
	require.NoError(t, err)
	assert.Equal(t, "tec_lab1", topic)

	_, err = CheckMQTTTopic("tec/lab")
	assert.Error(t, err)

	_, err = CheckMQTTTopic("")
	assert.Error(t, err)
}
