package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, "/room", c.WSPath)
	assert.Equal(t, 6, c.Room.IDLength)
	assert.Equal(t, 64, c.WS.SendBuffer)
	assert.Equal(t, 60*time.Second, c.WS.PongWait())
	require.NoError(t, c.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("ROOM_ID_LENGTH", "8")
	t.Setenv("WS_SEND_BUFFER", "4")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", c.HTTPAddr)
	assert.Equal(t, 8, c.Room.IDLength)
	assert.Equal(t, 4, c.WS.SendBuffer)

	log := c.NewLogger()
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Room.IDLength = 2
	assert.Error(t, c.Validate())

	c = Default()
	c.LogFormat = "xml"
	assert.Error(t, c.Validate())
}
