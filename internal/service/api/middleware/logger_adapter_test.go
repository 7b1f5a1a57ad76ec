package middleware

import (
	"testing"

	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogger_LevelMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level applog.Level
		want  log.Lvl
	}{
		{"Trace는 DEBUG", applog.TraceLevel, log.DEBUG},
		{"Debug", applog.DebugLevel, log.DEBUG},
		{"Info", applog.InfoLevel, log.INFO},
		{"Warn", applog.WarnLevel, log.WARN},
		{"Error", applog.ErrorLevel, log.ERROR},
		{"Fatal은 OFF", applog.FatalLevel, log.OFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := Logger{Logger: logrus.New()}
			l.Logger.SetLevel(tt.level)

			assert.Equal(t, tt.want, l.Level())
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	l := Logger{Logger: logrus.New()}

	l.SetLevel(log.WARN)
	assert.Equal(t, applog.WarnLevel, l.Logger.GetLevel())

	l.SetLevel(log.OFF)
	assert.Equal(t, applog.WarnLevel, l.Logger.GetLevel(), "OFF는 무시합니다")

	assert.Equal(t, "", l.Prefix())
	assert.Same(t, l.Logger.Out, l.Output())
}
