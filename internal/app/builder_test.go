package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/arduino2nix/internal/adapters/logger"
	"go.trai.ch/arduino2nix/internal/app"
	"go.trai.ch/arduino2nix/internal/core/domain"
)

func TestNewComponents(t *testing.T) {
	lg := logger.New()
	a := &app.App{}

	c := app.NewComponents(a, lg)
	assert.Same(t, a, c.App)
	assert.Equal(t, lg, c.Logger)
}

func TestApp_ConfigureLogging(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	lg, ok := logger.New().(*logger.Logger)
	assert.True(t, ok)
	buf := &bytes.Buffer{}
	lg.SetOutput(buf)

	a := app.New(nil, nil, nil, nil, nil, nil, nil, nil, lg)

	a.ConfigureLogging(domain.LogFormatJSON)
	lg.Info("json")
	assert.Contains(t, buf.String(), `"msg":"json"`)

	buf.Reset()
	a.ConfigureLogging(domain.LogFormatPretty)
	lg.Info("pretty")
	assert.Equal(t, "pretty\n", buf.String())
}
