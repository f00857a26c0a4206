package log

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHooked(t *testing.T) *test.Hook {
	t.Helper()
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	previous := L
	L = &logger{entry: logrus.NewEntry(base)}
	t.Cleanup(func() { L = previous })

	return hook
}

func TestWithFieldsDevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	hook := newHooked(t)

	L.WithFields(Fields{
		"company_id":  "c1",
		"user_email":  "a@b.com",
		"remote_addr": "127.0.0.1",
	}).Info("x")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "c1", entry.Data["company_id"])
	assert.Equal(t, "a@b.com", entry.Data["user_email"])
	assert.NotContains(t, entry.Data, "remote_addr")
}

func TestWithFieldsProductionKeepsAll(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := newHooked(t)

	L.WithField("remote_addr", "127.0.0.1").WithCompany("c1").Warn("x")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "127.0.0.1", entry.Data["remote_addr"])
	assert.Equal(t, "c1", entry.Data["company_id"])
}

func TestForContextAddsCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	hook := newHooked(t)

	ctx, correlationID := WithCorrelationID(context.Background())
	require.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))

	ForContext(ctx).Info("x")
	assert.Equal(t, correlationID, hook.LastEntry().Data["correlation_id"])

	ForContext(context.Background()).Info("y")
	assert.NotContains(t, hook.LastEntry().Data, "correlation_id")
}

func TestForRun(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	hook := newHooked(t)

	ForRun("abc123").Info("x")
	assert.Equal(t, "abc123", hook.LastEntry().Data["run_id"])
}

func TestConfigureLevel(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	previous := L
	t.Cleanup(func() {
		L = previous
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetOutput(os.Stderr)
	})

	assert.Equal(t, logrus.DebugLevel, Configure(" debug ", io.Discard))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	assert.Equal(t, logrus.InfoLevel, Configure("verboso", io.Discard))
}
