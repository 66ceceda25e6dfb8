package logging

import (
	"bytes"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_CallerFields(t *testing.T) {
	buf := &bytes.Buffer{}

	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(&ContextHook{})

	logger.Info("hello")

	out := buf.String()
	require.Contains(t, out, `"file":"logrus_hooks_test.go"`)
	require.Contains(t, out, `"func":"logging.Test_CallerFields"`)
}
