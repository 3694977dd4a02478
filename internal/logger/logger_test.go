package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	zlog "github.com/rs/zerolog/log"

	appCtx "github.com/pawararyan169/job-portal/internal/pkg/context"
)

func TestInitWithWriter_Defaults_ToInfoAndConsole(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	InitWithWriter(&buf)

	if Logger.GetLevel().String() != "info" {
		t.Fatalf("expected level=info, got %s", Logger.GetLevel().String())
	}
	if zlog.Logger.GetLevel().String() != "info" {
		t.Fatalf("expected global level=info, got %s", zlog.Logger.GetLevel().String())
	}

	Logger.Info().Msg("hello")
	out := buf.String()
	if out == "" {
		t.Fatalf("expected output")
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected console output, got json-like: %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("expected message in output, got: %q", out)
	}
}

func TestInitWithWriter_InvalidLogLevel_FallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "not-a-level")
	t.Setenv("LOG_FORMAT", "console")

	var buf bytes.Buffer
	InitWithWriter(&buf)

	if Logger.GetLevel().String() != "info" {
		t.Fatalf("expected fallback to info, got %s", Logger.GetLevel().String())
	}
}

func TestInitWithWriter_JSONFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	InitWithWriter(&buf)

	Logger.Info().Msg("hello")
	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "{") {
		t.Fatalf("expected json output, got: %q", out)
	}
	if Logger.GetLevel().String() != "debug" {
		t.Fatalf("expected level=debug, got %s", Logger.GetLevel().String())
	}
}

func TestWithCtx_AttachesRequestID(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	InitWithWriter(&buf)

	ctx := appCtx.WithRequestID(context.Background(), "req-42")
	WithCtx(ctx).Info().Msg("tagged")

	if !strings.Contains(buf.String(), "req-42") {
		t.Fatalf("expected request_id in output, got: %q", buf.String())
	}
}

func TestWithCtx_NoRequestID_UsesBaseLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	InitWithWriter(&buf)

	WithCtx(context.Background()).Info().Msg("plain")

	out := buf.String()
	if strings.Contains(out, "request_id") {
		t.Fatalf("did not expect request_id, got: %q", out)
	}
	if !strings.Contains(out, "plain") {
		t.Fatalf("expected message, got: %q", out)
	}
}
