package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.GET("/sessions/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = origStdout
	}()

	req := httptest.NewRequest(http.MethodGet, "/sessions/sess-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read log output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 {
		t.Fatalf("expected log output")
	}
	last := lines[len(lines)-1]
	var payload map[string]any
	if err := json.Unmarshal([]byte(last), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}

	required := []string{"request_id", "method", "path", "status", "duration_ms", "session_id"}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["session_id"] != "sess-1" {
		t.Fatalf("unexpected session_id: %v", payload["session_id"])
	}
	if payload["path"] != "/sessions/sess-1" {
		t.Fatalf("unexpected path: %v", payload["path"])
	}
}

func TestLoggingSkipsPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.OPTIONS("/sessions", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = origStdout
	}()

	req := httptest.NewRequest(http.MethodOptions, "/sessions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read log output: %v", err)
	}
	if strings.Contains(buf.String(), "request.complete") {
		t.Fatal("preflight request should not be logged")
	}
}
