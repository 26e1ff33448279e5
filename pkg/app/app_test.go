package app

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLevel(t *testing.T) {
	levels := []string{"data/levels/level1.yaml", "data/levels/level2.yaml"}

	tests := []struct {
		name    string
		level   string
		levels  []string
		want    string
		wantErr bool
	}{
		{"默认第一个关卡", "", levels, "data/levels/level1.yaml", false},
		{"按名称", "level2", levels, "data/levels/level2.yaml", false},
		{"显式路径", "/tmp/custom.yaml", levels, "/tmp/custom.yaml", false},
		{"名称不存在", "level9", levels, "", true},
		{"目录为空", "", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLevel(tt.level, tt.levels, "data/levels")
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveLevel() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := resolveLevel("", nil, "data/levels"); !errors.Is(err, ErrNoLevels) {
		t.Errorf("empty dir error = %v, want ErrNoLevels", err)
	}
}

// captureLog 把标准日志重定向到缓冲区，测试结束后恢复
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOutput, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(buf)
	t.Cleanup(func() {
		log.SetOutput(prevOutput)
		log.SetFlags(prevFlags)
	})
	return buf
}

// TestNewAppErrorRestoresLog 测试初始化失败后日志输出恢复，错误信息不会被丢弃
func TestNewAppErrorRestoresLog(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	tests := []struct {
		name    string
		verbose bool
	}{
		{"静默模式", false},
		{"详细模式", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			a, err := NewApp(Config{Verbose: tt.verbose, GridConfigPath: missing})
			if err == nil || a != nil {
				t.Fatalf("NewApp() = %v, %v; want error", a, err)
			}
			if !errors.Is(err, os.ErrNotExist) || !strings.Contains(err.Error(), missing) {
				t.Errorf("NewApp() error = %v, want not-exist naming %s", err, missing)
			}

			if log.Writer() == io.Discard {
				t.Fatal("log output still discarded after NewApp failed")
			}
			log.Printf("初始化失败: %v", err)
			if !strings.Contains(buf.String(), missing) {
				t.Errorf("log output = %q, want the error message", buf.String())
			}
		})
	}
}
