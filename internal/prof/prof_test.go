package prof

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStop(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CPU:   filepath.Join(dir, "cpu.pprof"),
		Mem:   filepath.Join(dir, "mem.pprof"),
		Trace: filepath.Join(dir, "trace.out"),
	}
	require.True(t, cfg.Enabled())

	p, err := Start(cfg)
	require.NoError(t, err)
	require.NoError(t, p.Stop())
	require.NoError(t, p.Stop())

	for _, path := range []string{cfg.CPU, cfg.Mem, cfg.Trace} {
		st, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, st.Size(), path)
	}
}

func TestDisabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	p, err := Start(Config{})
	require.NoError(t, err)
	require.NoError(t, p.Stop())

	var nilProfiler *Profiler
	require.NoError(t, nilProfiler.Stop())
}

func TestStartBadPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")
	_, err := Start(Config{CPU: filepath.Join(missing, "cpu.pprof")})
	require.Error(t, err)

	// CPU-профиль должен быть остановлен, иначе следующий Start упадёт
	_, err = Start(Config{CPU: filepath.Join(t.TempDir(), "cpu.pprof"), Trace: filepath.Join(missing, "t.out")})
	require.Error(t, err)
	p, err := Start(Config{CPU: filepath.Join(t.TempDir(), "cpu.pprof")})
	require.NoError(t, err)
	require.NoError(t, p.Stop())
}
