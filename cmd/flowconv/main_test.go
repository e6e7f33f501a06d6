package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layout creates root/<dir>/<name> files from a nested map.
func layout(t *testing.T, files map[string]map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for dir, entries := range files {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
		for name, content := range entries {
			require.NoError(t, os.WriteFile(filepath.Join(root, dir, name), []byte(content), 0o644))
		}
	}
	return root
}

func TestRun_MaxFlow(t *testing.T) {
	root := layout(t, map[string]map[string]string{
		"AOJ_GRL_6_A": {"a.in.in": "2 1\n0 1 5\n", "a.in.out": "5\n"},
		"LibreOJ_101": {"1.in": "3 2 1 3\n1 2 4\n2 3 6\n", "1.out": "4\n"},
	})
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"-root", root, "-problem", "maxflow", "-verify", "-workers", "2"}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	got, err := os.ReadFile(filepath.Join(root, "AOJ_GRL_6_A", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "2 1 0 1 5\n0 1 5", string(got))
	got, err = os.ReadFile(filepath.Join(root, "LibreOJ_101", "1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "3 2 0 2 4\n0 1 4\n1 2 6", string(got))
}

func TestRun_FailureExitCode(t *testing.T) {
	root := layout(t, map[string]map[string]string{
		"AOJ_GRL_6_B":                    {"x.in.in": "3 2 10\n0 1 5 2\n1 2 5 3\n", "x.in.out": "-1\n", "y.in.in": "2 0 1\n"},
		"LibraryChecker_min_cost_b_flow": {},
	})
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"-root", root, "-problem", "mincostflow", "-log-level", "error"}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "y.in.in")
	assert.FileExists(t, filepath.Join(root, "AOJ_GRL_6_B", "x.txt"))
	assert.NoFileExists(t, filepath.Join(root, "AOJ_GRL_6_B", "y.txt"))
}

func TestRun_FormatSolverBundle(t *testing.T) {
	root := layout(t, map[string]map[string]string{
		"LibreOJ_101": {
			"1.in": "3 2 1 3\n1 2 4\n2 3 6\n", "1.out": "4\n",
			"2.in": "2 1 1 2\n1 2 7\n", "2.out": "7\n",
		},
	})
	var stderr bytes.Buffer

	// AOJ_GRL_6_A is absent: -format restricts the run to LibreOJ
	args := []string{"-root", root, "-format", "libre_oj_101", "-verify", "-solver", "edmonds-karp", "-bundle", "all.bundle"}
	code := run(context.Background(), args, &stderr)
	require.Equal(t, 0, code, stderr.String())

	got, err := os.ReadFile(filepath.Join(root, "LibreOJ_101", "all.bundle"))
	require.NoError(t, err)
	assert.Equal(t, "3 2 0 2 4\n0 1 4\n1 2 6\n2 1 0 1 7\n0 1 7", string(got))
}

func TestRun_BadUsage(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), []string{"-problem", "shortestpath"}, &stderr))
	assert.Equal(t, 2, run(context.Background(), []string{"-no-such-flag"}, &stderr))
	assert.Equal(t, 2, run(context.Background(), []string{"-solver", "simplex"}, &stderr))
	assert.Equal(t, 2, run(context.Background(), []string{"-format", "codeforces"}, &stderr))
	assert.Equal(t, 2, run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stderr))
}

func TestRun_ConfigFile(t *testing.T) {
	root := layout(t, map[string]map[string]string{
		"maxflow-aoj": {"a.in.in": "2 1\n0 1 5\n", "a.in.out": "5\n"},
		"maxflow-loj": {},
	})
	cfgPath := filepath.Join(root, "flowconv.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"problem: maxflow\n"+
			"dirs:\n"+
			"  aoj_grl_6_a: maxflow-aoj\n"+
			"  libre_oj_101: maxflow-loj\n"+
			"logging:\n"+
			"  console: false\n"), 0o644))
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"-config", cfgPath, "-root", root}, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.FileExists(t, filepath.Join(root, "maxflow-aoj", "a.txt"))
	assert.Contains(t, stderr.String(), `"service":"flowconv"`)
}
