package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/api"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/factory"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath  string
	serverURL   string
	sessionFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "anchorctl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/anchorctl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp session file path
	sessionFile := filepath.Join(t.TempDir(), "session.json")

	return &cliRunner{
		binaryPath:  binaryPath,
		serverURL:   serverURL,
		sessionFile: sessionFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--session-file", r.sessionFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

var testProfiles = []model.Profile{
	{ID: "p1", Nickname: "soeholt", Country: "dk"},
	{ID: "p2", Nickname: "preak-", Country: "dk"},
	{ID: "p3", Nickname: "nachtm0nkeyy", Country: "dk"},
	{ID: "p4", Nickname: "rinor_D", Country: "se"},
	{ID: "p5", Nickname: "tingzg0d", Country: "dk"},
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app := factory.NewTestApp(testProfiles, logger)

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		RosterService: app.RosterService,
		LedgerService: app.LedgerService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type playerRowResponse struct {
	PlayerID    string `json:"playerId"`
	Nickname    string `json:"nickname"`
	AnchorCount int    `json:"anchorCount"`
}

type countRowResponse struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

type sessionViewResponse struct {
	State struct {
		Mode         string   `json:"mode"`
		Selected     []string `json:"selected"`
		ActiveRoster []string `json:"active_roster"`
	} `json:"state"`
}

type anchorsViewResponse struct {
	Anchors []playerRowResponse `json:"anchors"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayersAndCounts(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// List players
	output, err := cli.run("players")
	require.NoError(t, err, "output: %s", output)

	var rows []playerRowResponse
	require.NoError(t, json.Unmarshal([]byte(output), &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, "soeholt", rows[0].Nickname)
	assert.Equal(t, 0, rows[0].AnchorCount)

	// Bump twice
	output, err = cli.run("count", "bump", "p1")
	require.NoError(t, err, "output: %s", output)
	output, err = cli.run("count", "bump", "p1")
	require.NoError(t, err, "output: %s", output)

	var count countRowResponse
	require.NoError(t, json.Unmarshal([]byte(output), &count))
	assert.Equal(t, 2, count.Count)

	// Drop back down and past zero
	output, err = cli.run("count", "drop", "p1")
	require.NoError(t, err, "output: %s", output)
	output, err = cli.run("count", "drop", "p1")
	require.NoError(t, err, "output: %s", output)
	output, err = cli.run("count", "drop", "p1")
	require.NoError(t, err, "output: %s", output)

	require.NoError(t, json.Unmarshal([]byte(output), &count))
	assert.Equal(t, 0, count.Count)

	// Adjust with an explicit amount
	output, err = cli.run("count", "adjust", "p2", "--amount", "7")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &count))
	assert.Equal(t, 7, count.Count)
}

func TestCLI_SessionFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Toggling three players is not enough to start
	for _, name := range []string{"soeholt", "preak-", "nachtm0nkeyy"} {
		output, err := cli.run("session", "toggle", name)
		require.NoError(t, err, "output: %s", output)
	}

	output, err := cli.run("session", "start")
	require.Error(t, err, "output: %s", output)

	// A fourth player satisfies the guard
	output, err = cli.run("session", "toggle", "rinor_D")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("session", "start")
	require.NoError(t, err, "output: %s", output)

	var view sessionViewResponse
	require.NoError(t, json.Unmarshal([]byte(output), &view))
	assert.Equal(t, "active", view.State.Mode)
	assert.Len(t, view.State.ActiveRoster, 4)

	// Selection is locked while active
	output, err = cli.run("session", "toggle", "tingzg0d")
	require.Error(t, err, "output: %s", output)

	// Record scored events
	output, err = cli.run("session", "event", "soeholt", "t_side_start")
	require.NoError(t, err, "output: %s", output)

	var count countRowResponse
	require.NoError(t, json.Unmarshal([]byte(output), &count))
	assert.Equal(t, 3, count.Count)

	output, err = cli.run("session", "event", "soeholt", "match_completed")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &count))
	assert.Equal(t, 2, count.Count)

	// Players outside the active roster are rejected
	output, err = cli.run("session", "event", "tingzg0d", "ct_side_start")
	require.Error(t, err, "output: %s", output)

	// Anchors: the three untouched roster members share the minimum
	output, err = cli.run("session", "anchors")
	require.NoError(t, err, "output: %s", output)

	var anchors anchorsViewResponse
	require.NoError(t, json.Unmarshal([]byte(output), &anchors))
	require.Len(t, anchors.Anchors, 3)

	// Reset and confirm counts survive
	output, err = cli.run("session", "new")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("players")
	require.NoError(t, err, "output: %s", output)

	var rows []playerRowResponse
	require.NoError(t, json.Unmarshal([]byte(output), &rows))
	assert.Equal(t, 2, rows[0].AnchorCount)
}
