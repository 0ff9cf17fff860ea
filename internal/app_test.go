package internal

import (
	"bytes"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"os"
	"scoreboard/internal/console"
	"scoreboard/internal/controllers"
	"scoreboard/internal/models"
	"scoreboard/internal/scheduler"
	"scoreboard/internal/services"
	"scoreboard/internal/structures"
	"scoreboard/internal/testutil"
	"strings"
	"syscall"
	"testing"
	"time"
)

const legacyPayload = `{"player2":{"dailyScores":{"2024-02-01":{"wordle":3,"connections":2,"strands":1,
	"bonusPoints":{"wordleQuick":false,"connectionsPerfect":false,"strandsSpanagram":true}}}}}`

func newLegacyTestApp(t *testing.T, backend *testutil.FakeBackend, input string) (*App, *bytes.Buffer, *testutil.MockLogger, *testutil.MockMetrics) {
	t.Helper()
	conf := &structures.Config{
		AppName: "ScoreboardTest",
		Legacy:  structures.LegacyConfig{BaseUrl: backend.URL + "/api"},
		Players: []string(models.DefaultRoster),
	}
	var out bytes.Buffer
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	prompt := console.NewPrompter(strings.NewReader(input), &out)

	service := services.NewLegacyScoreService(conf, &http.Client{Timeout: 5 * time.Second}, testutil.NewMockCache(), logger)
	controller := controllers.NewLegacyController(logger, service, metrics, prompt)
	return NewApp(conf, logger, InitLegacyMenu(controller), prompt, scheduler.NewScheduler(conf, logger, metrics)), &out, logger, metrics
}

func TestApp_RunViewAndExit(t *testing.T) {
	backend := testutil.NewLegacyBackend()
	defer backend.Close()
	backend.Respond(http.MethodGet, "/api/scores", http.StatusOK, legacyPayload)

	app, out, _, _ := newLegacyTestApp(t, backend, "1\n2024-02\n4\n")

	require.NoError(t, app.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "What would you like to do?\n1. View month scores\n2. Update a score\n3. Archive a month\n4. Exit\n")
	assert.Contains(t, output, "Enter your choice (1-4): ")
	assert.Contains(t, output, "Mike's February 2024 scores:\n2024-02-01: 7 points\n  Bonus points: Strands\n")
	assert.Equal(t, 2, strings.Count(output, "What would you like to do?"))
}

func TestApp_RunResumesAfterHttpError(t *testing.T) {
	backend := testutil.NewLegacyBackend()
	defer backend.Close()
	backend.Respond(http.MethodGet, "/api/scores", http.StatusInternalServerError, `{"error":"Failed to fetch scores"}`)

	app, out, logger, metrics := newLegacyTestApp(t, backend, "1\n2024-02\n1\n2024-01\n4\n")

	require.NoError(t, app.Run(context.Background()))

	assert.Len(t, backend.Recorded(), 2)
	assert.Equal(t, 3, strings.Count(out.String(), "What would you like to do?"))
	assert.True(t, logger.Contains("error", `Response: {"error":"Failed to fetch scores"}`))
	assert.Equal(t, 2, metrics.OperationErrors["fetch"])
}

func TestApp_RunInvalidChoice(t *testing.T) {
	backend := testutil.NewLegacyBackend()
	defer backend.Close()

	app, out, _, _ := newLegacyTestApp(t, backend, "7\nabc\n4\n")

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice. Please try again."))
	assert.Empty(t, backend.Recorded())
}

func TestApp_RunStopsAtEndOfInput(t *testing.T) {
	backend := testutil.NewLegacyBackend()
	defer backend.Close()

	app, out, _, _ := newLegacyTestApp(t, backend, "")

	assert.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, strings.Count(out.String(), "What would you like to do?"))
}

func TestApp_RunCancelledContext(t *testing.T) {
	backend := testutil.NewLegacyBackend()
	defer backend.Close()

	app, out, _, _ := newLegacyTestApp(t, backend, "1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, app.Run(ctx))
	assert.Empty(t, out.String())
}

func TestApp_StartFlushesAndCloses(t *testing.T) {
	backend := testutil.NewLegacyBackend()
	defer backend.Close()

	app, _, logger, metrics := newLegacyTestApp(t, backend, "4\n")

	require.NoError(t, app.Start())

	assert.Equal(t, 1, metrics.Flushes)
	assert.True(t, logger.Contains("info", "Starting ScoreboardTest"))
	assert.True(t, logger.Contains("info", "ScoreboardTest stopped"))
}

func TestApp_ServeWaitsForRunningOperation(t *testing.T) {
	backend := testutil.NewLegacyBackend()
	defer backend.Close()

	conf := &structures.Config{
		AppName: "ScoreboardTest",
		Legacy:  structures.LegacyConfig{BaseUrl: backend.URL + "/api"},
		Players: []string(models.DefaultRoster),
	}
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	in, input := io.Pipe()
	defer input.Close()
	prompt := console.NewPrompter(in, io.Discard)
	service := services.NewLegacyScoreService(conf, &http.Client{Timeout: 5 * time.Second}, testutil.NewMockCache(), logger)
	controller := controllers.NewLegacyController(logger, service, metrics, prompt)
	app := NewApp(conf, logger, InitLegacyMenu(controller), prompt, scheduler.NewScheduler(conf, logger, metrics))

	stop := make(chan os.Signal, 1)
	result := make(chan error, 1)
	go func() {
		result <- app.serve(stop)
	}()

	// The view operation is now waiting for a month.
	_, err := io.WriteString(input, "1\n")
	require.NoError(t, err)

	stop <- syscall.SIGINT
	require.Eventually(t, func() bool {
		return logger.Contains("info", "Shutdown signal received")
	}, time.Second, 10*time.Millisecond)
	assert.False(t, logger.Contains("info", "ScoreboardTest stopped"))

	_, err = io.WriteString(input, "2024-02\n")
	require.NoError(t, err)

	select {
	case err = <-result:
		require.NoError(t, err)
	case <-time.After(shutdownGrace):
		t.Fatal("serve did not return")
	}
	assert.Equal(t, 1, metrics.OperationErrors["fetch"])
	assert.Empty(t, backend.Recorded())
	assert.True(t, logger.Contains("info", "ScoreboardTest stopped"))
	assert.False(t, logger.Contains("warn", "still running"))
}

func TestApp_CloseReportsFlushError(t *testing.T) {
	backend := testutil.NewLegacyBackend()
	defer backend.Close()

	app, _, logger, metrics := newLegacyTestApp(t, backend, "")
	metrics.FlushErr = errors.New("read-only filesystem")

	app.Close()

	assert.True(t, logger.Contains("error", "Unable to write metrics: read-only filesystem"))
}

func TestInitSupabaseMenu(t *testing.T) {
	var out bytes.Buffer
	prompt := console.NewPrompter(strings.NewReader(""), &out)
	controller := controllers.NewSupabaseController(&testutil.MockLogger{}, nil, testutil.NewMockMetrics(), prompt)

	menu := InitSupabaseMenu(controller)

	labels := make([]string, 0, 4)
	for _, item := range menu.GetItems() {
		labels = append(labels, item.Key+". "+item.Label)
	}
	assert.Equal(t, []string{"1. View month scores", "2. View an archived month", "3. Archive a month", "4. Exit"}, labels)
	exit, ok := menu.Find("4")
	require.True(t, ok)
	assert.True(t, exit.Exit)
}
