package integration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/pitmaster/test/integration/harness"
)

const (
	predictionJSON = `{"confidence": "high", "current_state": "stall",
		"p10_minutes": 210, "p50_minutes": 240, "p90_minutes": 270,
		"readings_count": 12, "stall_probability": 0.8}`
	stateJSON = `{"confidence": "high", "current_state": "stall", "elapsed_minutes": 300,
		"readings_count": 12, "stall_active": true, "stall_duration_minutes": 40, "wrap_type": "none"}`
	reportJSON = `{"session_id": "brisket-1", "total_cook_minutes": 610, "final_temp_f": 203,
		"readings_count": 40, "lid_opens_count": 2, "stall_occurred": true,
		"stall_duration_minutes": 95, "was_wrapped": true, "wrap_type": "butcher_paper",
		"prediction_accuracy_minutes": -12, "quality_notes": "great bark",
		"residuals": [1, -2, 3], "actual_temps": [], "predicted_temps": []}`
)

func TestHistoryEmpty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "history")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No cooks recorded yet.")

	result = harness.RunCommand(t, env, "history", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONArrayLen(t, result, 0)
}

func TestReport(t *testing.T) {
	api := harness.NewFakeAPI(t)
	api.AddReport("brisket-1", reportJSON)

	t.Run("fetched from the service", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.UseAPI(api)

		result := harness.RunCommand(t, env, "report", "brisket-1")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Cook brisket-1")
		harness.AssertStdoutContains(t, result, "10h 10m")
		harness.AssertStdoutContains(t, result, "great bark")
	})

	t.Run("json", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.UseAPI(api)

		result := harness.RunCommand(t, env, "report", "brisket-1", "--format", "json")

		harness.AssertSuccess(t, result)
		var report map[string]any
		harness.AssertValidJSON(t, result, &report)
		assert.NotEmpty(t, report)
	})

	t.Run("unknown cook", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.UseAPI(api)

		result := harness.RunCommand(t, env, "report", "nope")

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "API error 404")
	})
}

func TestReplayUnknownCook(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "replay", "nope")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "failed to replay cook")
}

func TestWatchUnknownCook(t *testing.T) {
	api := harness.NewFakeAPI(t)
	env := harness.NewTestEnvironment(t)
	env.UseAPI(api)

	result := harness.RunCommand(t, env, "watch", "nope")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "attach session")
}

func TestWatchFollowsCookAndJournalsIt(t *testing.T) {
	api := harness.NewFakeAPI(t)
	api.AddSession("brisket-1", predictionJSON, stateJSON)
	env := harness.NewTestEnvironment(t)
	env.UseAPI(api)
	env.SetEnv("PITMASTER_POLL_INTERVAL_SECONDS", "1")

	// watch runs until interrupted, so the timeout ends it
	result := harness.RunCommandWithTimeout(t, env, 3*time.Second, "watch", "brisket-1")
	harness.AssertStdoutContains(t, result, "Watching cook brisket-1")
	harness.AssertStdoutContains(t, result, "ready in 4h 0m (3h 30m to 4h 30m), confidence High, phase Stall")
	harness.AssertStdoutContains(t, result, "consider wrapping")

	history := harness.RunCommand(t, env, "history", "--format", "json")
	harness.AssertSuccess(t, history)
	harness.AssertJSONArrayLen(t, history, 1)
}
