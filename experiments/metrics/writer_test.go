package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)

	t.Run("agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 1, Goroutines: 1, Depth: 1, Evaluation: "mobility"},
			{ID: 2, Random: true, Seed: 42},
		}
		require.NoError(t, w.WriteAgentConfigs(configs))

		records := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, records, 3)
		require.Equal(t, []string{"1", "1", "1", "mobility", "false", "0"}, records[1])
		require.Equal(t, []string{"2", "0", "0", "", "true", "42"}, records[2])
	})

	t.Run("game and move records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		games := []GameRecord{{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{
			StartingPlayer: "white",
			Winner:         "black",
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     40,
		}}}
		moves := []MoveRecord{{Game: 1, MoveMetric: MoveMetric{
			Step:   1,
			Player: "white",
			Move:   "d1-d7(g7)",
			SearchMetric: SearchMetric{
				Goroutines: 1, Depth: 1, Duration: time.Millisecond, Nodes: 1, Leaves: 2176, Value: 12,
			},
		}}}

		require.NoError(t, w.WriteGameRecords(games))
		require.NoError(t, w.WriteMoveRecords(moves))

		gameRows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Equal(t, []string{"1", "1", "2", "white", "black", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "40"}, gameRows[1])
		moveRows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"1", "1", "white", "d1-d7(g7)", "1", "1", "1ms", "1", "2176", "0", "12"}, moveRows[1])
	})

	t.Run("setup", func(t *testing.T) {
		setup := Setup{Name: "depth", NumGames: 3, Matchups: [][]AgentConfig{{{ID: 1}, {ID: 2}}}}
		require.NoError(t, w.WriteSetup(setup))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
		require.NoError(t, err)
		var got Setup
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, 3, got.NumGames)
		require.Len(t, got.Matchups[0], 2)
	})
}
