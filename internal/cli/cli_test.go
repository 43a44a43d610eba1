package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pottingshed/gardenlog/internal/paths"
	"github.com/pottingshed/gardenlog/pkg/types"
)

// gardenDirs pins the config and data directories to temp dirs for the
// duration of the test, so every command invocation inside it shares one
// database, like successive runs of the real binary.
func gardenDirs(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv(paths.EnvDataDir, t.TempDir())
}

// run executes one full command invocation against a fresh root command and
// returns its stdout.
func run(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runE(args...)
	require.NoError(t, err, "command %v\noutput: %s", args, out)
	return out
}

func runE(args ...string) (string, error) {
	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out := run(t, "version")
	assert.Contains(t, out, "gardenlog v"+Version)
}

func TestInitCmd(t *testing.T) {
	gardenDirs(t)
	out := run(t, "init")
	assert.Contains(t, out, "initialized successfully")
}

func TestAreaLifecycle(t *testing.T) {
	gardenDirs(t)

	out := run(t, "area", "add", "--name", "Planter Box 1", "--emoji", "🪴", "--json")
	var area types.Area
	require.NoError(t, json.Unmarshal([]byte(out), &area))
	require.NotEmpty(t, area.AreaID)
	assert.Equal(t, "Planter Box 1", area.Name)
	assert.Equal(t, "🪴", area.Emoji)

	// A later invocation sees the area: it survived the first process.
	out = run(t, "area", "list")
	assert.Contains(t, out, "Planter Box 1")
	assert.Contains(t, out, "Total plants: 0")

	run(t, "area", "rename", "--id", area.AreaID, "--name", "Balcony Box")
	out = run(t, "area", "list")
	assert.Contains(t, out, "Balcony Box")
	assert.NotContains(t, out, "Planter Box 1")
	assert.Contains(t, out, "🪴") // emoji kept when omitted

	run(t, "area", "delete", "--id", area.AreaID)
	out = run(t, "area", "list")
	assert.Contains(t, out, "No areas yet")
}

func TestAreaAdd_WithSeed(t *testing.T) {
	gardenDirs(t)

	out := run(t, "area", "add", "--name", "Raised Bed", "--seed", "lettuce", "--json")
	var area types.Area
	require.NoError(t, json.Unmarshal([]byte(out), &area))
	require.Len(t, area.Plants, 1)
	assert.Equal(t, "Lettuce", area.Plants[0].SeedTitle)

	_, err := runE("area", "add", "--name", "Bed", "--seed", "no-such-seed")
	require.Error(t, err)
}

func TestPlantLifecycle(t *testing.T) {
	gardenDirs(t)

	out := run(t, "area", "add", "--name", "Bed", "--json")
	var area types.Area
	require.NoError(t, json.Unmarshal([]byte(out), &area))

	out = run(t, "plant", "add", "--area", area.AreaID, "--seed", "tomato", "--json")
	var plant types.Plant
	require.NoError(t, json.Unmarshal([]byte(out), &plant))
	require.NotEmpty(t, plant.PlantID)
	assert.Equal(t, "Tomato", plant.SeedTitle)

	out = run(t, "plant", "advance", "--area", area.AreaID, "--plant", plant.PlantID)
	assert.Contains(t, out, "planted")

	out = run(t, "plant", "advance", "--area", area.AreaID, "--plant", plant.PlantID)
	assert.Contains(t, out, "sprouted")

	out = run(t, "plant", "rollback", "--area", area.AreaID, "--plant", plant.PlantID)
	assert.Contains(t, out, "planted")

	out = run(t, "plant", "rollback", "--area", area.AreaID, "--plant", plant.PlantID)
	assert.Contains(t, out, "not started")

	// Rolling back below not-started is reported, not an error.
	out = run(t, "plant", "rollback", "--area", area.AreaID, "--plant", plant.PlantID)
	assert.Contains(t, out, "nothing to roll back")

	run(t, "plant", "remove", "--area", area.AreaID, "--plant", plant.PlantID)
	out = run(t, "area", "list")
	assert.Contains(t, out, "Total plants: 0")
}

func TestPlantAdd_Freehand(t *testing.T) {
	gardenDirs(t)

	out := run(t, "area", "add", "--name", "Bed", "--json")
	var area types.Area
	require.NoError(t, json.Unmarshal([]byte(out), &area))

	out = run(t, "plant", "add", "--area", area.AreaID, "--name", "Mystery squash", "--json")
	var plant types.Plant
	require.NoError(t, json.Unmarshal([]byte(out), &plant))
	assert.Equal(t, "Mystery squash", plant.SeedTitle)
	assert.Equal(t, "Other", plant.SeedCategory)
	assert.Nil(t, plant.SeedID)

	_, err := runE("plant", "add", "--area", area.AreaID)
	require.Error(t, err)
}

func TestNoteLifecycle(t *testing.T) {
	gardenDirs(t)

	out := run(t, "area", "add", "--name", "Bed", "--seed", "basil", "--json")
	var area types.Area
	require.NoError(t, json.Unmarshal([]byte(out), &area))
	plantID := area.Plants[0].PlantID

	out = run(t, "note", "add", "--area", area.AreaID, "--plant", plantID, "--text", "pinched the flower buds")
	entryID := strings.TrimSpace(strings.TrimPrefix(out, "Added note "))
	require.NotEmpty(t, entryID)

	out = run(t, "note", "list", "--area", area.AreaID, "--plant", plantID)
	assert.Contains(t, out, "pinched the flower buds")
	assert.Contains(t, out, types.EntryTypeNote)

	run(t, "note", "remove", "--area", area.AreaID, "--plant", plantID, "--entry", entryID)
	out = run(t, "note", "list", "--area", area.AreaID, "--plant", plantID)
	assert.NotContains(t, out, "pinched the flower buds")
}

func TestCatalogCmds(t *testing.T) {
	gardenDirs(t)

	out := run(t, "catalog", "list")
	assert.Contains(t, out, "Tomato")
	assert.Contains(t, out, "Lettuce")

	out = run(t, "catalog", "list", "--query", "salad")
	assert.Contains(t, out, "Lettuce")
	assert.NotContains(t, out, "Tomato")

	out = run(t, "catalog", "list", "--category", "Herb")
	assert.Contains(t, out, "Basil")
	assert.NotContains(t, out, "Tomato")

	run(t, "catalog", "add", "--title", "Heirloom Bean", "--category", "Vegetable")
	out = run(t, "catalog", "list", "--query", "heirloom")
	assert.Contains(t, out, "Heirloom Bean")
}

func TestSettingsCmds(t *testing.T) {
	gardenDirs(t)

	out := run(t, "settings", "show")
	assert.Contains(t, out, "09:00")

	run(t, "settings", "set", "--reminders", "--hour", "18", "--minute", "30")
	out = run(t, "settings", "show")
	assert.Contains(t, out, "18:30")

	// Partial update leaves the rest alone.
	run(t, "settings", "set", "--minute", "45")
	out = run(t, "settings", "show")
	assert.Contains(t, out, "18:45")
}

func TestKVCmds(t *testing.T) {
	gardenDirs(t)

	run(t, "kv", "set", "lastFrostAlert", "Mar 3, 2026")
	out := run(t, "kv", "get", "lastFrostAlert")
	assert.Contains(t, out, "Mar 3, 2026")

	run(t, "kv", "del", "lastFrostAlert")
	_, err := runE("kv", "get", "lastFrostAlert")
	require.Error(t, err)
}

func TestResolveDataDir_ConfigFileValue(t *testing.T) {
	gardenDirs(t)

	configDir := t.TempDir()
	flags := &rootFlags{configDir: configDir}

	// First resolve writes the default config.yaml.
	dir, err := resolveDataDir(flags)
	require.NoError(t, err)
	assert.NotEmpty(t, dir)

	// Flag beats the config file and the env var.
	flags.dataDir = "/somewhere/else"
	dir, err = resolveDataDir(flags)
	require.NoError(t, err)
	assert.Equal(t, "/somewhere/else", dir)
}
