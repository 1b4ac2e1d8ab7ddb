package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadManifest_BareArrayOfStrings(t *testing.T) {
	path := writeManifest(t, `["a.py", "b.py"]`)

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	jobs, err := manifest.ToJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "a.py", jobs[0].Path)
	assert.Equal(t, "a", jobs[0].DisplayName)
	assert.Equal(t, "b.py", jobs[1].Path)
}

func TestLoadManifest_ObjectEntries(t *testing.T) {
	path := writeManifest(t, `{
		"jobs": [
			{"path": "/opt/scrapers/kbizoom_scraper.py"},
			{"path": "/opt/scrapers/soomi_scraper.py", "name": "soomi daily", "interpreter": "python3.11"}
		]
	}`)

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	jobs, err := manifest.ToJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "kbizoom_scraper", jobs[0].DisplayName)
	assert.Empty(t, jobs[0].Interpreter)

	assert.Equal(t, "soomi_daily", jobs[1].DisplayName, "explicit names are sanitized")
	assert.Equal(t, "python3.11", jobs[1].Interpreter)
}

func TestLoadManifest_MixedEntries(t *testing.T) {
	path := writeManifest(t, `["a.py", {"path": "b.py", "name": "bee"}]`)

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	jobs, err := manifest.ToJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "a", jobs[0].DisplayName)
	assert.Equal(t, "bee", jobs[1].DisplayName)
}

func TestLoadManifest_PreservesOrder(t *testing.T) {
	path := writeManifest(t, `["kheralds_scraper.py", "knews_scraper.py", "kareboo_scraper.py"]`)

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	jobs, err := manifest.ToJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "kheralds_scraper", jobs[0].DisplayName)
	assert.Equal(t, "knews_scraper", jobs[1].DisplayName)
	assert.Equal(t, "kareboo_scraper", jobs[2].DisplayName)
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadManifest_InvalidJSON(t *testing.T) {
	path := writeManifest(t, `{"jobs": [`)
	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid manifest")
}

func TestToJobs_EntryWithoutPath(t *testing.T) {
	path := writeManifest(t, `[{"name": "orphan"}]`)

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	_, err = manifest.ToJobs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no path")
}
