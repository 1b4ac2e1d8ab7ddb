package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drover/internal/domain"
	"drover/internal/ports"
)

// fakeMux records multiplexer calls for assertions
type fakeMux struct {
	existing map[string]bool

	availableErr  error
	newSessionErr error

	liveSessions []ports.MuxSession
	liveWindows  map[string][]ports.MuxWindow

	killed      []string
	created     []string
	newWindows  []ports.MuxWindow
	renames     []ports.MuxWindow
	sent        map[string][]string
	sendTargets []string
}

var _ ports.Multiplexer = (*fakeMux)(nil)

func newFakeMux() *fakeMux {
	return &fakeMux{
		existing: make(map[string]bool),
		sent:     make(map[string][]string),
	}
}

func (f *fakeMux) Available() error            { return f.availableErr }
func (f *fakeMux) SessionExists(n string) bool { return f.existing[n] }

func (f *fakeMux) NewSession(name, windowName, dir string) error {
	if f.newSessionErr != nil {
		return f.newSessionErr
	}
	if f.existing[name] {
		return fmt.Errorf("%w: %s", domain.ErrSessionExists, name)
	}
	f.existing[name] = true
	f.created = append(f.created, name)
	return nil
}

func (f *fakeMux) KillSession(name string) error {
	delete(f.existing, name)
	f.killed = append(f.killed, name)
	return nil
}

func (f *fakeMux) ListSessions() ([]ports.MuxSession, error) { return f.liveSessions, nil }

func (f *fakeMux) NewWindow(session string, index int, name string) error {
	f.newWindows = append(f.newWindows, ports.MuxWindow{Index: index, Name: name})
	return nil
}

func (f *fakeMux) RenameWindow(session string, index int, name string) error {
	f.renames = append(f.renames, ports.MuxWindow{Index: index, Name: name})
	return nil
}

func (f *fakeMux) ListWindows(session string) ([]ports.MuxWindow, error) {
	return f.liveWindows[session], nil
}

func (f *fakeMux) SendKeys(target string, keys ...string) error {
	f.sent[target] = append(f.sent[target], keys...)
	f.sendTargets = append(f.sendTargets, target)
	return nil
}

func (f *fakeMux) CapturePane(target string, startLine int) (string, error) { return "", nil }
func (f *fakeMux) AttachCommand(session string) *exec.Cmd                   { return exec.Command("true") }

// fakeRecorder records launches, optionally failing
type fakeRecorder struct {
	err      error
	launches []domain.Launch
}

func (f *fakeRecorder) Record(ctx context.Context, launch domain.Launch) error {
	if f.err != nil {
		return f.err
	}
	f.launches = append(f.launches, launch)
	return nil
}

func newTestLauncher(mux ports.Multiplexer, recorder ports.LaunchRecorder) (*Launcher, *bytes.Buffer) {
	out := &bytes.Buffer{}
	launcher := NewLauncher(mux, recorder, LauncherOptions{
		Out: out,
		Now: func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) },
	})
	return launcher, out
}

func TestLaunch_NoJobs(t *testing.T) {
	launcher, _ := newTestLauncher(newFakeMux(), nil)

	_, err := launcher.Launch(context.Background(), nil, domain.ModeSequential, "S")
	require.ErrorIs(t, err, domain.ErrNoJobs)
}

func TestLaunch_MultiplexerUnavailable(t *testing.T) {
	mux := newFakeMux()
	mux.availableErr = domain.ErrMultiplexerUnavailable
	launcher, _ := newTestLauncher(mux, nil)

	_, err := launcher.Launch(context.Background(), domain.NewJobs([]string{"a.py"}), domain.ModeSequential, "S")
	require.ErrorIs(t, err, domain.ErrMultiplexerUnavailable)
	assert.Empty(t, mux.created, "no session should be created")
}

func TestLaunchSequential_SingleWindowChain(t *testing.T) {
	mux := newFakeMux()
	launcher, out := newTestLauncher(mux, nil)
	jobs := domain.NewJobs([]string{"a.py", "b.py"})

	result, err := launcher.Launch(context.Background(), jobs, domain.ModeSequential, "S")
	require.NoError(t, err)

	// Exactly one session, sole window, single injection
	assert.Equal(t, []string{"S"}, mux.created)
	assert.Empty(t, mux.newWindows, "sequential mode must not create extra windows")
	require.Equal(t, []string{"S"}, mux.sendTargets)

	keys := mux.sent["S"]
	require.Len(t, keys, 2)
	assert.Equal(t, "Enter", keys[1])

	chain := keys[0]
	aPos := strings.Index(chain, `"a.py"`)
	bPos := strings.Index(chain, `"b.py"`)
	require.GreaterOrEqual(t, aPos, 0, "chain must invoke a.py")
	require.GreaterOrEqual(t, bPos, 0, "chain must invoke b.py")
	assert.Less(t, aPos, bPos, "jobs must run in declaration order")

	assert.Contains(t, chain, "starting a")
	assert.Contains(t, chain, "finished a")
	assert.Contains(t, chain, "starting b")
	assert.Contains(t, chain, "finished b")

	donePos := strings.Index(chain, "all 2 job(s) completed")
	require.GreaterOrEqual(t, donePos, 0, "chain must end with a completion banner")
	assert.Greater(t, donePos, bPos, "completion banner comes after the last job")
	assert.Contains(t, chain[donePos:], "exec bash", "window must fall back to an interactive shell")

	// Exit statuses are never inspected: jobs are chained with ';', not '&&'
	assert.NotContains(t, chain, "&&")

	assert.Contains(t, out.String(), "2 job(s)")
	assert.Contains(t, out.String(), "tmux attach -t S")
	assert.Equal(t, "tmux attach -t S", result.AttachHint)
}

func TestLaunchSequential_ReclaimsExistingSession(t *testing.T) {
	mux := newFakeMux()
	mux.existing["S"] = true
	launcher, _ := newTestLauncher(mux, nil)

	_, err := launcher.Launch(context.Background(), domain.NewJobs([]string{"a.py"}), domain.ModeSequential, "S")
	require.NoError(t, err)

	assert.Equal(t, []string{"S"}, mux.killed, "pre-existing session must be killed first")
	assert.Equal(t, []string{"S"}, mux.created)
}

func TestLaunchSequential_NoKillWhenAbsent(t *testing.T) {
	mux := newFakeMux()
	launcher, _ := newTestLauncher(mux, nil)

	_, err := launcher.Launch(context.Background(), domain.NewJobs([]string{"a.py"}), domain.ModeSequential, "S")
	require.NoError(t, err)
	assert.Empty(t, mux.killed)
}

func TestLaunchSequential_Idempotent(t *testing.T) {
	mux := newFakeMux()
	launcher, _ := newTestLauncher(mux, nil)
	jobs := domain.NewJobs([]string{"a.py"})

	_, err := launcher.Launch(context.Background(), jobs, domain.ModeSequential, "S")
	require.NoError(t, err)
	_, err = launcher.Launch(context.Background(), jobs, domain.ModeSequential, "S")
	require.NoError(t, err)

	// Second invocation reclaims: at most one live session afterwards
	assert.Equal(t, []string{"S"}, mux.killed)
	assert.True(t, mux.existing["S"])
}

func TestLaunchConcurrent_WindowPerJob(t *testing.T) {
	mux := newFakeMux()
	launcher, out := newTestLauncher(mux, nil)
	jobs := domain.NewJobs([]string{"a.py", "b.py", "c.py"})

	_, err := launcher.Launch(context.Background(), jobs, domain.ModeConcurrent, "S")
	require.NoError(t, err)

	assert.Equal(t, []string{"S"}, mux.created)

	// Initial window renamed to job 0, one new window per remaining job
	require.Equal(t, []ports.MuxWindow{{Index: 0, Name: "a"}}, mux.renames)
	require.Equal(t, []ports.MuxWindow{
		{Index: 1, Name: "b"},
		{Index: 2, Name: "c"},
	}, mux.newWindows)

	// Each window runs exactly its own job
	assert.Equal(t, []string{"S:0", "S:1", "S:2"}, mux.sendTargets)
	assert.Contains(t, mux.sent["S:0"][0], `"a.py"`)
	assert.Contains(t, mux.sent["S:1"][0], `"b.py"`)
	assert.Contains(t, mux.sent["S:2"][0], `"c.py"`)
	assert.NotContains(t, mux.sent["S:1"][0], `"a.py"`)

	// One-shot commands: no banners, no fallback shell
	assert.NotContains(t, mux.sent["S:0"][0], "starting")
	assert.NotContains(t, mux.sent["S:0"][0], "exec ")

	assert.Contains(t, out.String(), "3 job(s)")
}

func TestLaunchConcurrent_SessionExistsFails(t *testing.T) {
	mux := newFakeMux()
	mux.existing["S"] = true
	launcher, _ := newTestLauncher(mux, nil)

	_, err := launcher.Launch(context.Background(), domain.NewJobs([]string{"a.py"}), domain.ModeConcurrent, "S")
	require.ErrorIs(t, err, domain.ErrSessionExists)

	// The colliding session and its jobs are untouched
	assert.Empty(t, mux.killed)
	assert.Empty(t, mux.renames)
	assert.Empty(t, mux.newWindows)
	assert.True(t, mux.existing["S"])
}

func TestLaunch_RecorderFailureDoesNotFailLaunch(t *testing.T) {
	mux := newFakeMux()
	recorder := &fakeRecorder{err: errors.New("disk full")}
	launcher, _ := newTestLauncher(mux, recorder)

	result, err := launcher.Launch(context.Background(), domain.NewJobs([]string{"a.py"}), domain.ModeSequential, "S")
	require.NoError(t, err, "history is best-effort")
	require.NotNil(t, result)
}

func TestLaunch_RecordsHistory(t *testing.T) {
	mux := newFakeMux()
	recorder := &fakeRecorder{}
	launcher, _ := newTestLauncher(mux, recorder)
	jobs := domain.NewJobs([]string{"a.py", "b.py"})

	result, err := launcher.Launch(context.Background(), jobs, domain.ModeConcurrent, "S")
	require.NoError(t, err)

	require.Len(t, recorder.launches, 1)
	recorded := recorder.launches[0]
	assert.Equal(t, result.Launch.ID, recorded.ID)
	assert.NotEmpty(t, recorded.ID)
	assert.Equal(t, "S", recorded.SessionName)
	assert.Equal(t, domain.ModeConcurrent, recorded.Mode)
	assert.Equal(t, jobs, recorded.Jobs)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), recorded.LaunchedAt)
}

func TestJobCommand(t *testing.T) {
	launcher, _ := newTestLauncher(newFakeMux(), nil)

	tests := []struct {
		name     string
		job      domain.Job
		expected string
	}{
		{
			"python job gets default interpreter",
			domain.NewJob("/jobs/a.py"),
			`python3 "/jobs/a.py"`,
		},
		{
			"job interpreter override wins",
			domain.Job{Path: "/jobs/a.py", DisplayName: "a", Interpreter: "python3.11"},
			`python3.11 "/jobs/a.py"`,
		},
		{
			"non-python job runs directly",
			domain.NewJob("/usr/local/bin/watermark"),
			`"/usr/local/bin/watermark"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, launcher.JobCommand(tt.job))
		})
	}
}

func TestBuildChain_SeparatorBetweenJobs(t *testing.T) {
	launcher, _ := newTestLauncher(newFakeMux(), nil)
	chain := launcher.BuildChain(domain.NewJobs([]string{"a.py", "b.py"}))

	assert.Equal(t, 2, strings.Count(chain, separatorLine))
}
