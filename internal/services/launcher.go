package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"drover/internal/domain"
	"drover/internal/logging"
	"drover/internal/ports"
)

const separatorLine = "----------------------------------------"

// LauncherOptions tune a Launcher.
type LauncherOptions struct {
	// Interpreter runs .py jobs that don't override it. Defaults to python3.
	Interpreter string
	// Shell is exec'd at the end of a sequential chain so the window stays
	// interactive. Defaults to bash.
	Shell string
	// Out receives the human-readable launch summary. Defaults to stdout.
	Out io.Writer
	// Now is overridable for tests.
	Now func() time.Time
}

// Launcher is the session runner: it turns an ordered job list into a
// detached multiplexer session and returns without waiting for the jobs.
type Launcher struct {
	mux      ports.Multiplexer
	recorder ports.LaunchRecorder
	opts     LauncherOptions
}

// LaunchResult describes a successful fire-and-forget launch.
type LaunchResult struct {
	Launch     domain.Launch
	AttachHint string
}

// NewLauncher creates a Launcher. recorder may be nil to disable history.
func NewLauncher(mux ports.Multiplexer, recorder ports.LaunchRecorder, opts LauncherOptions) *Launcher {
	if opts.Interpreter == "" {
		opts.Interpreter = "python3"
	}
	if opts.Shell == "" {
		opts.Shell = "bash"
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Launcher{mux: mux, recorder: recorder, opts: opts}
}

// Launch runs jobs in a detached session named sessionName according to mode.
// It returns as soon as all commands are injected; job completion is never
// awaited and job exit statuses are never inspected.
func (l *Launcher) Launch(ctx context.Context, jobs []domain.Job, mode domain.Mode, sessionName string) (*LaunchResult, error) {
	if len(jobs) == 0 {
		return nil, domain.ErrNoJobs
	}
	if err := l.mux.Available(); err != nil {
		return nil, err
	}

	var err error
	switch mode {
	case domain.ModeSequential:
		err = l.launchSequential(jobs, sessionName)
	case domain.ModeConcurrent:
		err = l.launchConcurrent(jobs, sessionName)
	default:
		return nil, fmt.Errorf("invalid mode %q", mode)
	}
	if err != nil {
		return nil, err
	}

	launch := domain.Launch{
		ID:          uuid.New().String(),
		SessionName: sessionName,
		Mode:        mode,
		Jobs:        jobs,
		LaunchedAt:  l.opts.Now().UTC(),
	}

	// History is best-effort; a broken database must never block a launch.
	if l.recorder != nil {
		if err := l.recorder.Record(ctx, launch); err != nil {
			logging.Logger.Warn("Failed to record launch", "error", err, "session", sessionName)
		}
	}

	hint := fmt.Sprintf("tmux attach -t %s", sessionName)
	fmt.Fprintf(l.opts.Out, "Attach with: %s (Ctrl+B D to detach)\n", hint)

	return &LaunchResult{Launch: launch, AttachHint: hint}, nil
}

// launchSequential reclaims the session name unconditionally, creates a
// single-window detached session and injects one command chain running every
// job in declaration order.
func (l *Launcher) launchSequential(jobs []domain.Job, sessionName string) error {
	if l.mux.SessionExists(sessionName) {
		logging.Logger.Info("Reclaiming existing session", "name", sessionName)
		if err := l.mux.KillSession(sessionName); err != nil {
			return fmt.Errorf("failed to reclaim session %s: %w", sessionName, err)
		}
	}

	if err := l.mux.NewSession(sessionName, "", ""); err != nil {
		return err
	}

	chain := l.BuildChain(jobs)
	if err := l.mux.SendKeys(sessionName, chain, "Enter"); err != nil {
		return err
	}

	fmt.Fprintf(l.opts.Out, "%s\n", l.opts.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(l.opts.Out, "Running %d job(s) sequentially in session %q\n", len(jobs), sessionName)
	return nil
}

// launchConcurrent creates a detached session and one window per job, all
// starting immediately. A pre-existing session with the same name is a setup
// error; the running session is left untouched.
func (l *Launcher) launchConcurrent(jobs []domain.Job, sessionName string) error {
	if err := l.mux.NewSession(sessionName, "", ""); err != nil {
		return err
	}

	if err := l.mux.RenameWindow(sessionName, 0, jobs[0].DisplayName); err != nil {
		return err
	}
	if err := l.mux.SendKeys(fmt.Sprintf("%s:0", sessionName), l.JobCommand(jobs[0]), "Enter"); err != nil {
		return err
	}

	for i, job := range jobs[1:] {
		index := i + 1
		if err := l.mux.NewWindow(sessionName, index, job.DisplayName); err != nil {
			return err
		}
		target := fmt.Sprintf("%s:%d", sessionName, index)
		if err := l.mux.SendKeys(target, l.JobCommand(job), "Enter"); err != nil {
			return err
		}
	}

	fmt.Fprintf(l.opts.Out, "Running %d job(s) concurrently in session %q, one window each\n", len(jobs), sessionName)
	return nil
}

// BuildChain builds the sequential command chain: every job in order,
// bracketed by start/finish banners with shell-evaluated timestamps, joined
// with ';' so an exit status never stops the chain, followed by a completion
// banner and an interactive shell keeping the window alive.
func (l *Launcher) BuildChain(jobs []domain.Job) string {
	parts := make([]string, 0, len(jobs)+2)
	for _, job := range jobs {
		parts = append(parts, fmt.Sprintf(
			`echo ''; echo "=== [$(date '+%%Y-%%m-%%d %%H:%%M:%%S')] starting %s ==="; %s; echo "=== [$(date '+%%Y-%%m-%%d %%H:%%M:%%S')] finished %s ==="; echo '%s'`,
			job.DisplayName, l.JobCommand(job), job.DisplayName, separatorLine))
	}
	parts = append(parts, fmt.Sprintf(`echo ''; echo "=== all %d job(s) completed ==="`, len(jobs)))
	parts = append(parts, fmt.Sprintf("exec %s", l.opts.Shell))
	return strings.Join(parts, "; ")
}

// JobCommand builds the blocking invocation for one job.
func (l *Launcher) JobCommand(job domain.Job) string {
	interpreter := job.Interpreter
	if interpreter == "" && strings.EqualFold(filepath.Ext(job.Path), ".py") {
		interpreter = l.opts.Interpreter
	}
	if interpreter == "" {
		return fmt.Sprintf("%q", job.Path)
	}
	return fmt.Sprintf("%s %q", interpreter, job.Path)
}
