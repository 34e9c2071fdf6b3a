package agent

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creack/pty"

	"ebisu/internal/apollo"
	"ebisu/internal/jsonutil"
)

// wireEvent is one JSON line emitted by the external agent process.
type wireEvent struct {
	Type          string                `json:"type"`
	Message       string                `json:"message"`
	Status        string                `json:"status"`
	People        []apollo.Person       `json:"people"`
	Organizations []apollo.Organization `json:"organizations"`
	Jobs          []apollo.JobPosting   `json:"job_postings"`
}

// ProcessRunner runs the external agent backend once per prompt. The prompt
// is appended to the configured argv and the process's stdout is read as
// JSON lines:
//
//	{"type":"progress","message":"Executing Apollo people search API..."}
//	{"type":"status","status":"Searching for people..."}
//	{"type":"people","people":[...]}
//
// Lines that don't parse are forwarded verbatim as info entries so a noisy
// backend still shows up in the log panel. The process runs under a pty
// because agent CLIs tend to buffer, or refuse color and streaming,
// when stdout is a pipe.
type ProcessRunner struct {
	emitter
	argv []string
}

// NewProcessRunner creates a runner for the given command line, e.g.
// ["python", "-m", "zig.agent"].
func NewProcessRunner(argv []string) *ProcessRunner {
	return &ProcessRunner{emitter: newEmitter(), argv: argv}
}

// Ask implements Runner.
func (r *ProcessRunner) Ask(ctx context.Context, prompt string) tea.Cmd {
	return func() tea.Msg {
		if len(r.argv) == 0 {
			return DoneMsg{Err: fmt.Errorf("agent command not configured")}
		}
		cmd := exec.CommandContext(ctx, r.argv[0], append(r.argv[1:], prompt)...)
		f, err := pty.Start(cmd)
		if err != nil {
			return DoneMsg{Err: fmt.Errorf("start agent: %w", err)}
		}
		defer f.Close()

		count := 0
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			count += r.handleLine(line)
		}
		// Scanner errors on pty EOF are normal (EIO on Linux); the exit
		// status is the signal we care about.
		if err := cmd.Wait(); err != nil {
			r.emit(EventMsg(NewEvent("Agent exited with error: "+err.Error(), LevelError)))
			return DoneMsg{Count: count, Err: err}
		}
		return DoneMsg{Count: count}
	}
}

// handleLine parses one agent output line and emits the corresponding
// message. Returns the number of people delivered by the line.
func (r *ProcessRunner) handleLine(line string) int {
	var ev wireEvent
	if err := jsonutil.UnmarshalLine(line, &ev); err != nil {
		r.emit(EventMsg(NewEvent(line, LevelInfo)))
		return 0
	}
	switch ev.Type {
	case "status":
		r.emit(StatusMsg(ev.Status))
	case "people":
		r.emit(PeopleMsg(ev.People))
		return len(ev.People)
	case "organizations":
		r.emit(OrganizationsMsg(ev.Organizations))
		return len(ev.Organizations)
	case "job_postings":
		r.emit(JobsMsg(ev.Jobs))
		return len(ev.Jobs)
	case "progress", "success", "error", "info":
		r.emit(EventMsg(NewEvent(ev.Message, Level(ev.Type))))
	default:
		if ev.Message != "" {
			r.emit(EventMsg(NewEvent(ev.Message, LevelInfo)))
		} else {
			r.emit(EventMsg(NewEvent(line, LevelInfo)))
		}
	}
	return 0
}
