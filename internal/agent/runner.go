package agent

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ebisu/internal/apollo"
)

// EventMsg delivers an intelligence-log entry to the UI.
type EventMsg Event

// StatusMsg updates the one-line agent status shown in the log panel.
type StatusMsg string

// PeopleMsg delivers people-search results to the people panel.
type PeopleMsg []apollo.Person

// OrganizationsMsg delivers company-search results to the companies panel.
type OrganizationsMsg []apollo.Organization

// JobsMsg delivers job postings to the jobs panel.
type JobsMsg []apollo.JobPosting

// DoneMsg signals the end of one agent turn.
type DoneMsg struct {
	Count int
	Err   error
}

// Runner is the integration point for triggering agent turns.
// Implementations run an external agent process, call Apollo directly, or
// stub everything out for tests.
type Runner interface {
	// Ask starts a turn for the prompt. The returned command blocks until
	// the turn ends; intermediate output arrives on Events.
	Ask(ctx context.Context, prompt string) tea.Cmd
	// Events yields intermediate messages (EventMsg, StatusMsg, PeopleMsg)
	// while a turn is running. Pump it with Listen.
	Events() <-chan tea.Msg
}

// Listen returns a command that waits for the next intermediate message.
// The app re-issues it after each delivery, the usual Bubble Tea pattern for
// channel-backed streams.
func Listen(r Runner) tea.Cmd {
	return func() tea.Msg {
		return <-r.Events()
	}
}

// emitter is a bounded, drop-on-full event sink shared by the runner
// implementations. Dropping beats blocking an agent turn on a stalled UI.
type emitter struct {
	ch chan tea.Msg
}

func newEmitter() emitter {
	return emitter{ch: make(chan tea.Msg, 64)}
}

func (e emitter) Events() <-chan tea.Msg { return e.ch }

func (e emitter) emit(msg tea.Msg) {
	select {
	case e.ch <- msg:
	default:
	}
}

// SearchRunner answers every prompt with an Apollo keyword people search.
// It is the offline-agent fallback: no language model in the loop, but the
// search flow, progress log, and people panel all behave as they do with
// the full agent.
type SearchRunner struct {
	emitter
	client  *apollo.Client
	perPage int
}

// NewSearchRunner creates a SearchRunner over an Apollo client.
func NewSearchRunner(client *apollo.Client) *SearchRunner {
	return &SearchRunner{emitter: newEmitter(), client: client, perPage: 10}
}

// Ask implements Runner.
func (r *SearchRunner) Ask(ctx context.Context, prompt string) tea.Cmd {
	return func() tea.Msg {
		r.emit(EventMsg(NewEvent("Starting people search...", LevelProgress)))
		r.emit(StatusMsg("Searching for people..."))
		r.emit(EventMsg(NewEvent("Executing Apollo people search API...", LevelProgress)))

		people, err := r.client.PeopleSearch(ctx, apollo.PeopleSearchParams{
			Keywords: prompt,
			PerPage:  r.perPage,
		})
		if err != nil {
			r.emit(EventMsg(NewEvent("People search failed: "+err.Error(), LevelError)))
			r.emit(StatusMsg("Search failed"))
			return DoneMsg{Err: err}
		}

		r.emit(EventMsg(NewEvent(countMessage(len(people)), LevelSuccess)))
		r.emit(StatusMsg(readyStatus(len(people))))
		r.emit(PeopleMsg(people))
		return DoneMsg{Count: len(people)}
	}
}

// StubRunner emits a canned search flow, for tests and for running the UI
// with no Apollo key and no agent backend.
type StubRunner struct {
	emitter
	People []apollo.Person
}

// NewStubRunner creates a StubRunner with the given canned results.
func NewStubRunner(people []apollo.Person) *StubRunner {
	return &StubRunner{emitter: newEmitter(), People: people}
}

// Ask implements Runner.
func (s *StubRunner) Ask(ctx context.Context, prompt string) tea.Cmd {
	return func() tea.Msg {
		s.emit(EventMsg(NewEvent("Starting people search...", LevelProgress)))
		s.emit(StatusMsg("Searching for people..."))
		s.emit(EventMsg(NewEvent(countMessage(len(s.People)), LevelSuccess)))
		s.emit(StatusMsg(readyStatus(len(s.People))))
		s.emit(PeopleMsg(s.People))
		return DoneMsg{Count: len(s.People)}
	}
}

func countMessage(n int) string {
	if n == 1 {
		return "Found 1 person successfully!"
	}
	return fmt.Sprintf("Found %d people successfully!", n)
}

func readyStatus(n int) string {
	return fmt.Sprintf("Ready - %d people loaded", n)
}
