package ui

import (
	"ebisu/internal/apollo"
	"ebisu/internal/bridge"
)

// ActionMsg carries a decoded agent command into the event loop. The
// bridge's HTTP handler blocks on Reply, so the layout mutation and the
// response both happen inside a single Update call.
type ActionMsg struct {
	Command bridge.Command
	Reply   chan<- bridge.Result
}

// PersonSelectedMsg is sent when the user picks a person in the people
// panel; the details panel shows the dossier.
type PersonSelectedMsg struct {
	Person apollo.Person
}

// SubmitPromptMsg is sent when the user submits a chat prompt.
type SubmitPromptMsg struct {
	Prompt string
}
