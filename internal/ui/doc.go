// Package ui implements the interactive patch stack console as a Bubble
// Tea model. The model owns the session state (mark store, range anchor,
// incremental filter) and drives commands through a small pipeline:
// resolve the target patches, gather any free-text input, run the
// confirmation steps a command needs, then dispatch the engine
// invocation off the UI goroutine. Series and branch data arrive
// asynchronously from the backend watcher and are folded into the list
// between keystrokes.
package ui
