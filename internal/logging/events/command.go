package events

import "github.com/tohojo/stgit-console/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Dispatch(verb string, patches []string) {
	logging.Trace("command.dispatch", map[string]interface{}{"verb": verb, "patches": patches})
}

func (CommandTracer) Background(verb string) {
	logging.Trace("command.background", map[string]interface{}{"verb": verb})
}

func (CommandTracer) Success(verb, info string) {
	logging.Trace("command.success", map[string]interface{}{"verb": verb, "info": info})
}

func (CommandTracer) Error(verb string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"verb": verb, "error": err.Error()})
}

func (CommandTracer) PromptOpened(verb, message string) {
	logging.Trace("command.prompt", map[string]interface{}{"verb": verb, "message": message})
}

func (CommandTracer) PromptCancelled(verb string) {
	logging.Trace("command.prompt_cancelled", map[string]interface{}{"verb": verb})
}

func (CommandTracer) ConfirmOpened(verb, message string) {
	logging.Trace("command.confirm", map[string]interface{}{"verb": verb, "message": message})
}
