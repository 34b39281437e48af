package commands

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// errPromptAborted is returned when the user interrupts a prompt.
var errPromptAborted = errors.New("prompt aborted")

// selectOption asks the user to pick one of labels and returns its index.
// Tests replace it to avoid a terminal.
var selectOption = func(message string, labels []string) (int, error) {
	var answer string
	prompt := &survey.Select{
		Message:  message,
		Options:  labels,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, errPromptAborted
		}
		return 0, err
	}
	for idx, label := range labels {
		if label == answer {
			return idx, nil
		}
	}
	return 0, errors.New("prompt: unknown selection")
}
