package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// runInput runs a huh input and returns the trimmed answer, or fallback when
// the answer is empty.
func runInput(title, help, fallback string, validator func(string) error) (string, error) {
	var answer string

	input := huh.NewInput().
		Title(title).
		Value(&answer)
	if help != "" {
		input.Description(help)
	}
	if fallback != "" {
		input.Placeholder(fallback)
	}
	if validator != nil {
		input.Validate(func(s string) error {
			// an empty answer means the fallback
			if strings.TrimSpace(s) == "" && fallback != "" {
				return nil
			}
			return validator(s)
		})
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if answer = strings.TrimSpace(answer); answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// PromptAmount asks for a signed amount such as "-12.50" or "1,000".
func PromptAmount(message string, helpText string, validator func(string) error) (string, error) {
	return runInput(message, helpText, "", validator)
}

// PromptDate asks for a YYYY-MM-DD date; pressing enter keeps defaultDate.
func PromptDate(message string, defaultDate string, helpText string, validator func(string) error) (string, error) {
	return runInput(message, helpText, defaultDate, validator)
}

// PromptInput asks for free text. An empty answer returns defaultValue.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	return runInput(message, "", defaultValue, validator)
}

// PromptSelect asks the user to pick one of options.
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}
