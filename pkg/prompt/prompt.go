// Package prompt collects feature definitions interactively. The terminal
// interaction sits behind the Driver interface so the collection loop can be
// tested with a scripted driver.
package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tsclean/tsclean/pkg/fieldspec"
)

// InputConfig describes one free-text question.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig describes one yes/no question.
type ConfirmConfig struct {
	Message string
	Default bool
}

// Driver asks questions and returns answers.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

// surveyDriver implements Driver on the terminal.
type surveyDriver struct{}

// NewSurveyDriver returns the interactive terminal driver.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

func (surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var answer string
	q := &survey.Input{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}
	if err := survey.AskOne(q, &answer); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return answer, nil
}

func (surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var answer bool
	q := &survey.Confirm{Message: cfg.Message, Default: cfg.Default}
	if err := survey.AskOne(q, &answer); err != nil {
		return false, fmt.Errorf("prompt: %w", err)
	}
	return answer, nil
}

// CollectFeatures asks for features until the user submits an empty name.
// Field definitions default to the generator's standard fields; a malformed
// definition re-prompts rather than aborting the session.
func CollectFeatures(ctx context.Context, driver Driver) ([]fieldspec.FeatureSpec, error) {
	var features []fieldspec.FeatureSpec
	for {
		name, err := driver.Input(ctx, InputConfig{
			Message: "Feature name (empty to finish):",
			Help:    "Each feature becomes a Features/<name>/ module with its own API route.",
		})
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return features, nil
		}

		for {
			definition, err := driver.Input(ctx, InputConfig{
				Message: fmt.Sprintf("Fields for '%s':", name),
				Default: fieldspec.Canonical(fieldspec.DefaultFields()),
				Help:    "Comma-separated name:type:rule entries, e.g. name:string:minlength=3,price:number:min=0.",
			})
			if err != nil {
				return nil, err
			}

			feat, err := fieldspec.NewFeature(name, definition)
			if err != nil {
				retry, confirmErr := driver.Confirm(ctx, ConfirmConfig{
					Message: fmt.Sprintf("%v. Try again?", err),
					Default: true,
				})
				if confirmErr != nil {
					return nil, confirmErr
				}
				if retry {
					continue
				}
				return nil, err
			}
			features = append(features, feat)
			break
		}
	}
}
