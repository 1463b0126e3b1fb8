package usecase

import (
	"context"
	"time"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
)

// Resolve implements naturaltime.UseCase.
func (uc *implUseCase) Resolve(ctx context.Context, input naturaltime.ResolveInput) (naturaltime.ResolveOutput, error) {
	if len(uc.plugins) == 0 {
		return naturaltime.ResolveOutput{}, naturaltime.ErrNoPluginsConfigured
	}
	if input.Text == nil {
		return naturaltime.ResolveOutput{}, naturaltime.ErrNilInput
	}

	base := input.Base
	if base.IsZero() {
		base = time.Now().UTC()
	}

	for _, plugin := range uc.plugins {
		tokens, err := plugin.Tokenize(input.Text)
		if err != nil {
			uc.l.Warn(ctx, "tokenization failed",
				"plugin", plugin.Key(),
				"error", err.Error(),
			)
			return naturaltime.ResolveOutput{}, &naturaltime.PluginError{
				Plugin: plugin.Key(),
				Err:    err,
			}
		}
		if len(tokens) == 0 {
			continue
		}

		result := base
		for _, tok := range tokens {
			result, err = plugin.Apply(tok, result)
			if err != nil {
				uc.l.Warn(ctx, "token application failed",
					"plugin", plugin.Key(),
					"matched", tok.Matched,
					"error", err.Error(),
				)
				return naturaltime.ResolveOutput{}, &naturaltime.PluginError{
					Plugin: plugin.Key(),
					Err:    err,
				}
			}
		}

		uc.l.Info(ctx, "expression resolved",
			"plugin", plugin.Key(),
			"tokens", len(tokens),
		)
		return naturaltime.ResolveOutput{
			Plugin: plugin.Key(),
			Tokens: tokens,
			Result: result,
		}, nil
	}

	return naturaltime.ResolveOutput{}, naturaltime.ErrUnrecognizedInput
}
