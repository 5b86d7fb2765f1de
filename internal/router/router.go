package router

import (
	"context"

	"banking-assistant/internal/model"
)

// Classify normalizes message and matches it against the table for mode.
// Unknown modes and unmatched text classify as IntentUnknown.
func (r *KeywordRouter) Classify(ctx context.Context, mode model.Mode, message string) RouterOutput {
	normalized := Normalize(message)

	rules, ok := r.rules[mode]
	if !ok {
		r.l.Warnf(ctx, "%s: unknown mode %q, falling back to %s", LogPrefixClassify, mode, RouterFallbackIntent)
		return RouterOutput{Intent: RouterFallbackIntent}
	}

	output := rules.Match(normalized)
	if output.Command != CommandNone {
		r.l.Debugf(ctx, "%s: mode=%s classified as %s/%s (trigger %q)", LogPrefixClassify, mode, output.Intent, output.Command, output.Trigger)
	} else {
		r.l.Debugf(ctx, "%s: mode=%s classified as %s (trigger %q)", LogPrefixClassify, mode, output.Intent, output.Trigger)
	}
	return output
}
