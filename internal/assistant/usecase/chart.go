package usecase

import (
	"context"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/model"
)

// ChartData returns the dataset drawn for a show_chart side effect.
func (uc *implUseCase) ChartData(ctx context.Context, kind model.ChartKind) (assistant.ChartOutput, error) {
	switch kind {
	case model.ChartSpending:
		return assistant.ChartOutput{
			Kind:     kind,
			Spending: append([]assistant.SpendingPoint(nil), spendingSeries...),
		}, nil
	case model.ChartCategory:
		return assistant.ChartOutput{
			Kind:       kind,
			Categories: append([]assistant.CategorySlice(nil), categoryBreakdown...),
		}, nil
	default:
		return assistant.ChartOutput{}, assistant.ErrUnknownChart
	}
}
