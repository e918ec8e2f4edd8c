package usecase

import (
	"context"

	"clearpoints/internal/modules/history/domain"
	historydto "clearpoints/internal/modules/history/dto"
	historyin "clearpoints/internal/modules/history/port/in"
	"clearpoints/internal/modules/history/service"
)

type Interactor struct {
	svc *service.HistoryService
}

func NewInteractor(svc *service.HistoryService) historyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Record(ctx context.Context, input historydto.RecordInput) (historydto.RecordOutput, error) {
	record := domain.Record{
		SessionID:   input.SessionID,
		TargetCount: input.TargetCount,
		Cleared:     input.Cleared,
		Outcome:     domain.Outcome(input.Outcome),
		StartedAt:   input.StartedAt,
		EndedAt:     input.EndedAt,
	}
	if err := i.svc.Record(ctx, record); err != nil {
		return historydto.RecordOutput{}, err
	}
	return toRecordOutput(record), nil
}

func (i *Interactor) List(ctx context.Context, limit int) ([]historydto.RecordOutput, error) {
	records, err := i.svc.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]historydto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordOutput(r))
	}
	return out, nil
}

func (i *Interactor) Best(ctx context.Context, targetCount int) (historydto.BestOutput, error) {
	best, err := i.svc.Best(ctx, targetCount)
	if err != nil {
		return historydto.BestOutput{}, err
	}
	return toBestOutput(best), nil
}

func (i *Interactor) Summary(ctx context.Context) (historydto.SummaryOutput, error) {
	summary, err := i.svc.Summary(ctx)
	if err != nil {
		return historydto.SummaryOutput{}, err
	}
	out := historydto.SummaryOutput{Games: summary.Games, Wins: summary.Wins, Losses: summary.Losses}
	for _, b := range summary.Best {
		out.Best = append(out.Best, toBestOutput(b))
	}
	return out, nil
}

func (i *Interactor) Export(ctx context.Context, input historydto.ExportInput) (historydto.ExportOutput, error) {
	report, err := i.svc.Export(ctx, input.Path, input.Limit)
	if err != nil {
		return historydto.ExportOutput{}, err
	}
	return historydto.ExportOutput{Path: input.Path, Records: len(report.Records)}, nil
}

func toRecordOutput(r domain.Record) historydto.RecordOutput {
	return historydto.RecordOutput{
		SessionID:   r.SessionID,
		TargetCount: r.TargetCount,
		Cleared:     r.Cleared,
		Outcome:     string(r.Outcome),
		StartedAt:   r.StartedAt,
		EndedAt:     r.EndedAt,
		Elapsed:     r.Elapsed(),
	}
}

func toBestOutput(b domain.Best) historydto.BestOutput {
	return historydto.BestOutput{TargetCount: b.TargetCount, Elapsed: b.Elapsed, SessionID: b.SessionID}
}
