package usecase

import (
	"time"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/assistant/repository"
	"banking-assistant/internal/router"
	"banking-assistant/pkg/log"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l      log.Logger
	router router.Router
	repo   repository.TranscriptRepository
	synth  *Synthesizer
	cfg    assistant.Config
	now    func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase implementation. rnd picks financial
// tips; nil seeds from the clock.
func New(l log.Logger, r router.Router, repo repository.TranscriptRepository, rnd RandSource, cfg assistant.Config) assistant.UseCase {
	if cfg.ReplyDelay < 0 {
		cfg.ReplyDelay = 0
	}
	if cfg.NavigateDelay <= 0 {
		cfg.NavigateDelay = DefaultNavigateDelay
	}
	return &implUseCase{
		l:      l,
		router: r,
		repo:   repo,
		synth:  NewSynthesizer(rnd, cfg.NavigateDelay),
		cfg:    cfg,
		now:    time.Now,
	}
}
