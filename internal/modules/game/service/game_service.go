package service

import (
	"clearpoints/internal/modules/game/domain"
	"clearpoints/internal/platform/clock"
	"clearpoints/internal/platform/id"
)

type GameService struct {
	clock clock.Clock
	idGen id.Generator
	rng   domain.Rand
}

func NewGameService(clock clock.Clock, idGen id.Generator, rng domain.Rand) *GameService {
	return &GameService{clock: clock, idGen: idGen, rng: rng}
}

// Start begins a new session on game, stamped with a fresh id and the
// current time.
func (s *GameService) Start(game *domain.Game) error {
	return game.Start(s.idGen.New(), s.clock.Now())
}

func (s *GameService) Click(session *domain.Session, label int) (domain.Result, error) {
	return session.Click(label, s.clock.Now())
}

// Layout places the markers for a session of n points on a field of the
// given size in field units.
func (s *GameService) Layout(n, width, height int) []domain.Marker {
	return domain.Generate(n, width, height, domain.MarkerSize, s.rng)
}
