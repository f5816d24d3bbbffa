package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
	"github.com/aliskhannn/flash-cards-bot/internal/repository"
)

// DocumentStore gives access to the per-locale sheet data.
type DocumentStore interface {
	Collection(locale, name string) (repository.RecordSet, error)
}

// QuizLoader loads validated quiz data for a locale.
type QuizLoader interface {
	QuizSettings(locale string) (entities.QuizSettings, error)
	AllQuizQuestions(locale string) ([]entities.Question, error)
}

// Random is the source of randomness for question order and audio choice.
// *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a time-seeded Random that is safe for concurrent use.
func NewRandom() Random {
	return &lockedRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

func (r *lockedRand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng.Shuffle(n, swap)
}
