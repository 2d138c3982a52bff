package api

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"teslo/internal/jdl"
	"teslo/internal/render"
)

// Storage holds the current document + assembled model behind a RWMutex.
// Every SetModel gets a fresh monotonic ULID so clients can tell which
// parse run produced the metadata they are looking at.
type Storage struct {
	mu      sync.RWMutex
	doc     *jdl.Document
	model   *render.Model
	runID   string
	entropy io.Reader
}

func NewStorage() *Storage {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Storage{entropy: ulid.Monotonic(src, 0)}
}

func (s *Storage) newRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// SetModel swaps in a new parse result and returns its run id.
func (s *Storage) SetModel(doc *jdl.Document, model *render.Model) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.model = model
	s.runID = s.newRunID()
	return s.runID
}

// Snapshot returns the current model and run id ("" before the first parse).
func (s *Storage) Snapshot() (*render.Model, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model, s.runID
}
