package session

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/patternkit/patternkit"
)

var (
	ErrPieceNotFound  = errors.New("piece not found")
	ErrDuplicatePiece = errors.New("duplicate piece id")
)

// Store owns the pieces a session edits. The session re-reads Pieces for
// every frame and every input event, and never retries a failed mutation.
type Store interface {
	// Pieces returns the pieces in drawing order, bottom first.
	Pieces() []patternkit.Piece
	Create(p patternkit.Piece) error
	Update(id string, p patternkit.Piece) error
	Delete(id string) error
}

// MemStore is an in-memory Store. It is safe for concurrent use.
type MemStore struct {
	mu     sync.RWMutex
	pieces []patternkit.Piece
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns a store holding deep copies of pieces.
func NewMemStore(pieces ...patternkit.Piece) *MemStore {
	s := &MemStore{pieces: make([]patternkit.Piece, 0, len(pieces))}
	for _, p := range pieces {
		s.pieces = append(s.pieces, p.Clone())
	}
	return s
}

func (s *MemStore) index(id string) int {
	return slices.IndexFunc(s.pieces, func(p patternkit.Piece) bool { return p.ID == id })
}

// Pieces returns a copy of the piece list. The pieces themselves are
// shared and must not be modified in place.
func (s *MemStore) Pieces() []patternkit.Piece {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.pieces)
}

// Len returns the number of stored pieces.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pieces)
}

func (s *MemStore) Create(p patternkit.Piece) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(p.ID) >= 0 {
		return fmt.Errorf("create %s: %w", p.ID, ErrDuplicatePiece)
	}
	s.pieces = append(s.pieces, p.Clone())
	return nil
}

// Update replaces the piece with the given id, keeping its position in
// the drawing order.
func (s *MemStore) Update(id string, p patternkit.Piece) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("update %s: %w", id, ErrPieceNotFound)
	}
	p = p.Clone()
	p.ID = id
	s.pieces[i] = p
	return nil
}

func (s *MemStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, ErrPieceNotFound)
	}
	s.pieces = slices.Delete(s.pieces, i, i+1)
	return nil
}
