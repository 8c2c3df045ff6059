package fixture

import (
	"context"
	"sort"
	"time"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
)

// ListKhatas returns all khatas ordered by name ascending.
func (s *Store) ListKhatas(ctx context.Context) ([]domain.Khata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	khatas := make([]domain.Khata, len(s.khatas))
	copy(khatas, s.khatas)
	sort.Slice(khatas, func(i, j int) bool { return khatas[i].Name < khatas[j].Name })
	return khatas, nil
}

// FindKhataByID returns a khata by ID.
func (s *Store) FindKhataByID(ctx context.Context, khataID int64) (*domain.Khata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.khatas {
		if s.khatas[i].KhataID == khataID {
			khata := s.khatas[i]
			return &khata, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// SaveKhata appends a new khata with the next sequential ID.
func (s *Store) SaveKhata(ctx context.Context, khata domain.Khata) (*domain.Khata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	khata.KhataID = s.nextKhataID
	s.nextKhataID++
	khata.CreatedAt = now
	khata.UpdatedAt = now

	s.khatas = append(s.khatas, khata)
	return &khata, nil
}
