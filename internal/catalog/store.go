// Package catalog owns the property listings and their reviews.  The
// catalog itself is seeded at startup and immutable; the only listing
// field that ever changes is the bookmarked flag.  Reviews are
// append-only.  Bookmarks and reviews are written to durable key-value
// storage on every mutation and restored on startup, so they survive a
// restart even though the listings are re-seeded each time.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/unistay/student-housing/internal/model"
	"github.com/unistay/student-housing/internal/storage"
)

// Storage keys owned by this store.  The booking store uses a disjoint
// namespace; the two never read each other's keys.
const (
	bookmarksKey = "catalog:bookmarks"
	reviewsKey   = "catalog:reviews"
)

// Store holds the seeded listing catalog together with its bookmarked
// subset and the review list.  All methods are safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	kv         storage.KV
	properties []model.Property
	reviews    []model.Review
	lastID     int64 // floor for millisecond review IDs
}

// NewStore seeds the catalog and restores the persisted bookmarked-id set
// and review list.  Absent keys mean a first run; malformed blobs are
// discarded and logged, and the store starts from its seeded defaults.
func NewStore(ctx context.Context, kv storage.KV) *Store {
	if kv == nil {
		panic("nil kv passed to catalog.NewStore")
	}
	s := &Store{
		kv:         kv,
		properties: seedProperties(),
		reviews:    seedReviews(),
	}
	s.restoreBookmarks(ctx)
	s.restoreReviews(ctx)
	return s
}

func (s *Store) restoreBookmarks(ctx context.Context) {
	blob, err := s.kv.Get(ctx, bookmarksKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return
	}
	if err != nil {
		log.Printf("catalog: read bookmarks failed: %v", err)
		return
	}
	var ids []string
	if err := json.Unmarshal([]byte(blob), &ids); err != nil {
		log.Printf("catalog: discarding corrupt bookmark state: %v", err)
		return
	}
	marked := make(map[string]bool, len(ids))
	for _, id := range ids {
		marked[id] = true
	}
	// Ids that no longer exist in the catalog are silently dropped.
	for i := range s.properties {
		s.properties[i].Bookmarked = marked[s.properties[i].ID]
	}
}

func (s *Store) restoreReviews(ctx context.Context) {
	blob, err := s.kv.Get(ctx, reviewsKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return
	}
	if err != nil {
		log.Printf("catalog: read reviews failed: %v", err)
		return
	}
	var reviews []model.Review
	if err := json.Unmarshal([]byte(blob), &reviews); err != nil {
		log.Printf("catalog: discarding corrupt review state: %v", err)
		return
	}
	s.reviews = reviews
}

// ListProperties returns every listing in catalog order.
func (s *Store) ListProperties() []model.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Property, len(s.properties))
	copy(out, s.properties)
	return out
}

// ListFeatured returns the listings flagged as featured, in catalog order.
func (s *Store) ListFeatured() []model.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Property, 0)
	for _, p := range s.properties {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ListBookmarked returns the listings whose bookmarked flag is set, in
// catalog order.  The subset is always recomputed from the catalog; the
// persisted id set exists only to restore the flags after a restart.
func (s *Store) ListBookmarked() []model.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Property, 0)
	for _, p := range s.properties {
		if p.Bookmarked {
			out = append(out, p)
		}
	}
	return out
}

// GetProperty looks up a listing by id.  Absence is a normal outcome
// reported through the second return value.
func (s *Store) GetProperty(id string) (model.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.properties {
		if p.ID == id {
			return p, true
		}
	}
	return model.Property{}, false
}

// ToggleBookmark flips the bookmarked flag on the matching listing and
// persists the updated id set.  It reports whether the id was found; an
// unknown id leaves the catalog untouched.  The storage write is
// fire-and-forget: a failure is logged but the in-memory flip stands.
func (s *Store) ToggleBookmark(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.properties {
		if s.properties[i].ID == id {
			s.properties[i].Bookmarked = !s.properties[i].Bookmarked
			found = true
			break
		}
	}
	if !found {
		return false
	}
	ids := make([]string, 0)
	for _, p := range s.properties {
		if p.Bookmarked {
			ids = append(ids, p.ID)
		}
	}
	blob, err := json.Marshal(ids)
	if err != nil {
		log.Printf("catalog: marshal bookmarks failed: %v", err)
		return true
	}
	if err := s.kv.Set(ctx, bookmarksKey, string(blob)); err != nil {
		log.Printf("catalog: persist bookmarks failed: %v", err)
	}
	return true
}

// ListReviews returns all reviews for the given property in submission
// order.  The property id is not validated against the catalog, so
// reviews for unknown ids are still returned.
func (s *Store) ListReviews(propertyID string) []model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Review, 0)
	for _, r := range s.reviews {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	return out
}

// AddReview assigns an id and submission date to the input, appends the
// review and persists the full review list.  Input validation is the
// caller's responsibility.
func (s *Store) AddReview(ctx context.Context, input model.ReviewInput) model.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	review := model.Review{
		ID:         s.nextID(),
		PropertyID: input.PropertyID,
		Author:     input.Author,
		Rating:     input.Rating,
		Hygiene:    input.Hygiene,
		Location:   input.Location,
		Service:    input.Service,
		Comment:    input.Comment,
		GuestType:  input.GuestType,
		StayPeriod: input.StayPeriod,
		Date:       time.Now().UTC().Format(time.RFC3339),
	}
	s.reviews = append(s.reviews, review)
	blob, err := json.Marshal(s.reviews)
	if err != nil {
		log.Printf("catalog: marshal reviews failed: %v", err)
		return review
	}
	if err := s.kv.Set(ctx, reviewsKey, string(blob)); err != nil {
		log.Printf("catalog: persist reviews failed: %v", err)
	}
	return review
}

// nextID produces a millisecond-timestamp id that is strictly greater
// than any id handed out before, so rapid submissions cannot collide.
// Callers must hold the write lock.
func (s *Store) nextID() string {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10)
}
