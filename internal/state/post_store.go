package state

import "postdeck/internal/models"

// PostStore mirrors the post collection for the selected project.
type PostStore struct {
	tracker
	posts []*models.Post
}

func NewPostStore() *PostStore {
	return &PostStore{}
}

// ApplyList replaces the collection with the server's response, keeping
// server order and discarding whatever was there before.
func (s *PostStore) ApplyList(seq uint64, posts []*models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = posts
	s.settleLocked(seq, nil)
}

// ApplyCreate appends the created post. No deduplication by identifier:
// applying the same success twice appends twice. The next list fetch
// squares the collection with the server.
func (s *PostStore) ApplyCreate(seq uint64, post *models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, post)
	s.settleLocked(seq, nil)
}

func (s *PostStore) Posts() []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// FilterByStatus returns the posts in the given lifecycle status, in
// collection order. An empty status returns everything.
func (s *PostStore) FilterByStatus(status string) []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if status == "" {
		out := make([]*models.Post, len(s.posts))
		copy(out, s.posts)
		return out
	}
	var out []*models.Post
	for _, p := range s.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// CountByStatus tallies posts per lifecycle status.
func (s *PostStore) CountByStatus() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, p := range s.posts {
		counts[p.Status]++
	}
	return counts
}
