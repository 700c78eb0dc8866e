package state

import "postdeck/internal/transfer"

// AIStore keeps the latest generation results. Text and image results
// live side by side; generating one leaves the other alone.
type AIStore struct {
	tracker
	textResult  *transfer.AITextResponse
	imageResult *transfer.AIImageResponse
}

func NewAIStore() *AIStore {
	return &AIStore{}
}

func (s *AIStore) ApplyText(seq uint64, result *transfer.AITextResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textResult = result
	s.settleLocked(seq, nil)
}

func (s *AIStore) ApplyImage(seq uint64, result *transfer.AIImageResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageResult = result
	s.settleLocked(seq, nil)
}

// Clear drops both results and the last error.
func (s *AIStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textResult = nil
	s.imageResult = nil
	s.resetLocked()
}

func (s *AIStore) TextResult() *transfer.AITextResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.textResult
}

func (s *AIStore) ImageResult() *transfer.AIImageResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.imageResult
}
