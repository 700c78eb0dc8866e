package state

import "postdeck/internal/models"

// ProjectStore mirrors the project collection plus the user's current
// selection.
type ProjectStore struct {
	tracker
	projects []*models.Project
	current  *models.Project
}

func NewProjectStore() *ProjectStore {
	return &ProjectStore{}
}

// ApplyList replaces the collection with the server's response, keeping
// server order.
func (s *ProjectStore) ApplyList(seq uint64, projects []*models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = projects
	s.settleLocked(seq, nil)
}

// ApplyCreate appends the created project and selects it.
func (s *ProjectStore) ApplyCreate(seq uint64, project *models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, project)
	s.current = project
	s.settleLocked(seq, nil)
}

func (s *ProjectStore) SetCurrent(project *models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = project
}

func (s *ProjectStore) Current() *models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *ProjectStore) Projects() []*models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *ProjectStore) FindByID(id string) (*models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
