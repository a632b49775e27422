package store

import "github.com/muurk/countryfinder/internal/directory"

// Select marks id as the selected country. The id is not validated: selecting
// an id that is not in the current list simply highlights nothing. An empty id
// clears the selection.
//
// IDs are regenerated on every fetch, so a selection made before a refresh
// usually points at nothing afterwards. Refresh leaves it untouched.
func (s *Store) Select(id string) {
	s.mu.Lock()
	s.selectedID = id
	s.mu.Unlock()

	s.notify()
}

// SelectedID returns the current selection, or "" if there is none.
func (s *Store) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// SelectedCountry returns the selected country if its id is present in the
// current full list.
func (s *Store) SelectedCountry() (directory.Country, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedID == "" {
		return directory.Country{}, false
	}
	for _, c := range s.full {
		if c.ID == s.selectedID {
			return c, true
		}
	}
	return directory.Country{}, false
}
