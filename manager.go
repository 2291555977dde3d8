package minicore

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicateHandle is returned when a surface handle is already registered.
var ErrDuplicateHandle = errors.New("duplicate surface handle")

// SurfaceManager owns surfaces by handle and deletes their GPU objects on
// release. It is not safe for concurrent use; like surfaces themselves it
// belongs to the GPU thread.
type SurfaceManager struct {
	surfaces map[string]*Surface
}

// NewSurfaceManager creates an empty manager.
func NewSurfaceManager() *SurfaceManager {
	return &SurfaceManager{surfaces: make(map[string]*Surface)}
}

// Add registers s under its handle.
func (m *SurfaceManager) Add(s *Surface) error {
	if _, ok := m.surfaces[s.Handle()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateHandle, s.Handle())
	}
	m.surfaces[s.Handle()] = s
	logger.Debug("surface registered", "handle", s.Handle(), "count", len(m.surfaces))
	return nil
}

// Surface returns the surface registered under handle.
func (m *SurfaceManager) Surface(handle string) (*Surface, bool) {
	s, ok := m.surfaces[handle]
	return s, ok
}

// Release deletes the surface registered under handle.
// Returns false if no such surface exists.
func (m *SurfaceManager) Release(handle string) bool {
	s, ok := m.surfaces[handle]
	if !ok {
		return false
	}
	s.Delete()
	delete(m.surfaces, handle)
	logger.Debug("surface released", "handle", handle)
	return true
}

// ReleaseAll deletes every registered surface.
func (m *SurfaceManager) ReleaseAll() {
	for handle, s := range m.surfaces {
		s.Delete()
		delete(m.surfaces, handle)
	}
}

// Handles returns the registered handles in sorted order.
func (m *SurfaceManager) Handles() []string {
	handles := make([]string, 0, len(m.surfaces))
	for handle := range m.surfaces {
		handles = append(handles, handle)
	}
	slices.Sort(handles)
	return handles
}

// Len returns the number of registered surfaces.
func (m *SurfaceManager) Len() int {
	return len(m.surfaces)
}
