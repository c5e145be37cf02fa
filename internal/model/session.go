package model

// SessionMode represents the current phase of a viewing session
type SessionMode string

const (
	SessionModeSelecting SessionMode = "selecting" // Picking the active roster
	SessionModeActive    SessionMode = "active"    // Tracking a playing session
)

// MinActivePlayers is the number of selected players required to start a session
const MinActivePlayers = 4

// SessionSelection is the explicit state of one client's session: which
// phase it is in, which players are picked while selecting, and the roster
// snapshot taken when the session started. It is a plain serializable
// value; callers own persistence.
type SessionSelection struct {
	Mode         SessionMode `json:"mode"`
	Selected     []PlayerID  `json:"selected"`
	ActiveRoster []PlayerID  `json:"active_roster,omitempty"`
}

// NewSessionSelection returns a fresh selection in the selecting phase
func NewSessionSelection() SessionSelection {
	return SessionSelection{
		Mode:     SessionModeSelecting,
		Selected: []PlayerID{},
	}
}

// IsSelected reports whether the player is currently picked
func (s *SessionSelection) IsSelected(id PlayerID) bool {
	for _, sel := range s.Selected {
		if sel == id {
			return true
		}
	}
	return false
}

// InActiveRoster reports whether the player is part of the running session
func (s *SessionSelection) InActiveRoster(id PlayerID) bool {
	for _, p := range s.ActiveRoster {
		if p == id {
			return true
		}
	}
	return false
}

// Toggle adds the player to the selection if absent and removes it if
// present. Only allowed while selecting; returns false otherwise.
func (s *SessionSelection) Toggle(id PlayerID) bool {
	if s.Mode != SessionModeSelecting {
		return false
	}
	for i, sel := range s.Selected {
		if sel == id {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			return true
		}
	}
	s.Selected = append(s.Selected, id)
	return true
}

// SelectAll replaces the selection with the full roster.
// Only allowed while selecting; returns false otherwise.
func (s *SessionSelection) SelectAll(roster []PlayerID) bool {
	if s.Mode != SessionModeSelecting {
		return false
	}
	s.Selected = append([]PlayerID{}, roster...)
	return true
}

// Clear empties the selection. Only allowed while selecting.
func (s *SessionSelection) Clear() bool {
	if s.Mode != SessionModeSelecting {
		return false
	}
	s.Selected = []PlayerID{}
	return true
}

// Start moves the session to the active phase, snapshotting the selection
// as the active roster. Guarded by the minimum player count: with fewer
// than MinActivePlayers selected nothing happens and Start returns false.
// A rejected start is a normal outcome, not an error.
func (s *SessionSelection) Start() bool {
	if s.Mode != SessionModeSelecting || len(s.Selected) < MinActivePlayers {
		return false
	}
	s.ActiveRoster = append([]PlayerID{}, s.Selected...)
	s.Mode = SessionModeActive
	return true
}

// NewRoster returns the session to the selecting phase with an empty
// selection. Ledger counts are untouched; only session state resets.
func (s *SessionSelection) NewRoster() {
	s.Mode = SessionModeSelecting
	s.Selected = []PlayerID{}
	s.ActiveRoster = nil
}
