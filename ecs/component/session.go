package component

import "fmt"

type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
)

func (m Mode) String() string {
	if m == ModePlaying {
		return "playing"
	}
	return "menu"
}

// NameChars is the alphabet a name-entry slot cycles through.
const NameChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ."

const NameSlots = 3

// FadeMax is the opacity at which the game-over summary is shown.
const FadeMax = 255

// NameEntry is the score-submission sub-state: three initials and a cursor.
type NameEntry struct {
	Active   bool
	Chars    [NameSlots]int
	Selected int
}

// Cycle moves the selected initial by delta, wrapping around NameChars.
func (n *NameEntry) Cycle(delta int) {
	size := len(NameChars)
	c := (n.Chars[n.Selected] + delta) % size
	if c < 0 {
		c += size
	}
	n.Chars[n.Selected] = c
}

// Move shifts the selection by delta, clamped to the slots.
func (n *NameEntry) Move(delta int) {
	n.Selected += delta
	if n.Selected < 0 {
		n.Selected = 0
	}
	if n.Selected >= NameSlots {
		n.Selected = NameSlots - 1
	}
}

func (n *NameEntry) Name() string {
	out := make([]byte, NameSlots)
	for i, c := range n.Chars {
		out[i] = NameChars[c]
	}
	return string(out)
}

// Session is the run-scoped progress and flow state.
type Session struct {
	Mode     Mode
	Paused   bool
	GameOver bool
	NewGame  bool

	Score  int
	Coins  int
	Stars  int
	Health int

	Highest        float64
	DistancePoints int
	Difficulty     float64
	ScrollSpeed    float64
	Scrolling      bool

	// SpawnCursor is the world y of the most recently spawned platform.
	SpawnCursor float64

	GameOverFade int
	SummaryShown bool
	Entry        NameEntry

	Ticks int
}

// RunReport is the end-of-run summary shown after the game-over fade.
type RunReport struct {
	Distance int
	Coins    int
	Stars    int
	Score    int
}

func (r RunReport) String() string {
	return fmt.Sprintf("distance %d  coins %d  stars %d  score %d", r.Distance, r.Coins, r.Stars, r.Score)
}

func (s *Session) Report() RunReport {
	return RunReport{
		Distance: int(s.Highest),
		Coins:    s.Coins,
		Stars:    s.Stars,
		Score:    s.Score,
	}
}
