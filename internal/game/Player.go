package game

type Player struct {
	position     Position
	lastPosition Position
	moveCount    int
}

func NewPlayer(start Position) *Player {
	return &Player{position: start, lastPosition: start}
}

// Move steps one cell in dir when the level allows it. A blocked move leaves
// the player and its move count untouched.
func (p *Player) Move(dir Direction, level *Level) bool {
	candidate := p.position.Add(dir.Offset())
	if !level.CanEnter(candidate) {
		return false
	}

	p.lastPosition = p.position
	p.position = candidate
	p.moveCount++
	return true
}

// CountAttempt charges a turn without moving, for legacy turn counting.
func (p *Player) CountAttempt() {
	p.moveCount++
}

func (p *Player) Reset(start Position) {
	p.position = start
	p.lastPosition = start
	p.moveCount = 0
}

func (p *Player) Position() Position { return p.position }
func (p *Player) LastPosition() Position { return p.lastPosition }
func (p *Player) MoveCount() int { return p.moveCount }
