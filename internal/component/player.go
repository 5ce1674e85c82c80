// internal/component/player.go
package component

// Player хранит жизни и золото игрока на одном уровне.
type Player struct {
	health int
	gold   int
}

func NewPlayer(health, gold int) *Player {
	return &Player{health: health, gold: gold}
}

// SpendGold takes n gold if the player can afford it.
func (p *Player) SpendGold(n int) bool {
	if p.gold < n {
		return false
	}
	p.gold -= n
	return true
}

func (p *Player) GainGold(n int) {
	p.gold += n
}

func (p *Player) LoseHealth(n int) {
	p.health -= n
}

func (p *Player) Health() int { return p.health }
func (p *Player) Gold() int   { return p.gold }

// Dead reports whether the run is lost.
func (p *Player) Dead() bool {
	return p.health <= 0
}
