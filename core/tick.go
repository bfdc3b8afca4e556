package core

// Tick advances the simulation by one step. The order is fixed: pending
// intents, player bullets against the formation, enemy bullets against the
// ships, respawn when the formation is gone, projectile movement, formation
// movement, enemy fire, animation.
//
// A game that ended during a tick moves to GameOver at the top of the next
// one; from then on Tick does nothing.
func (g *Game) Tick() (Report, error) {
	switch g.phase {
	case AwaitingAssets:
		return Report{Phase: g.phase}, ErrAssetsNotReady
	case PreGame:
		return Report{Phase: g.phase}, ErrNotRunning
	case GameOver:
		return Report{Phase: g.phase}, nil
	}

	if g.gameOver {
		g.phase = GameOver
		return Report{Phase: g.phase}, nil
	}

	g.events = nil
	g.applyIntents()
	g.resolvePlayerBullets()
	g.resolveEnemyBullets()
	if len(g.formation.Units) == 0 {
		g.escalate()
	}
	g.moveProjectiles()
	g.stepFormation()
	g.stepEnemyFire()
	g.animate()

	return Report{Events: g.events, Phase: g.phase}, nil
}

func (g *Game) applyIntents() {
	for _, id := range g.order {
		p := g.players[id]
		if p.hasMove {
			if p.pendingMove == Left {
				p.MoveLeft(g.field)
			} else {
				p.MoveRight(g.field)
			}
			p.hasMove = false
		}
		if p.trigger.pull(g.cfg.FireRepeatTicks) {
			g.firePlayerBullet(p)
		}
	}
}

func (g *Game) resolvePlayerBullets() {
	for _, id := range g.order {
		bullets := g.playerBullets[id]
		targets := g.Enemies()
		hits := findHits(bullets, targets, g.field, g.cfg.CellSize, true)
		if len(hits) == 0 {
			continue
		}

		p := g.players[id]
		spent := make(map[int]bool, len(hits))
		dead := make(map[int]bool, len(hits))
		for _, h := range hits {
			u := g.formation.Units[h.target]
			spent[h.bullet] = true
			dead[h.target] = true

			g.explode(u.X, u.Y)
			extra := p.AddToScore(u.HitScore)
			g.emit(Event{Kind: EnemyDestroyed, PlayerID: id, X: u.X, Y: u.Y, Value: u.HitScore})
			if extra {
				g.emit(Event{Kind: ExtraLife, PlayerID: id, Value: p.Lives})
			}
		}
		g.formation.remove(dead)
		g.playerBullets[id] = removeProjectiles(bullets, spent)
	}
}

func (g *Game) resolveEnemyBullets() {
	for _, id := range g.order {
		p := g.players[id]
		hits := findHits(g.enemyBullets, []Rect{p.Bounds()}, g.field, g.cfg.CellSize, false)
		if len(hits) == 0 {
			continue
		}

		spent := make(map[int]bool, len(hits))
		for _, h := range hits {
			spent[h.bullet] = true
			g.explode(p.X, p.Y)
			p.RemoveLife()
			g.emit(Event{Kind: PlayerHit, PlayerID: id, X: p.X, Y: p.Y, Value: p.Lives})
			if p.Lives == 0 {
				g.endGame(id)
			}
		}
		g.enemyBullets = removeProjectiles(g.enemyBullets, spent)
	}
}

func (g *Game) escalate() {
	g.diff.Escalate()
	g.spawnRows()
	g.emit(Event{Kind: LevelUp, Value: g.diff.Level})
}

func (g *Game) moveProjectiles() {
	for _, id := range g.order {
		g.playerBullets[id] = moveAll(g.playerBullets[id], g.field)
	}
	g.enemyBullets = moveAll(g.enemyBullets, g.field)
}

func (g *Game) stepFormation() {
	g.moveCooldown--
	if g.moveCooldown > 0 {
		return
	}
	g.moveCooldown = g.diff.MoveTicks
	g.formation.Move(g.field)
	g.checkInvasion()
}

// checkInvasion ends the game once the formation has come down to the ships.
func (g *Game) checkInvasion() {
	if len(g.formation.Units) == 0 || g.gameOver {
		return
	}
	shipTop := g.field.H
	for _, id := range g.order {
		shipTop = min(shipTop, g.players[id].Y)
	}
	if g.formation.Lowest() >= shipTop {
		g.emit(Event{Kind: Invaded, Y: shipTop})
		g.endGame("")
	}
}

func (g *Game) stepEnemyFire() {
	g.shotCooldown--
	if g.shotCooldown > 0 {
		return
	}
	g.shotCooldown = g.diff.ShotTicks
	if len(g.formation.Units) > 0 {
		_ = g.FireEnemyBullet()
	}
}

func (g *Game) animate() {
	for _, id := range g.order {
		g.players[id].Update()
		for _, b := range g.playerBullets[id] {
			b.Update()
		}
	}
	for _, u := range g.formation.Units {
		u.Update()
	}
	for _, b := range g.enemyBullets {
		b.Update()
	}

	kept := g.explosions[:0]
	for _, x := range g.explosions {
		if !x.Update() {
			kept = append(kept, x)
		}
	}
	clear(g.explosions[len(kept):])
	g.explosions = kept
}

func (g *Game) explode(x, y float64) {
	g.explosions = append(g.explosions, spawnExplosion(g.sprites.Explosion, x, y, g.field))
}

func (g *Game) endGame(id string) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.emit(Event{Kind: GameEnded, PlayerID: id})
}

func removeProjectiles(ps []*Projectile, spent map[int]bool) []*Projectile {
	kept := ps[:0]
	for i, p := range ps {
		if !spent[i] {
			kept = append(kept, p)
		}
	}
	clear(ps[len(kept):])
	return kept
}
