package spawners

import (
	"ebiten-ski/ecs"
	"ebiten-ski/gamelog"
)

// SpawnTableEntry is one kind of thing that may appear on the slope
type SpawnTableEntry struct {
	Tag   string // Template tag to pick from, weighted by spawn weight
	OneIn int    // Chance per cycle is one in OneIn
	Above bool   // Appear above the screen instead of below
}

// SpawnTable fills the slope ahead of a moving skier
type SpawnTable struct {
	Entries []SpawnTableEntry

	spawner *EntitySpawner
	// Distance the skier must cover before a monster comes
	monsterDistance float64
	nextMonster     float64
	monsterSpawned  bool
}

// NewSpawnTable creates the spawn table from the configured chances
func NewSpawnTable(spawner *EntitySpawner) *SpawnTable {
	sc := spawner.cfg.Spawn
	return &SpawnTable{
		Entries: []SpawnTableEntry{
			{Tag: "obstacle", OneIn: sc.ObstacleOneIn},
			{Tag: "jump", OneIn: sc.JumpOneIn},
			{Tag: "drifter", OneIn: sc.SnowboarderOneIn, Above: true},
		},
		spawner:         spawner,
		monsterDistance: sc.MonsterDistance,
		nextMonster:     sc.MonsterDistance,
	}
}

// Reset lets another monster come once the skier has covered the monster
// distance again
func (t *SpawnTable) Reset() {
	t.monsterSpawned = false
	if sk := t.spawner.Skier(); sk != nil {
		t.nextMonster = sk.Distance() + t.monsterDistance
	}
}

// Update rolls every entry once. Nothing spawns while the skier stands still.
func (t *SpawnTable) Update(world *ecs.World) {
	sk := t.spawner.Skier()
	if sk == nil || sk.Deleted() || !sk.IsMoving {
		return
	}
	rng := t.spawner.rng

	for _, entry := range t.Entries {
		if entry.OneIn <= 0 || rng.Intn(entry.OneIn) != 0 {
			continue
		}
		template, ok := t.spawner.templateManager.PickWeighted(rng, entry.Tag)
		if !ok {
			continue
		}

		var x, y float64
		if entry.Above {
			x, y = t.spawner.viewport.RandomMapPositionAboveViewport(rng)
		} else {
			x, y = t.spawner.viewport.RandomMapPositionBelowViewport(rng)
		}
		if _, err := t.spawner.Create(template.ID, x, y); err != nil {
			gamelog.Errorf("spawn %s: %v", template.ID, err)
		}
	}

	if !t.monsterSpawned && sk.Distance() >= t.nextMonster {
		template, ok := t.spawner.templateManager.PickWeighted(rng, "pursuer")
		if !ok {
			return
		}
		x, y := t.spawner.viewport.RandomMapPositionAboveViewport(rng)
		if _, err := t.spawner.CreateMonster(template.ID, x, y); err != nil {
			gamelog.Errorf("spawn %s: %v", template.ID, err)
			return
		}
		t.monsterSpawned = true
	}
}
