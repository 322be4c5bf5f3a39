package domain

// Archetype identifies one of the six trading personalities the classifier
// can assign.
type Archetype string

const (
	ArchetypeSurgeon       Archetype = "surgeon"
	ArchetypeSniper        Archetype = "sniper"
	ArchetypeMomentumRider Archetype = "momentum_rider"
	ArchetypeContrarian    Archetype = "contrarian"
	ArchetypeGuardian      Archetype = "guardian"
	ArchetypeHunter        Archetype = "hunter"
)

// Archetypes lists every archetype in classification order. The order is
// load-bearing: score ties resolve to the earliest entry.
var Archetypes = []Archetype{
	ArchetypeSurgeon,
	ArchetypeSniper,
	ArchetypeMomentumRider,
	ArchetypeContrarian,
	ArchetypeGuardian,
	ArchetypeHunter,
}

// ArchetypeDisplayName maps archetypes to their user-facing names.
var ArchetypeDisplayName = map[Archetype]string{
	ArchetypeSurgeon:       "The Surgeon",
	ArchetypeSniper:        "The Sniper",
	ArchetypeMomentumRider: "The Momentum Rider",
	ArchetypeContrarian:    "The Contrarian",
	ArchetypeGuardian:      "The Guardian",
	ArchetypeHunter:        "The Hunter",
}

func (a Archetype) IsValid() bool {
	_, ok := ArchetypeDisplayName[a]
	return ok
}

// ArchetypeMatch is the classifier verdict: the best-fitting archetype and
// how strongly the profile matches it, 0-100.
type ArchetypeMatch struct {
	Archetype  Archetype `json:"archetype"`
	Confidence int       `json:"confidence"`
}
