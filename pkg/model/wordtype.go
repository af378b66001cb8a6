package model

// WordType is a bitmask over verb/adjective conjugation categories plus
// intermediate-stem markers used as non-terminal waypoints in the
// deinflection graph. Width is at least 16 bits per spec.
type WordType uint32

const (
	IchidanVerb WordType = 1 << iota
	GodanVerb
	GodanVerbU
	GodanVerbTsu
	GodanVerbRu
	GodanVerbKu
	GodanVerbGu
	GodanVerbMu
	GodanVerbNu
	GodanVerbBu
	GodanVerbSu
	GodanVerbAru
	KuruVerb
	SuruVerb
	SpecialSuruVerb
	NounVS
	IAdj

	// Intermediate-only stem markers. These never appear in WordType.All and
	// exist purely to steer the deinflection engine's stem-forwarding step.
	MasuStem
	TaTeStem
	DaDeStem
	IrrealisStem
)

// All is the union of every terminal (dictionary-form) category. Only
// candidates whose type intersects All survive deinflect's final filter.
const All = IchidanVerb | GodanVerb | GodanVerbU | GodanVerbTsu | GodanVerbRu |
	GodanVerbKu | GodanVerbGu | GodanVerbMu | GodanVerbNu | GodanVerbBu |
	GodanVerbSu | GodanVerbAru | KuruVerb | SuruVerb | SpecialSuruVerb |
	NounVS | IAdj

// stemMask is the union of every intermediate-only stem marker.
const stemMask = MasuStem | TaTeStem | DaDeStem | IrrealisStem

// Has reports whether any bit of other is set in w.
func (w WordType) Has(other WordType) bool {
	return w&other != 0
}

// IsTerminal reports whether w intersects the terminal category set.
func (w WordType) IsTerminal() bool {
	return w.Has(All)
}

// IsStemOnly reports whether w is purely an intermediate stem marker (no
// terminal bits set).
func (w WordType) IsStemOnly() bool {
	return w.Has(stemMask) && !w.IsTerminal()
}
