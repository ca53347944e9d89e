package wfc

import (
	"github.com/zyedidia/generic/mapset"
)

// Rule lists, per direction, which terrains may sit next to a cell holding Terrain
type Rule struct {
	Terrain Terrain
	Allowed map[Direction]mapset.Set[Terrain]
}

// Uniform builds a rule that permits the same neighbours in all eight directions
func Uniform(t Terrain, allowed ...Terrain) Rule {
	r := Rule{
		Terrain: t,
		Allowed: make(map[Direction]mapset.Set[Terrain]),
	}
	for _, dir := range AllDirections() {
		set := mapset.New[Terrain]()
		for _, a := range allowed {
			set.Put(a)
		}
		r.Allowed[dir] = set
	}
	return r
}

// Rules is the static adjacency table consulted during propagation.
// It is never mutated after construction.
type Rules struct {
	order  []Terrain
	byType map[Terrain]Rule
}

// NewRules builds a table from the given rules. A later rule for the same
// terrain replaces an earlier one.
func NewRules(rules ...Rule) *Rules {
	r := &Rules{
		byType: make(map[Terrain]Rule),
	}
	for _, rule := range rules {
		if _, exists := r.byType[rule.Terrain]; !exists {
			r.order = append(r.order, rule.Terrain)
		}
		r.byType[rule.Terrain] = rule
	}
	return r
}

// DefaultRules returns the terrain adjacency table used for map generation
func DefaultRules() *Rules {
	return NewRules(
		Uniform(Grass, Grass, Forest, Water),
		Uniform(Forest, Forest, Grass, Mountain),
		Uniform(Mountain, Mountain, Forest),
		Uniform(Water, Water, Grass),
		// The border does not constrain its interior neighbour beyond "real terrain"
		Uniform(Empty, Water, Grass, Mountain, Forest),
	)
}

// List returns the rules in the order they were added
func (r *Rules) List() []Rule {
	rules := make([]Rule, 0, len(r.order))
	for _, t := range r.order {
		rules = append(rules, r.byType[t])
	}
	return rules
}

// Permitted returns the set of terrains allowed in direction dir of a cell
// holding t. ok is false when the table has no entry for t or dir.
func (r *Rules) Permitted(t Terrain, dir Direction) (mapset.Set[Terrain], bool) {
	var none mapset.Set[Terrain]
	rule, ok := r.byType[t]
	if !ok {
		return none, false
	}
	set, ok := rule.Allowed[dir]
	return set, ok
}

// Allows reports whether neighbour may appear in direction dir of a cell holding t
func (r *Rules) Allows(t Terrain, dir Direction, neighbour Terrain) bool {
	set, ok := r.Permitted(t, dir)
	if !ok {
		return false
	}
	return set.Has(neighbour)
}

// Asymmetry records a one-sided adjacency: To is allowed in Direction of From,
// but From is not allowed in the opposite direction of To.
type Asymmetry struct {
	From      Terrain
	Direction Direction
	To        Terrain
}

// Asymmetries checks the table for one-sided adjacencies
func (r *Rules) Asymmetries() []Asymmetry {
	var found []Asymmetry
	for _, from := range r.order {
		for _, dir := range AllDirections() {
			allowed, ok := r.Permitted(from, dir)
			if !ok {
				continue
			}
			for _, to := range sortedTerrain(allowed) {
				if !r.Allows(to, dir.Opposite(), from) {
					found = append(found, Asymmetry{From: from, Direction: dir, To: to})
				}
			}
		}
	}
	return found
}

// sortedTerrain returns the members of set in enum order
func sortedTerrain(set mapset.Set[Terrain]) []Terrain {
	var out []Terrain
	for _, t := range AllTerrain() {
		if set.Has(t) {
			out = append(out, t)
		}
	}
	return out
}
