package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
)

// registry indexes descriptors by id and grade.
type registry struct {
	mu      sync.RWMutex
	games   []Descriptor
	byID    map[string]int
	byGrade map[int][]Descriptor
}

// reg is the package-level catalog, built from seedGames in init.
var reg *registry

func init() {
	games := seedGames()
	if err := validateGames(games); err != nil {
		panic(fmt.Sprintf("catalog: invalid seed games: %v", err))
	}
	reg = newRegistry(games)
}

func newRegistry(games []Descriptor) *registry {
	r := &registry{
		byID:    make(map[string]int, len(games)),
		byGrade: make(map[int][]Descriptor),
	}
	for _, d := range games {
		r.add(d)
	}
	return r
}

func (r *registry) add(d Descriptor) {
	r.byID[d.ID] = len(r.games)
	r.games = append(r.games, d)
	r.byGrade[d.Grade] = append(r.byGrade[d.Grade], d)
}

// Get returns a game by id, or an error if it is not in the catalog.
func Get(id string) (Descriptor, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	i, ok := reg.byID[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("game not found: %q", id)
	}
	return reg.games[i], nil
}

// Exists reports whether id is in the catalog.
func Exists(id string) bool {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	_, ok := reg.byID[id]
	return ok
}

// All returns every game in catalog order.
func All() []Descriptor {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return slices.Clone(reg.games)
}

// ByGrade returns the games of one grade in catalog order.
func ByGrade(grade int) []Descriptor {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return slices.Clone(reg.byGrade[grade])
}

// Grades returns the grades that have at least one game, ascending.
func Grades() []int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	grades := make([]int, 0, len(reg.byGrade))
	for g := range reg.byGrade {
		grades = append(grades, g)
	}
	sort.Ints(grades)
	return grades
}

// Register adds a game to the catalog. Ids must be unique.
func Register(d Descriptor) error {
	if err := validateGames([]Descriptor{d}); err != nil {
		return err
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.byID[d.ID]; ok {
		return fmt.Errorf("duplicate game ID: %q", d.ID)
	}
	reg.add(d)
	return nil
}

// validateGames performs the structural checks on a set of descriptors and
// returns every problem found.
func validateGames(games []Descriptor) error {
	var errs []error
	seen := make(map[string]bool, len(games))
	for _, d := range games {
		if d.ID == "" {
			errs = append(errs, errors.New("game with empty ID"))
			continue
		}
		if seen[d.ID] {
			errs = append(errs, fmt.Errorf("duplicate game ID: %q", d.ID))
		}
		seen[d.ID] = true
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("game %q has no name", d.ID))
		}
		if d.Grade < 1 || d.Grade > 5 {
			errs = append(errs, fmt.Errorf("game %q has grade %d outside 1-5", d.ID, d.Grade))
		}
		if d.Build == nil && !d.IsTower() {
			errs = append(errs, fmt.Errorf("game %q has no level builder", d.ID))
		}
	}
	return errors.Join(errs...)
}
