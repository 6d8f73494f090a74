// package favorites tracks the user's favorite movie ids
package favorites

import (
	"slices"

	"github.com/desertthunder/myflix/internal/models"
)

// List is an ordered set of movie ids.
type List struct {
	ids []string
}

// New builds a [List] from ids, dropping duplicates and empty ids while keeping first-seen order.
func New(ids []string) *List {
	l := &List{}
	for _, id := range ids {
		l.Add(id)
	}
	return l
}

// Contains reports whether id is a favorite.
func (l *List) Contains(id string) bool {
	return slices.Contains(l.ids, id)
}

// Add appends id if absent. It reports whether the list changed.
func (l *List) Add(id string) bool {
	if id == "" || l.Contains(id) {
		return false
	}
	l.ids = append(l.ids, id)
	return true
}

// Remove deletes id if present. It reports whether the list changed.
func (l *List) Remove(id string) bool {
	i := slices.Index(l.ids, id)
	if i < 0 {
		return false
	}
	l.ids = slices.Delete(l.ids, i, i+1)
	return true
}

// Toggle flips membership of id and returns the new state.
func (l *List) Toggle(id string) bool {
	if l.Remove(id) {
		return false
	}
	return l.Add(id)
}

// Replace swaps the contents for ids, as returned by the server.
func (l *List) Replace(ids []string) {
	l.ids = nil
	for _, id := range ids {
		l.Add(id)
	}
}

// IDs returns a copy of the ids in order.
func (l *List) IDs() []string {
	return slices.Clone(l.ids)
}

// Len returns the number of favorites.
func (l *List) Len() int {
	return len(l.ids)
}

// Filter returns the movies whose id is in l, in catalog order.
func Filter(movies []models.Movie, l *List) []models.Movie {
	out := []models.Movie{}
	if l == nil {
		return out
	}
	for _, m := range movies {
		if l.Contains(m.ID) {
			out = append(out, m)
		}
	}
	return out
}
