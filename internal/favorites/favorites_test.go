package favorites

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/desertthunder/myflix/internal/models"
)

func titles(movies []models.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func TestList(t *testing.T) {
	t.Run("New drops duplicates", func(t *testing.T) {
		l := New([]string{"m1", "m2", "m1", "", "m3"})
		if got := l.IDs(); !slices.Equal(got, []string{"m1", "m2", "m3"}) {
			t.Errorf("IDs() = %v", got)
		}
	})

	t.Run("Add and Remove report changes", func(t *testing.T) {
		l := New(nil)
		if !l.Add("m1") || l.Add("m1") {
			t.Error("Add should report change only once")
		}
		if !l.Remove("m1") || l.Remove("m1") {
			t.Error("Remove should report change only once")
		}
		if l.Len() != 0 {
			t.Errorf("expected empty list, got %v", l.IDs())
		}
	})

	t.Run("Toggle", func(t *testing.T) {
		l := New([]string{"m1"})
		if l.Toggle("m2") != true || !l.Contains("m2") {
			t.Error("toggling absent id should add it")
		}
		if l.Toggle("m1") != false || l.Contains("m1") {
			t.Error("toggling present id should remove it")
		}
	})

	t.Run("Replace", func(t *testing.T) {
		l := New([]string{"m1"})
		l.Replace([]string{"m3", "m3", "m2"})
		if got := l.IDs(); !slices.Equal(got, []string{"m3", "m2"}) {
			t.Errorf("IDs() = %v", got)
		}
	})

	t.Run("IDs returns a copy", func(t *testing.T) {
		l := New([]string{"m1"})
		ids := l.IDs()
		ids[0] = "changed"
		if !l.Contains("m1") {
			t.Error("mutating IDs() must not change the list")
		}
	})
}

func TestToggleTwiceRestores(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	pool := []string{"m1", "m2", "m3", "m4", "m5"}

	for i := range 200 {
		var start []string
		for _, id := range pool {
			if r.IntN(2) == 0 {
				start = append(start, id)
			}
		}
		l := New(start)
		id := pool[r.IntN(len(pool))]
		before := l.Contains(id)

		l.Toggle(id)
		l.Toggle(id)

		if l.Contains(id) != before {
			t.Fatalf("case %d: membership of %s changed after double toggle", i, id)
		}
		if l.Len() != len(start) {
			t.Fatalf("case %d: length changed from %d to %d", i, len(start), l.Len())
		}
	}
}

func TestFilter(t *testing.T) {
	movies := []models.Movie{{ID: "m1"}, {ID: "m2"}, {ID: "m3"}}

	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{name: "keeps catalog order", ids: []string{"m3", "m1"}, want: []string{"m1", "m3"}},
		{name: "unknown ids ignored", ids: []string{"m9", "m2"}, want: []string{"m2"}},
		{name: "empty", ids: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Filter(movies, New(tt.ids)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("subset property", func(t *testing.T) {
		r := rand.New(rand.NewPCG(3, 4))
		for range 100 {
			var ids []string
			for _, m := range movies {
				if r.IntN(2) == 0 {
					ids = append(ids, m.ID)
				}
			}
			r.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

			l := New(ids)
			got := Filter(movies, l)
			if len(got) != l.Len() {
				t.Fatalf("expected %d movies, got %d", l.Len(), len(got))
			}

			last := -1
			for _, m := range got {
				idx := slices.IndexFunc(movies, func(x models.Movie) bool { return x.ID == m.ID })
				if idx <= last {
					t.Fatalf("result not in catalog order: %v", titles(got))
				}
				last = idx
			}
		}
	})

	t.Run("nil list", func(t *testing.T) {
		if got := Filter(movies, nil); len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
	})
}
