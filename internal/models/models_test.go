package models

import (
	"encoding/json"
	"testing"
)

func TestMovie(t *testing.T) {
	t.Run("decodes API payload", func(t *testing.T) {
		payload := `{
			"_id": "m1",
			"Title": "Silence of the Lambs",
			"Description": "A young FBI cadet...",
			"Genre": {"Name": "Thriller", "Description": "Suspense"},
			"Director": {"Name": "Jonathan Demme", "Bio": "American director", "Birth": "1944"},
			"ImagePath": "silence.png",
			"Featured": true,
			"Actors": ["Jodie Foster"]
		}`

		var m Movie
		if err := json.Unmarshal([]byte(payload), &m); err != nil {
			t.Fatalf("failed to decode movie: %v", err)
		}

		if m.ID != "m1" || m.Genre.Name != "Thriller" || m.Director.Bio != "American director" {
			t.Errorf("unexpected movie %+v", m)
		}
		if !m.Featured {
			t.Error("expected featured movie")
		}
	})

	t.Run("FindMovie", func(t *testing.T) {
		movies := []Movie{{ID: "m1", Title: "Alien"}, {ID: "m2", Title: "Heat"}}

		if m, ok := FindMovie(movies, "m2"); !ok || m.Title != "Heat" {
			t.Errorf("expected lookup by id, got %+v", m)
		}
		if m, ok := FindMovie(movies, "alien"); !ok || m.ID != "m1" {
			t.Errorf("expected case-insensitive title lookup, got %+v", m)
		}
		if _, ok := FindMovie(movies, "m9"); ok {
			t.Error("expected no match")
		}
	})
}

func TestUser(t *testing.T) {
	t.Run("decodes favorites", func(t *testing.T) {
		payload := `{"_id":"u1","Username":"alice","Email":"a@x.io","Birthday":"1990-05-01T00:00:00.000Z","movieFav":["m1","m3"]}`

		var u User
		if err := json.Unmarshal([]byte(payload), &u); err != nil {
			t.Fatalf("failed to decode user: %v", err)
		}
		if len(u.FavoriteMovies) != 2 || u.FavoriteMovies[1] != "m3" {
			t.Errorf("unexpected favorites %v", u.FavoriteMovies)
		}
		if u.BirthdayDate() != "1990-05-01" {
			t.Errorf("BirthdayDate() = %s", u.BirthdayDate())
		}
	})

	t.Run("missing fields stay zero", func(t *testing.T) {
		var u User
		if err := json.Unmarshal([]byte(`{"Username":"bob"}`), &u); err != nil {
			t.Fatalf("failed to decode user: %v", err)
		}
		if u.FavoriteMovies != nil || u.Email != "" {
			t.Errorf("unexpected user %+v", u)
		}
	})
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		details UserDetails
		wantErr bool
	}{
		{name: "complete", details: UserDetails{Username: "a", Password: "p", Email: "a@x.io", Birthday: "1990-01-02"}},
		{name: "no birthday", details: UserDetails{Username: "a", Password: "p", Email: "a@x.io"}},
		{name: "missing username", details: UserDetails{Password: "p", Email: "a@x.io"}, wantErr: true},
		{name: "missing password", details: UserDetails{Username: "a", Email: "a@x.io"}, wantErr: true},
		{name: "missing email", details: UserDetails{Username: "a", Password: "p"}, wantErr: true},
		{name: "bad birthday", details: UserDetails{Username: "a", Password: "p", Email: "a@x.io", Birthday: "01/02/1990"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.details.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	t.Run("Credentials", func(t *testing.T) {
		if err := (Credentials{Username: "a", Password: "p"}).Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if err := (Credentials{Username: " "}).Validate(); err == nil {
			t.Error("expected error for blank username")
		}
	})
}
