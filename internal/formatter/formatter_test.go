package formatter

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/shared"
	th "github.com/desertthunder/myflix/internal/testing"
)

func sampleCatalog() *models.Catalog {
	movies := th.SampleMovies()
	movies[0].Title = "Alien, Director's Cut"
	movies[1].ImagePath = "https://img.test/heat.png"
	return &models.Catalog{
		Name:        "All Movies",
		Username:    "alice",
		Movies:      movies,
		FavoriteIDs: []string{"m2"},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleCatalog())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "ID,Title,Genre,Director,Featured,Favorite") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, `m1,"Alien, Director's Cut",Horror,Ridley Scott,false,false`) {
			t.Errorf("CSV missing quoted m1 row, got: %s", output)
		}
		if !strings.Contains(output, "m2,Heat,Crime,Michael Mann,false,true") {
			t.Errorf("CSV missing favorite m2 row, got: %s", output)
		}
		if !strings.Contains(output, "m3,Arrival,Science Fiction,Denis Villeneuve,true,false") {
			t.Errorf("CSV missing featured m3 row, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleCatalog())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# All Movies",
			"**User**: alice",
			"**Movies**: 3",
			"## 2. Heat ★",
			"![Poster](https://img.test/heat.png)",
			"- **Director**: Denis Villeneuve",
			"A linguist works with aliens.",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got: %s", want, output)
			}
		}
		if strings.Contains(output, "Arrival ★") {
			t.Error("non-favorite should not be starred")
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(sampleCatalog())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Catalog: All Movies") {
			t.Errorf("text missing header, got: %s", output)
		}
		if !strings.Contains(output, "* 2. Heat (Crime, dir. Michael Mann)") {
			t.Errorf("text missing favorite marker, got: %s", output)
		}
		if !strings.Contains(output, "  3. Arrival") {
			t.Errorf("text missing plain row, got: %s", output)
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(sampleCatalog())
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		var decoded models.Catalog
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(decoded.Movies) != 3 || decoded.Movies[0].ID != "m1" {
			t.Errorf("unexpected decoded catalog %+v", decoded)
		}
	})

	t.Run("ToMetadataJSON", func(t *testing.T) {
		now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		data, err := ToMetadataJSON(sampleCatalog(), now)
		if err != nil {
			t.Fatalf("ToMetadataJSON failed: %v", err)
		}

		var meta CatalogMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if meta.MovieCount != 3 || meta.Favorites != 1 || !meta.ExportedAt.Equal(now) {
			t.Errorf("unexpected metadata %+v", meta)
		}
	})
}

func TestParseFormat(t *testing.T) {
	tc := []struct {
		in   string
		want Format
	}{
		{"csv", FormatCSV},
		{" MD ", FormatMarkdown},
		{"markdown", FormatMarkdown},
		{"txt", FormatText},
		{"json", FormatJSON},
	}

	for _, tt := range tc {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		if _, err := ParseFormat("xml"); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}

func TestWriteExport(t *testing.T) {
	t.Run("writes file and metadata", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out", "movies.csv")

		result, err := WriteExport(sampleCatalog(), FormatCSV, path)
		if err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}

		th.AssertFileExists(t, result.File)
		th.AssertFileExists(t, result.MetadataFile)

		if result.MetadataFile != filepath.Join(dir, "out", "movies_metadata.json") {
			t.Errorf("unexpected metadata path %s", result.MetadataFile)
		}
		if content := th.MustReadFile(t, result.File); !strings.Contains(content, "Heat") {
			t.Errorf("export file missing content: %s", content)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := WriteExport(sampleCatalog(), Format("xml"), filepath.Join(t.TempDir(), "x")); err == nil {
			t.Error("expected error for unknown format")
		}
	})

	t.Run("slug", func(t *testing.T) {
		if got := slug("  My Favorite  Movies "); got != "my_favorite_movies" {
			t.Errorf("slug() = %s", got)
		}
		if got := slug(""); got != "catalog" {
			t.Errorf("slug() = %s", got)
		}
	})
}
