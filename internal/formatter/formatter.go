// package formatter provides functions to export movie catalogs to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/shared"
)

// Format is an export format name.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// ParseFormat normalizes a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: unknown format %q (want csv, markdown, text or json)", shared.ErrInvalidFlag, s)
}

// Extension returns the file extension used for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	default:
		return "." + string(f)
	}
}

// ExportToCSV converts a Catalog to CSV format with columns: ID, Title, Genre, Director, Featured, Favorite
func ExportToCSV(catalog *models.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Genre", "Director", "Featured", "Favorite"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range catalog.Movies {
		record := []string{
			movie.ID,
			movie.Title,
			movie.Genre.Name,
			movie.Director.Name,
			strconv.FormatBool(movie.Featured),
			strconv.FormatBool(catalog.IsFavorite(movie.ID)),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a Catalog to Markdown with one section per movie
func ExportToMarkdown(catalog *models.Catalog) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", catalog.Name))
	if catalog.Username != "" {
		buf.WriteString(fmt.Sprintf("**User**: %s\n", catalog.Username))
	}
	buf.WriteString(fmt.Sprintf("**Movies**: %d\n\n", len(catalog.Movies)))

	for i, movie := range catalog.Movies {
		star := ""
		if catalog.IsFavorite(movie.ID) {
			star = " ★"
		}
		buf.WriteString(fmt.Sprintf("## %d. %s%s\n\n", i+1, movie.Title, star))
		if movie.ImagePath != "" {
			buf.WriteString(fmt.Sprintf("![Poster](%s)\n\n", movie.ImagePath))
		}
		buf.WriteString(fmt.Sprintf("- **Genre**: %s\n", movie.Genre.Name))
		buf.WriteString(fmt.Sprintf("- **Director**: %s\n\n", movie.Director.Name))
		if movie.Description != "" {
			buf.WriteString(movie.Description + "\n\n")
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a Catalog to plain text format
func ExportToText(catalog *models.Catalog) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Catalog: %s\n", catalog.Name))
	buf.WriteString(fmt.Sprintf("Movies: %d\n\n", len(catalog.Movies)))

	for i, movie := range catalog.Movies {
		marker := " "
		if catalog.IsFavorite(movie.ID) {
			marker = "*"
		}
		buf.WriteString(fmt.Sprintf("%s %d. %s (%s, dir. %s)\n", marker, i+1, movie.Title, movie.Genre.Name, movie.Director.Name))
	}

	return buf.Bytes(), nil
}

// ExportToJSON encodes the whole catalog as indented JSON
func ExportToJSON(catalog *models.Catalog) ([]byte, error) {
	return shared.MarshalJSON(catalog, true)
}

// CatalogMetadata summarizes a catalog without its movies.
type CatalogMetadata struct {
	Name       string    `json:"name"`
	Username   string    `json:"username,omitempty"`
	MovieCount int       `json:"movie_count"`
	Favorites  int       `json:"favorites"`
	ExportedAt time.Time `json:"exported_at"`
}

// ToMetadataJSON generates a JSON representation of catalog metadata (without movies)
func ToMetadataJSON(catalog *models.Catalog, now time.Time) ([]byte, error) {
	count := 0
	for _, m := range catalog.Movies {
		if catalog.IsFavorite(m.ID) {
			count++
		}
	}
	return shared.MarshalJSON(CatalogMetadata{
		Name:       catalog.Name,
		Username:   catalog.Username,
		MovieCount: len(catalog.Movies),
		Favorites:  count,
		ExportedAt: now.UTC(),
	}, true)
}

// Export renders catalog in the given format.
func Export(catalog *models.Catalog, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(catalog)
	case FormatMarkdown:
		return ExportToMarkdown(catalog)
	case FormatText:
		return ExportToText(catalog)
	case FormatJSON:
		return ExportToJSON(catalog)
	}
	return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
}

// ExportResult contains the paths of files created by WriteExport
type ExportResult struct {
	File         string
	MetadataFile string
}

// WriteExport writes catalog to path in format, with a {base}_metadata.json file beside it.
//
// The path defaults to {catalog name}{extension} in the working directory.
func WriteExport(catalog *models.Catalog, format Format, path string) (*ExportResult, error) {
	if path == "" {
		path = slug(catalog.Name) + format.Extension()
	}

	data, err := Export(catalog, format)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write export file: %w", err)
	}

	metadata, err := ToMetadataJSON(catalog, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := strings.TrimSuffix(path, filepath.Ext(path)) + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadata, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &ExportResult{File: path, MetadataFile: metadataFile}, nil
}

func slug(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "catalog"
	}
	return strings.Join(strings.Fields(name), "_")
}
