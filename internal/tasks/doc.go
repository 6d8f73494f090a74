// Package tasks composes [services.MovieService] calls into the loads shared by the TUI and CLI.
//
// # Core Operations
//
//  1. [LoadCatalog] : movie list view
//     - Fetches the movie list and the user record concurrently
//     - A user record failure is reported in [CatalogResult.FavoritesErr]; the list still loads
//
//  2. [LoadProfile] : profile view
//     - Chained: user record, then movie list, then favorites filter
//     - Favorites keep catalog order
//
//  3. [LoadMovieDetails] : synopsis, director and genre lookups for one movie, concurrently
//
//  4. [ExportCatalog] : writes the catalog (or only the favorites) with [formatter.WriteExport]
package tasks
