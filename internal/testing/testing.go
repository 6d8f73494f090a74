// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/myflix/internal/models"
)

// MockMovieService is a test double for [services.MovieService].
//
// Each method delegates to the matching func field when set and otherwise
// returns zero values. Calls are recorded by method name.
type MockMovieService struct {
	ListMoviesFunc     func(ctx context.Context) ([]models.Movie, error)
	GetMovieFunc       func(ctx context.Context, title string) (*models.Movie, error)
	GetDirectorFunc    func(ctx context.Context, name string) (*models.Director, error)
	GetGenreFunc       func(ctx context.Context, name string) (*models.Genre, error)
	RegisterFunc       func(ctx context.Context, details models.UserDetails) (*models.User, error)
	LoginFunc          func(ctx context.Context, credentials models.Credentials) (*models.LoginResult, error)
	GetUserFunc        func(ctx context.Context, username string) (*models.User, error)
	AddFavoriteFunc    func(ctx context.Context, movieID string) ([]string, error)
	RemoveFavoriteFunc func(ctx context.Context, movieID string) ([]string, error)
	EditUserFunc       func(ctx context.Context, details models.UserDetails) (*models.User, error)
	DeleteUserFunc     func(ctx context.Context) error

	mu    sync.Mutex
	calls []string
}

func (m *MockMovieService) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

// Calls returns the recorded method names in call order.
func (m *MockMovieService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Called counts calls to the named method.
func (m *MockMovieService) Called(name string) int {
	n := 0
	for _, c := range m.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	m.record("ListMovies")
	if m.ListMoviesFunc != nil {
		return m.ListMoviesFunc(ctx)
	}
	return []models.Movie{}, nil
}

func (m *MockMovieService) GetMovie(ctx context.Context, title string) (*models.Movie, error) {
	m.record("GetMovie")
	if m.GetMovieFunc != nil {
		return m.GetMovieFunc(ctx, title)
	}
	return &models.Movie{Title: title}, nil
}

func (m *MockMovieService) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	m.record("GetDirector")
	if m.GetDirectorFunc != nil {
		return m.GetDirectorFunc(ctx, name)
	}
	return &models.Director{Name: name}, nil
}

func (m *MockMovieService) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	m.record("GetGenre")
	if m.GetGenreFunc != nil {
		return m.GetGenreFunc(ctx, name)
	}
	return &models.Genre{Name: name}, nil
}

func (m *MockMovieService) Register(ctx context.Context, details models.UserDetails) (*models.User, error) {
	m.record("Register")
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, details)
	}
	return &models.User{Username: details.Username, Email: details.Email}, nil
}

func (m *MockMovieService) Login(ctx context.Context, credentials models.Credentials) (*models.LoginResult, error) {
	m.record("Login")
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, credentials)
	}
	return &models.LoginResult{User: models.User{Username: credentials.Username}, Token: "token"}, nil
}

func (m *MockMovieService) GetUser(ctx context.Context, username string) (*models.User, error) {
	m.record("GetUser")
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, username)
	}
	return &models.User{Username: username}, nil
}

func (m *MockMovieService) AddFavorite(ctx context.Context, movieID string) ([]string, error) {
	m.record("AddFavorite")
	if m.AddFavoriteFunc != nil {
		return m.AddFavoriteFunc(ctx, movieID)
	}
	return nil, nil
}

func (m *MockMovieService) RemoveFavorite(ctx context.Context, movieID string) ([]string, error) {
	m.record("RemoveFavorite")
	if m.RemoveFavoriteFunc != nil {
		return m.RemoveFavoriteFunc(ctx, movieID)
	}
	return nil, nil
}

func (m *MockMovieService) EditUser(ctx context.Context, details models.UserDetails) (*models.User, error) {
	m.record("EditUser")
	if m.EditUserFunc != nil {
		return m.EditUserFunc(ctx, details)
	}
	return &models.User{Username: details.Username, Email: details.Email, Birthday: details.Birthday}, nil
}

func (m *MockMovieService) DeleteUser(ctx context.Context) error {
	m.record("DeleteUser")
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx)
	}
	return nil
}

// SampleMovies returns a small catalog with ids m1, m2 and m3.
func SampleMovies() []models.Movie {
	return []models.Movie{
		{
			ID: "m1", Title: "Alien", Description: "In space no one can hear you scream.",
			Genre:    models.Genre{Name: "Horror", Description: "Meant to frighten."},
			Director: models.Director{Name: "Ridley Scott", Bio: "English filmmaker."},
		},
		{
			ID: "m2", Title: "Heat", Description: "A group of bank robbers.",
			Genre:    models.Genre{Name: "Crime", Description: "Centered on crime."},
			Director: models.Director{Name: "Michael Mann", Bio: "American director."},
		},
		{
			ID: "m3", Title: "Arrival", Description: "A linguist works with aliens.",
			Genre:    models.Genre{Name: "Science Fiction", Description: "Speculative."},
			Director: models.Director{Name: "Denis Villeneuve", Bio: "Canadian filmmaker."},
			Featured: true,
		},
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
