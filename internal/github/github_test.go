package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, user userInfo, repos []repoInfo, hits *int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/{username}", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		_ = json.NewEncoder(w).Encode(user)
	})
	mux.HandleFunc("GET /users/{username}/repos", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		_ = json.NewEncoder(w).Encode(repos)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestFetcher(baseURL string) *Fetcher {
	return NewFetcher(&Config{BaseURL: baseURL})
}

func TestFetchProfile_InvalidUsername(t *testing.T) {
	f := newTestFetcher("http://127.0.0.1:0")

	for _, username := range []string{"", "has space", "semi;colon", "way-too-long-username-exceeding-39-chars-limit", "dot.name"} {
		_, err := f.FetchProfile(context.Background(), username)
		require.Error(t, err, "username %q should be rejected", username)

		var ghErr *Error
		require.ErrorAs(t, err, &ghErr)
		assert.Equal(t, "invalid username", ghErr.Message)
	}
}

func TestFetchProfile_BuildsSummary(t *testing.T) {
	var hits int64
	srv := newTestServer(t, userInfo{PublicRepos: 25, Followers: 2}, []repoInfo{
		{Name: "classifier", Language: "Python", Stars: 12, Description: "Image **classifier** see https://example.com for docs"},
		{Name: "dotfiles", Language: "Shell", Stars: 1},
		{Name: "forked-thing", Language: "Python", Stars: 400, Fork: true},
	}, &hits)

	f := newTestFetcher(srv.URL)
	s, err := f.FetchProfile(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "Shell"}, s.TopLanguages)
	assert.Equal(t, "strong", s.ExperienceSignal) // 25 public repos

	// Forks are excluded from notable projects even with more stars.
	require.Len(t, s.NotableProjects, 2)
	assert.Equal(t, "classifier", s.NotableProjects[0].Name)

	// Description is sanitized: no URLs, no markdown.
	assert.NotContains(t, s.NotableProjects[0].About, "https://")
	assert.NotContains(t, s.NotableProjects[0].About, "*")
	assert.Contains(t, s.NotableProjects[0].About, "classifier")
}

func TestFetchProfile_CacheHit(t *testing.T) {
	var hits int64
	srv := newTestServer(t, userInfo{}, nil, &hits)

	f := newTestFetcher(srv.URL)
	_, err := f.FetchProfile(context.Background(), "octocat")
	require.NoError(t, err)
	firstHits := atomic.LoadInt64(&hits)

	// Same user, case-insensitive, within TTL: served from cache.
	_, err = f.FetchProfile(context.Background(), "OctoCat")
	require.NoError(t, err)
	assert.Equal(t, firstHits, atomic.LoadInt64(&hits))

	f.ClearCache()
	_, err = f.FetchProfile(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Greater(t, atomic.LoadInt64(&hits), firstHits)
}

func TestFetchProfile_UserEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	f := newTestFetcher(srv.URL)
	_, err := f.FetchProfile(context.Background(), "ghost")
	require.Error(t, err)

	var ghErr *Error
	assert.ErrorAs(t, err, &ghErr)
}

func TestFetchProfile_RepoFailureTolerated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/{username}", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(userInfo{PublicRepos: 3})
	})
	mux.HandleFunc("GET /users/{username}/repos", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	f := newTestFetcher(srv.URL)
	s, err := f.FetchProfile(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, s.NotableProjects)
	assert.Equal(t, "low", s.ExperienceSignal)
}

func TestExperienceSignal_Thresholds(t *testing.T) {
	tests := []struct {
		name  string
		user  userInfo
		stars int
		want  string
	}{
		{"empty profile", userInfo{}, 0, "low"},
		{"just below medium", userInfo{PublicRepos: 7, Followers: 4}, 9, "low"},
		{"repos reach medium", userInfo{PublicRepos: 8}, 0, "medium"},
		{"stars reach medium", userInfo{}, 10, "medium"},
		{"followers reach medium", userInfo{Followers: 5}, 0, "medium"},
		{"repos reach strong", userInfo{PublicRepos: 20}, 0, "strong"},
		{"stars reach strong", userInfo{}, 50, "strong"},
		{"followers reach strong", userInfo{Followers: 30}, 0, "strong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := []repoInfo{{Stars: tt.stars}}
			assert.Equal(t, tt.want, experienceSignal(tt.user, repos))
		})
	}
}

func TestInferDomain(t *testing.T) {
	tests := []struct {
		name      string
		languages []string
		repos     []repoInfo
		want      string
	}{
		{
			name:      "web stack",
			languages: []string{"JavaScript", "TypeScript", "CSS"},
			want:      "web development",
		},
		{
			name:      "ml stack",
			languages: []string{"Python", "Jupyter Notebook"},
			want:      "data science / ML",
		},
		{
			name:      "description keywords contribute",
			languages: []string{},
			repos:     []repoInfo{{Description: "react app with vue playground"}},
			want:      "web development",
		},
		{
			name:      "no signals",
			languages: []string{"COBOL"},
			want:      "general software development",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferDomain(tt.languages, tt.repos))
		})
	}
}

func TestSanitizeText(t *testing.T) {
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'a'
	}

	assert.Equal(t, "", sanitizeText(""))
	assert.Equal(t, "clean text", sanitizeText("  clean\n\ntext  "))
	assert.Equal(t, "docs at", sanitizeText("docs at https://example.com/path"))
	assert.Equal(t, "bold link", sanitizeText("**bold** [link](https://example.com)"))
	assert.Len(t, sanitizeText(string(long)), 500)
}

func TestFormatContext(t *testing.T) {
	assert.Equal(t, "", FormatContext(nil))

	s := &Summary{
		TopLanguages:     []string{"Go", "Python"},
		PrimaryDomain:    "backend development",
		ExperienceSignal: "medium",
		NotableProjects: []Project{
			{Name: "svc", Language: "Go", Stars: 7, About: "small service"},
		},
	}
	out := FormatContext(s)
	assert.Contains(t, out, "Languages: Go, Python")
	assert.Contains(t, out, "Primary Domain: backend development")
	assert.Contains(t, out, "Experience Signal: medium")
	assert.Contains(t, out, "svc (Go, 7★)")
}

func TestFormatContext_EmptySummaryDefaults(t *testing.T) {
	out := FormatContext(&Summary{})
	assert.Contains(t, out, "Languages: N/A")
	assert.Contains(t, out, "Experience Signal: low")
}
