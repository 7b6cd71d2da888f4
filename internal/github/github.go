// Package github fetches a compact, LLM-friendly summary of a GitHub
// profile used to enrich the generation prompt. Failures never propagate
// into the pipeline: callers treat any error as "no enrichment available".
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 10 * time.Second
	// DefaultCacheTTL bounds how long a fetched profile is reused to avoid
	// burning through the unauthenticated rate limit.
	DefaultCacheTTL = 10 * time.Minute

	maxReposPerPage = 30
	maxLanguages    = 10
	maxProjects     = 8
	maxTextLen      = 500
)

var (
	usernameRe    = regexp.MustCompile(`^[a-zA-Z0-9-]{1,39}$`)
	sanitizeURLRe = regexp.MustCompile(`https?://\S+`)
	sanitizeMDRe  = regexp.MustCompile("[#*`\\[\\]()>~_]")
)

// Summary is the compact profile consumed by prompt construction.
type Summary struct {
	TopLanguages     []string  `json:"top_languages"`
	PrimaryDomain    string    `json:"primary_domain"`
	NotableProjects  []Project `json:"notable_projects"`
	ExperienceSignal string    `json:"experience_signal"` // low | medium | strong
}

// Project is one notable repository in the summary.
type Project struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Stars    int    `json:"stars"`
	About    string `json:"about"`
}

// Error represents a GitHub fetch failure.
type Error struct {
	Username string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("github fetch for %s: %s: %v", e.Username, e.Message, e.Cause)
	}
	return fmt.Sprintf("github fetch for %s: %s", e.Username, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Config holds fetcher configuration.
type Config struct {
	BaseURL   string
	Token     string
	CacheTTL  time.Duration
	SkipCache bool // For testing or forcing fresh fetches
}

// Fetcher retrieves GitHub profiles with an in-memory TTL cache.
type Fetcher struct {
	baseURL    string
	token      string
	cacheTTL   time.Duration
	skipCache  bool
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	fetchedAt time.Time
	summary   *Summary
}

// NewFetcher creates a new fetcher.
func NewFetcher(cfg *Config) *Fetcher {
	if cfg == nil {
		cfg = &Config{}
	}
	f := &Fetcher{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		cacheTTL:   cfg.CacheTTL,
		skipCache:  cfg.SkipCache,
		httpClient: &http.Client{Timeout: defaultTimeout},
		cache:      make(map[string]cacheEntry),
	}
	if f.baseURL == "" {
		f.baseURL = defaultBaseURL
	}
	if f.cacheTTL == 0 {
		f.cacheTTL = DefaultCacheTTL
	}
	return f
}

// userInfo is the subset of the user payload the summary needs.
type userInfo struct {
	PublicRepos int `json:"public_repos"`
	Followers   int `json:"followers"`
}

// repoInfo is the subset of the repo payload the summary needs.
type repoInfo struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Description string `json:"description"`
	Fork        bool   `json:"fork"`
}

// FetchProfile fetches a user's profile and recent repositories and builds
// the compact summary. Results are cached for the configured TTL.
func (f *Fetcher) FetchProfile(ctx context.Context, username string) (*Summary, error) {
	if !usernameRe.MatchString(username) {
		return nil, &Error{Username: username, Message: "invalid username"}
	}
	username = strings.ToLower(username)

	if !f.skipCache {
		if s := f.cached(username); s != nil {
			return s, nil
		}
	}

	var user userInfo
	var repos []repoInfo

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return f.getJSON(gCtx, "/users/"+username, &user)
	})
	g.Go(func() error {
		// Repo listing failures are tolerated: the profile alone still
		// yields a usable (if thin) summary.
		path := fmt.Sprintf("/users/%s/repos?sort=updated&per_page=%d", username, maxReposPerPage)
		if err := f.getJSON(gCtx, path, &repos); err != nil {
			repos = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, &Error{Username: username, Message: "profile request failed", Cause: err}
	}

	summary := buildSummary(user, repos)

	f.mu.Lock()
	f.cache[username] = cacheEntry{fetchedAt: time.Now(), summary: summary}
	f.mu.Unlock()

	return summary, nil
}

// ClearCache drops all cached profiles. Used in testing.
func (f *Fetcher) ClearCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = make(map[string]cacheEntry)
}

func (f *Fetcher) cached(username string) *Summary {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.cache[username]
	if !ok || time.Since(entry.fetchedAt) >= f.cacheTTL {
		return nil
	}
	return entry.summary
}

func (f *Fetcher) getJSON(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if f.token != "" {
		req.Header.Set("Authorization", "token "+f.token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, target)
}

// buildSummary condenses raw API data into the prompt-ready summary.
func buildSummary(user userInfo, repos []repoInfo) *Summary {
	var languages []string
	seen := make(map[string]bool)
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		key := strings.ToLower(r.Language)
		if !seen[key] {
			languages = append(languages, r.Language)
			seen[key] = true
		}
	}
	if len(languages) > maxLanguages {
		languages = languages[:maxLanguages]
	}

	var nonForks []repoInfo
	for _, r := range repos {
		if !r.Fork {
			nonForks = append(nonForks, r)
		}
	}
	sort.SliceStable(nonForks, func(i, j int) bool { return nonForks[i].Stars > nonForks[j].Stars })

	notable := make([]Project, 0, maxProjects)
	for _, r := range nonForks {
		if len(notable) == maxProjects {
			break
		}
		notable = append(notable, Project{
			Name:     r.Name,
			Language: r.Language,
			Stars:    r.Stars,
			About:    sanitizeText(r.Description),
		})
	}

	return &Summary{
		TopLanguages:     languages,
		PrimaryDomain:    inferDomain(languages, repos),
		NotableProjects:  notable,
		ExperienceSignal: experienceSignal(user, repos),
	}
}

// sanitizeText strips URLs and markdown characters, collapses whitespace,
// and truncates so repo descriptions cannot bloat the prompt.
func sanitizeText(text string) string {
	if text == "" {
		return ""
	}
	text = sanitizeURLRe.ReplaceAllString(text, "")
	text = sanitizeMDRe.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxTextLen {
		text = text[:maxTextLen]
	}
	return strings.TrimSpace(text)
}

// domainSignals maps a domain label to the language/keyword evidence for it.
var domainSignals = []struct {
	domain  string
	signals []string
}{
	{"web development", []string{"javascript", "typescript", "html", "css", "react", "vue", "angular"}},
	{"data science / ML", []string{"python", "jupyter notebook", "r"}},
	{"mobile development", []string{"kotlin", "swift", "dart", "java"}},
	{"systems / infrastructure", []string{"c", "c++", "rust", "go"}},
	{"devops / cloud", []string{"shell", "hcl", "dockerfile"}},
}

// inferDomain guesses the user's primary domain from languages and repo
// descriptions.
func inferDomain(languages []string, repos []repoInfo) string {
	langSet := make(map[string]bool, len(languages))
	for _, l := range languages {
		langSet[strings.ToLower(l)] = true
	}
	var descs []string
	for _, r := range repos {
		descs = append(descs, strings.ToLower(sanitizeText(r.Description)))
	}
	allDesc := strings.Join(descs, " ")

	bestDomain, bestScore := "general software development", 0.0
	for _, ds := range domainSignals {
		score := 0.0
		for _, kw := range ds.signals {
			if langSet[kw] {
				score++
			}
			if strings.Contains(allDesc, kw) {
				score += 0.5
			}
		}
		if score > bestScore {
			bestScore = score
			bestDomain = ds.domain
		}
	}
	return bestDomain
}

// experienceSignal classifies GitHub activity as low/medium/strong.
func experienceSignal(user userInfo, repos []repoInfo) string {
	totalStars := 0
	for _, r := range repos {
		totalStars += r.Stars
	}
	if user.PublicRepos >= 20 || totalStars >= 50 || user.Followers >= 30 {
		return "strong"
	}
	if user.PublicRepos >= 8 || totalStars >= 10 || user.Followers >= 5 {
		return "medium"
	}
	return "low"
}

// FormatContext renders the summary as a short text block for the prompt.
func FormatContext(s *Summary) string {
	if s == nil {
		return ""
	}
	languages := "N/A"
	if len(s.TopLanguages) > 0 {
		languages = strings.Join(s.TopLanguages, ", ")
	}
	signal := s.ExperienceSignal
	if signal == "" {
		signal = "low"
	}
	lines := []string{
		"Languages: " + languages,
		"Primary Domain: " + valueOr(s.PrimaryDomain, "N/A"),
		"Experience Signal: " + signal,
	}
	if len(s.NotableProjects) > 0 {
		lines = append(lines, "Notable Projects:")
		count := len(s.NotableProjects)
		if count > 6 {
			count = 6
		}
		for _, p := range s.NotableProjects[:count] {
			lines = append(lines, fmt.Sprintf("  - %s (%s, %d★): %s", p.Name, valueOr(p.Language, "N/A"), p.Stars, p.About))
		}
	}
	return strings.Join(lines, "\n")
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
