// Package audiosource resolves a term's configured audio-source catalog
// (spec.md §4.9) into a flat, ordered list of playable candidates.
//
// The JSON-source HTTP fetch is grounded on
// _examples/japaniel-readerer/pkg/dictionary/downloader.go's
// context-timeout http.Client pattern; the GitHub-release-discovery and
// tar.gz-extraction logic that surrounds it there doesn't apply here and
// is not carried over (see DESIGN.md).
package audiosource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/japaniel/minecore/internal/model"
)

const fetchTimeout = 5 * time.Second

// audioSourceListResponse is the JSON shape a JSON-type audio source is
// expected to answer with (spec.md §4.9 step 2).
type audioSourceListResponse struct {
	Type         string `json:"type"`
	AudioSources []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"audioSources"`
}

// HTTPDoer is the seam the resolver depends on instead of *http.Client
// directly, for testability.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// call tracks one in-flight or completed fetch for a substituted JSON-source
// URL, so concurrent resolver invocations for the same URL share one HTTP
// round trip instead of racing duplicate requests (spec.md §4.9's
// Concurrency clause).
type call struct {
	done   chan struct{}
	result []model.ResolvedAudio
	err    error
}

// Resolver flattens File/JSON audio source trees into playable candidates,
// caching resolved JSON-source expansions for the lifetime of the process
// (the term-widget cache lifetime spec.md describes is the caller's
// responsibility; this cache is keyed purely by URL, so it is safe to
// share across terms with identical audio-source configuration).
type Resolver struct {
	Client HTTPDoer

	mu      sync.Mutex
	inFlight map[string]*call
	cache    map[string][]model.ResolvedAudio
}

// New constructs a Resolver. A nil client defaults to an http.Client with
// the package's fetch timeout already applied per-request via context.
func New(client HTTPDoer) *Resolver {
	if client == nil {
		client = &http.Client{}
	}
	return &Resolver{
		Client:   client,
		inFlight: map[string]*call{},
		cache:    map[string][]model.ResolvedAudio{},
	}
}

// Resolve flattens sources into concrete candidates for expression/reading,
// substituting {expression}/{reading} into every URL template and
// expanding any JSON sources via HTTP GET.
func (r *Resolver) Resolve(ctx context.Context, sources []model.AudioSource, expression, reading string) ([]model.ResolvedAudio, error) {
	var out []model.ResolvedAudio
	for _, src := range sources {
		resolved, err := r.resolveOne(ctx, src, expression, reading)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved...)
	}
	return out, nil
}

// ResolveTermAudio implements notebuilder.AudioResolver: the first
// resolved candidate across all sources, or false if none resolved.
func (r *Resolver) ResolveTermAudio(ctx context.Context, sources []model.AudioSource, expression, reading string) (model.ResolvedAudio, bool) {
	all, err := r.Resolve(ctx, sources, expression, reading)
	if err != nil || len(all) == 0 {
		return model.ResolvedAudio{}, false
	}
	return all[0], true
}

func (r *Resolver) resolveOne(ctx context.Context, src model.AudioSource, expression, reading string) ([]model.ResolvedAudio, error) {
	url := substitute(src.URLTemplate, expression, reading)

	switch src.Type {
	case model.AudioSourceFile:
		return []model.ResolvedAudio{{Name: src.Name, URL: url, MD5SkipHash: src.MD5SkipHash}}, nil

	case model.AudioSourceJSON:
		children, err := r.fetchJSONSource(ctx, url)
		if err != nil {
			return nil, err
		}
		out := make([]model.ResolvedAudio, 0, len(children))
		for _, c := range children {
			out = append(out, model.ResolvedAudio{Name: c.Name, URL: c.URL, MD5SkipHash: src.MD5SkipHash})
		}
		return out, nil

	default:
		return nil, fmt.Errorf("audiosource: unknown source type %d", src.Type)
	}
}

type resolvedChild struct{ Name, URL string }

// fetchJSONSource performs the deduped HTTP GET + parse for one URL,
// treating non-conforming JSON as "no children" per spec.md §4.9 step 2.
func (r *Resolver) fetchJSONSource(ctx context.Context, url string) ([]resolvedChild, error) {
	r.mu.Lock()
	if cached, ok := r.cache[url]; ok {
		r.mu.Unlock()
		return toResolvedChildren(cached), nil
	}
	if c, ok := r.inFlight[url]; ok {
		r.mu.Unlock()
		<-c.done
		if c.err != nil {
			return nil, c.err
		}
		return toResolvedChildren(c.result), nil
	}

	c := &call{done: make(chan struct{})}
	r.inFlight[url] = c
	r.mu.Unlock()

	children, err := r.doFetch(ctx, url)

	r.mu.Lock()
	delete(r.inFlight, url)
	if err == nil {
		resolved := make([]model.ResolvedAudio, 0, len(children))
		for _, ch := range children {
			resolved = append(resolved, model.ResolvedAudio{Name: ch.Name, URL: ch.URL})
		}
		r.cache[url] = resolved
		c.result = resolved
	}
	c.err = err
	r.mu.Unlock()
	close(c.done)

	return children, err
}

func toResolvedChildren(resolved []model.ResolvedAudio) []resolvedChild {
	out := make([]resolvedChild, 0, len(resolved))
	for _, r := range resolved {
		out = append(out, resolvedChild{Name: r.Name, URL: r.URL})
	}
	return out
}

func (r *Resolver) doFetch(ctx context.Context, url string) ([]resolvedChild, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("audiosource: GET %s: status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed audioSourceListResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Type != "audioSourceList" {
		return nil, nil
	}

	out := make([]resolvedChild, 0, len(parsed.AudioSources))
	for _, a := range parsed.AudioSources {
		out = append(out, resolvedChild{Name: a.Name, URL: a.URL})
	}
	return out, nil
}

func substitute(template, expression, reading string) string {
	r := strings.NewReplacer("{expression}", expression, "{reading}", reading)
	return r.Replace(template)
}
