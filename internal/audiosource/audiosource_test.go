package audiosource

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/japaniel/minecore/internal/model"
)

type fakeDoer struct {
	calls  int32
	body   string
	status int
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	atomic.AddInt32(&f.calls, 1)
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func TestResolveFileSourceSubstitutesTemplate(t *testing.T) {
	r := New(nil)
	sources := []model.AudioSource{
		{Type: model.AudioSourceFile, Name: "jpod", URLTemplate: "https://example.com/{expression}.mp3"},
	}
	got, err := r.Resolve(context.Background(), sources, "猫", "ねこ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 1 || got[0].URL != "https://example.com/猫.mp3" {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveJSONSourceExpandsChildren(t *testing.T) {
	doer := &fakeDoer{body: `{"type":"audioSourceList","audioSources":[{"name":"a","url":"https://x/a.mp3"},{"name":"b","url":"https://x/b.mp3"}]}`}
	r := New(doer)
	sources := []model.AudioSource{
		{Type: model.AudioSourceJSON, URLTemplate: "https://example.com/{expression}", MD5SkipHash: true},
	}
	got, err := r.Resolve(context.Background(), sources, "猫", "ねこ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(got), got)
	}
	if !got[0].MD5SkipHash || !got[1].MD5SkipHash {
		t.Fatalf("children should inherit parent's MD5SkipHash: %+v", got)
	}
}

func TestResolveJSONSourceNonConformingIsEmpty(t *testing.T) {
	doer := &fakeDoer{body: `{"unexpected": true}`}
	r := New(doer)
	sources := []model.AudioSource{{Type: model.AudioSourceJSON, URLTemplate: "https://example.com/x"}}
	got, err := r.Resolve(context.Background(), sources, "x", "y")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %+v, want empty", got)
	}
}

func TestResolveJSONSourceDedupesConcurrentFetches(t *testing.T) {
	doer := &fakeDoer{body: `{"type":"audioSourceList","audioSources":[{"name":"a","url":"https://x/a.mp3"}]}`}
	r := New(doer)
	sources := []model.AudioSource{{Type: model.AudioSourceJSON, URLTemplate: "https://example.com/fixed"}}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Resolve(context.Background(), sources, "x", "y"); err != nil {
				t.Errorf("Resolve: %v", err)
			}
		}()
	}
	wg.Wait()

	if doer.calls != 1 {
		t.Fatalf("got %d HTTP calls, want 1 (deduped)", doer.calls)
	}
}

func TestResolveTermAudioReturnsFirstCandidate(t *testing.T) {
	r := New(nil)
	sources := []model.AudioSource{
		{Type: model.AudioSourceFile, Name: "jpod", URLTemplate: "https://example.com/{expression}.mp3"},
	}
	resolved, ok := r.ResolveTermAudio(context.Background(), sources, "猫", "ねこ")
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if resolved.Name != "jpod" {
		t.Fatalf("got %+v", resolved)
	}
}
