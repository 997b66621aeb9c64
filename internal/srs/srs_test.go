package srs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/japaniel/minecore/internal/model"
	"github.com/japaniel/minecore/internal/xerrors"
)

type fakeDoer struct {
	lastBody []byte
	response string
	status   int
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		f.lastBody, _ = io.ReadAll(req.Body)
	}
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(f.response))}, nil
}

func TestBuildOptionsPreservesInconsistentMapping(t *testing.T) {
	cases := []struct {
		policy model.DuplicatePolicy
		want   string
	}{
		{model.DuplicatePolicyNone, `{"allowDuplicate":true}`},
		{model.DuplicatePolicyDifferentDeck, `{"allowDuplicate":false}`},
		{model.DuplicatePolicySameDeck, `{"duplicateScope":"deck"}`},
	}
	for _, c := range cases {
		got, err := json.Marshal(buildOptions(c.policy))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(got) != c.want {
			t.Fatalf("policy %v: got %s, want %s", c.policy, got, c.want)
		}
	}
}

func TestAddNoteEmbedsLocalFileAsBase64(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "clip-*.aac")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	if _, err := tmp.Write([]byte("audio-bytes")); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	tmp.Close()

	doer := &fakeDoer{response: `{}`}
	client := New("http://localhost:8765", doer)

	note := &model.NoteContext{
		Deck: "Japanese", NoteType: "Minecore",
		Fields: map[string]string{"Expression": "猫"},
		FileMap: []model.MediaRef{
			{SourcePath: tmp.Name(), TargetName: "clip.aac"},
		},
	}

	err = client.AddNote(context.Background(), note, map[string][]string{"clip.aac": {"Expression"}}, nil)
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}

	var sent map[string]any
	if err := json.Unmarshal(doer.lastBody, &sent); err != nil {
		t.Fatalf("unmarshal sent body: %v", err)
	}
	audio, ok := sent["audio"].([]any)
	if !ok || len(audio) != 1 {
		t.Fatalf("sent = %+v, want one audio entry", sent)
	}
}

func TestAddNotePropagatesBackendRejection(t *testing.T) {
	doer := &fakeDoer{response: `{"error": "duplicate"}`}
	client := New("http://localhost:8765", doer)

	note := &model.NoteContext{Deck: "d", NoteType: "m", Fields: map[string]string{}}
	err := client.AddNote(context.Background(), note, nil, nil)

	var rejected *xerrors.ErrBackendRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("AddNote err = %v, want *xerrors.ErrBackendRejected", err)
	}
	if rejected.Message != "duplicate" {
		t.Fatalf("rejected.Message = %q, want %q", rejected.Message, "duplicate")
	}
}

func TestCanAdd(t *testing.T) {
	doer := &fakeDoer{response: `{"canAdd": true}`}
	client := New("http://localhost:8765", doer)

	ok, err := client.CanAdd(context.Background(), "猫")
	if err != nil {
		t.Fatalf("CanAdd: %v", err)
	}
	if !ok {
		t.Fatalf("got false, want true")
	}
}
