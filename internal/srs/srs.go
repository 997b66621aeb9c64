// Package srs implements the SRS (spaced-repetition) client contract of
// spec.md §6: marshal a NoteContext into the produced note JSON shape and
// POST it, with the note's media files embedded in the same request.
//
// HTTP plumbing follows the context-timeout http.Client pattern in
// _examples/japaniel-readerer/pkg/dictionary/downloader.go and
// cmd/readerer/main.go.
package srs

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/japaniel/minecore/internal/model"
	"github.com/japaniel/minecore/internal/xerrors"
)

const requestTimeout = 5 * time.Second

// notePayload.Options is deliberately untyped: spec.md §9's Open
// Question preserves the original's inconsistent duplicate-policy-to-JSON
// mapping rather than normalizing it into one option shape.
type notePayload struct {
	DeckName  string            `json:"deckName"`
	ModelName string            `json:"modelName"`
	Fields    map[string]string `json:"fields"`
	Tags      []string          `json:"tags"`
	Options   any               `json:"options"`
	Audio     []mediaPayload    `json:"audio,omitempty"`
	Picture   []mediaPayload    `json:"picture,omitempty"`
}

type mediaPayload struct {
	URL      string   `json:"url,omitempty"`
	Data     string   `json:"data,omitempty"`
	Filename string   `json:"filename"`
	Fields   []string `json:"fields"`
	SkipHash bool     `json:"skipHash,omitempty"`
}

// HTTPDoer is the seam Client depends on instead of *http.Client directly.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to an AnkiConnect-shaped SRS backend over HTTP.
type Client struct {
	BaseURL string
	Doer    HTTPDoer
}

func New(baseURL string, doer HTTPDoer) *Client {
	if doer == nil {
		doer = &http.Client{}
	}
	return &Client{BaseURL: baseURL, Doer: doer}
}

// buildOptions intentionally reproduces the original's three divergent
// branches instead of a single consistent shape — see the Open Question in
// spec.md §9.
func buildOptions(policy model.DuplicatePolicy) any {
	switch policy {
	case model.DuplicatePolicyNone:
		return map[string]any{"allowDuplicate": true}
	case model.DuplicatePolicyDifferentDeck:
		return map[string]any{"allowDuplicate": false}
	case model.DuplicatePolicySameDeck:
		return map[string]any{"duplicateScope": "deck"}
	default:
		return map[string]any{"allowDuplicate": false}
	}
}

// AddNote attaches every entry of note.FileMap to the note payload (as
// audio when its target name is a key of audioFields, otherwise as a
// picture) and POSTs the note. There is no separate media-store upload:
// files not listed in note.FileMap, such as dictionary images referenced
// from rendered glossaries, are not sent.
// Already-synthesized media files are the caller's to delete on failure
// (spec.md §4.8's media-lifecycle ownership rule) — AddNote never deletes.
func (c *Client) AddNote(ctx context.Context, note *model.NoteContext, audioFields, pictureFields map[string][]string) error {
	payload := notePayload{
		DeckName:  note.Deck,
		ModelName: note.NoteType,
		Fields:    note.Fields,
		Tags:      note.Tags,
		Options:   buildOptions(note.DuplicatePolicy),
	}

	for _, ref := range note.FileMap {
		fields := pictureFields[ref.TargetName]
		if fields == nil {
			fields = audioFields[ref.TargetName]
		}
		mp, err := toMediaPayload(ref, fields)
		if err != nil {
			return fmt.Errorf("srs: prepare media %s: %w", ref.TargetName, err)
		}
		if _, isAudio := audioFields[ref.TargetName]; isAudio {
			payload.Audio = append(payload.Audio, mp)
		} else {
			payload.Picture = append(payload.Picture, mp)
		}
	}

	return c.post(ctx, "/addNote", payload)
}

// toMediaPayload embeds local files as base64 data and passes through
// remote URLs (e.g. resolved audio-source URLs) untouched.
func toMediaPayload(ref model.MediaRef, fields []string) (mediaPayload, error) {
	if isURL(ref.SourcePath) {
		return mediaPayload{URL: ref.SourcePath, Filename: ref.TargetName, Fields: fields}, nil
	}

	data, err := os.ReadFile(ref.SourcePath)
	if err != nil {
		return mediaPayload{}, err
	}
	return mediaPayload{
		Data:     base64.StdEncoding.EncodeToString(data),
		Filename: ref.TargetName,
		Fields:   fields,
	}, nil
}

func isURL(s string) bool {
	return len(s) > 7 && (s[:7] == "http://" || (len(s) > 8 && s[:8] == "https://"))
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &xerrors.ErrBackendRejected{Message: fmt.Sprintf("%s returned %s: %s", path, resp.Status, respBody)}
	}

	var result struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err == nil && result.Error != nil && *result.Error != "" {
		return &xerrors.ErrBackendRejected{Message: *result.Error}
	}
	return nil
}

// CanAdd probes whether a note for expression would be accepted (not
// rejected as a duplicate) without actually adding it, satisfying
// dictstore.AddabilityChecker for the per-term/per-reading addability
// badge shown in search results.
func (c *Client) CanAdd(ctx context.Context, expression string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(map[string]any{
		"expression": expression,
	})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/canAdd", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Doer.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var result struct {
		CanAdd bool `json:"canAdd"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}
	return result.CanAdd, nil
}
