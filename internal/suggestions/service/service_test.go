package service

import (
	"context"
	"errors"
	"sync"

	"github.com/webcode-studio/studio-backend/config"
	docdomain "github.com/webcode-studio/studio-backend/internal/documents/domain"
	"github.com/webcode-studio/studio-backend/internal/suggestions/domain"
	"github.com/webcode-studio/studio-backend/internal/suggestions/llm"
)

type fakeClient struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
	prompts  []llm.Prompt
}

func (f *fakeClient) Complete(ctx context.Context, p llm.Prompt) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, p)
	return f.response, f.err
}

func (f *fakeClient) Model() string { return "fake-model" }

type fakeDocs struct {
	doc         *docdomain.Document
	getErr      error
	updateErr   error
	updatedWith string
	updateCalls int
}

func (f *fakeDocs) Get(ctx context.Context, id string) (*docdomain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	d := *f.doc
	return &d, nil
}

func (f *fakeDocs) UpdateContent(ctx context.Context, id, content string, expectedVersion int64) (int64, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	f.updatedWith = content
	return expectedVersion + 1, nil
}

type fakeHistory struct {
	runs []*domain.SuggestionRun
	err  error
}

func (f *fakeHistory) RecordRun(ctx context.Context, run *domain.SuggestionRun) error {
	if f.err != nil {
		return f.err
	}
	f.runs = append(f.runs, run)
	return nil
}

type fakeCache struct {
	inFlight map[string]bool
	sets     map[string]*domain.SuggestionSet
	dropped  []string
	busy     bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		inFlight: map[string]bool{},
		sets:     map[string]*domain.SuggestionSet{},
	}
}

func (f *fakeCache) AcquireInFlight(ctx context.Context, kind, documentID string) (bool, error) {
	if f.busy || f.inFlight[kind+":"+documentID] {
		return false, nil
	}
	f.inFlight[kind+":"+documentID] = true
	return true, nil
}

func (f *fakeCache) ReleaseInFlight(ctx context.Context, kind, documentID string) error {
	delete(f.inFlight, kind+":"+documentID)
	return nil
}

func (f *fakeCache) PutSet(ctx context.Context, set *domain.SuggestionSet) error {
	f.sets[set.DocumentID] = set
	return nil
}

func (f *fakeCache) GetSet(ctx context.Context, documentID string) (*domain.SuggestionSet, error) {
	set, ok := f.sets[documentID]
	if !ok {
		return nil, errors.New("not cached")
	}
	return set, nil
}

func (f *fakeCache) DropSet(ctx context.Context, documentID string) error {
	delete(f.sets, documentID)
	f.dropped = append(f.dropped, documentID)
	return nil
}

type pipelineFixture struct {
	svc     *Service
	client  *fakeClient
	docs    *fakeDocs
	history *fakeHistory
	cache   *fakeCache
}

func newFixture(apiKey, response string) *pipelineFixture {
	client := &fakeClient{response: response}
	docs := &fakeDocs{doc: &docdomain.Document{
		ID:          "doc-1",
		WorkspaceID: "studio-12345-6789",
		Name:        "index.js",
		Content:     "const x=1",
		Version:     3,
	}}
	history := &fakeHistory{}
	cache := newFakeCache()

	return &pipelineFixture{
		svc:     NewService(config.AIConfig{APIKey: apiKey, Model: "fake-model"}, client, docs, history, cache),
		client:  client,
		docs:    docs,
		history: history,
		cache:   cache,
	}
}
