package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orgsync/internal/adapters/driven/config/file"
	"github.com/custodia-labs/orgsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

type testStores struct {
	nodes  *memory.NodeStore
	index  *memory.IndexStore
	config *memory.ConfigStore
	prefs  *file.PreferenceStore
}

func newTestStores() *testStores {
	config := memory.NewConfigStore()
	return &testStores{
		nodes:  memory.NewNodeStore(),
		index:  memory.NewIndexStore(),
		config: config,
		prefs:  file.NewPreferenceStore(config),
	}
}

func (s *testStores) parseService() *ParseService {
	return NewParseService(s.nodes, s.index, s.prefs)
}

func nodesByTitle(t *testing.T, store *memory.NodeStore, fileID string) map[string]domain.Node {
	t.Helper()
	nodes, err := store.ListNodes(context.Background(), fileID)
	require.NoError(t, err)
	out := make(map[string]domain.Node, len(nodes))
	for _, n := range nodes {
		out[n.Title] = n
	}
	return out
}

func TestParseService_Parse(t *testing.T) {
	stores := newTestStores()
	svc := stores.parseService()

	doc := "intro\n* TODO [#A] Task :work:\nSCHEDULED: <2024-01-02 Tue>\n** Sub\n"
	result, err := svc.Parse(context.Background(), driving.ParseRequest{
		Name:     "todo.org",
		Alias:    "Todo",
		Checksum: "abc",
	}, strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Nodes)
	assert.Equal(t, 2, result.PayloadLines)
	assert.Equal(t, "abc", result.File.Checksum)
	assert.NotEmpty(t, result.File.ID)
	assert.NotZero(t, result.File.RootNodeID)

	nodes := nodesByTitle(t, stores.nodes, result.File.ID)
	task := nodes["Task"]
	assert.Equal(t, "TODO", task.Todo)
	assert.Equal(t, "A", task.Priority)
	assert.Equal(t, "work", task.Tags)
	assert.Equal(t, "work", nodes["Sub"].InheritedTags)
	assert.Equal(t, result.File.RootNodeID, nodes["Todo"].ID)
}

func TestParseService_ExcludedTagsFromPreferences(t *testing.T) {
	stores := newTestStores()
	require.NoError(t, stores.prefs.SetExcludedTags([]string{"project"}))

	result, err := stores.parseService().Parse(context.Background(),
		driving.ParseRequest{Name: "a.org"},
		strings.NewReader("* A :project:home:\n** B\n"))
	require.NoError(t, err)

	nodes := nodesByTitle(t, stores.nodes, result.File.ID)
	assert.Equal(t, "project:home", nodes["A"].Tags)
	assert.Equal(t, "home", nodes["B"].InheritedTags)
}

func TestParseService_UsesIndexTodoVocabulary(t *testing.T) {
	stores := newTestStores()
	ctx := context.Background()
	require.NoError(t, stores.index.SaveIndex(ctx, &domain.IndexMetadata{
		Todos: []domain.TodoSet{{"NEXT": false, "DONE": true}},
	}))

	result, err := stores.parseService().Parse(ctx,
		driving.ParseRequest{Name: "a.org"},
		strings.NewReader("* NEXT Call\n* TODO Not a keyword here\n"))
	require.NoError(t, err)

	nodes := nodesByTitle(t, stores.nodes, result.File.ID)
	assert.Equal(t, "NEXT", nodes["Call"].Todo)
	assert.Equal(t, "", nodes["TODO Not a keyword here"].Todo)
}

func TestParseService_ReparseReplacesNodes(t *testing.T) {
	stores := newTestStores()
	svc := stores.parseService()
	ctx := context.Background()

	first, err := svc.Parse(ctx, driving.ParseRequest{Name: "a.org"}, strings.NewReader("* One\n* Two\n"))
	require.NoError(t, err)
	second, err := svc.Parse(ctx, driving.ParseRequest{Name: "a.org"}, strings.NewReader("* Three\n"))
	require.NoError(t, err)

	assert.Equal(t, first.File.ID, second.File.ID)
	nodes, err := stores.nodes.ListNodes(ctx, second.File.ID)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestParseService_InvalidInput(t *testing.T) {
	svc := newTestStores().parseService()

	_, err := svc.Parse(context.Background(), driving.ParseRequest{}, strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Parse(context.Background(), driving.ParseRequest{Name: "a.org"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// failingNodeStore wraps a memory store and fails the nth node insert.
type failingNodeStore struct {
	*memory.NodeStore
	failAt int
}

type failingSink struct {
	driven.NodeSink
	failAt   int
	inserted int
}

var errDiskFull = errors.New("disk full")

func (s *failingNodeStore) BeginParse(ctx context.Context, f *domain.OrgFile) (driven.NodeSink, error) {
	sink, err := s.NodeStore.BeginParse(ctx, f)
	if err != nil {
		return nil, err
	}
	return &failingSink{NodeSink: sink, failAt: s.failAt}, nil
}

func (k *failingSink) InsertNode(ctx context.Context, n *domain.Node) (int64, error) {
	k.inserted++
	if k.inserted == k.failAt {
		return 0, errDiskFull
	}
	return k.NodeSink.InsertNode(ctx, n)
}

func TestParseService_SinkFailureRollsBack(t *testing.T) {
	stores := newTestStores()
	store := &failingNodeStore{NodeStore: stores.nodes, failAt: 2}
	svc := NewParseService(store, stores.index, stores.prefs)

	_, err := svc.Parse(context.Background(), driving.ParseRequest{Name: "a.org"},
		strings.NewReader("* One\n* Two\n* Three\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)

	_, err = stores.nodes.GetFile(context.Background(), "a.org")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParseService_NilOptionalStores(t *testing.T) {
	stores := newTestStores()
	svc := NewParseService(stores.nodes, nil, nil)

	result, err := svc.Parse(context.Background(), driving.ParseRequest{Name: "a.org"},
		strings.NewReader("* DONE Finished\n"))
	require.NoError(t, err)

	nodes := nodesByTitle(t, stores.nodes, result.File.ID)
	assert.Equal(t, "DONE", nodes["Finished"].Todo)
}
