package mcp

import (
	"context"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

// mockOutlineService is a mock implementation of driving.OutlineService.
type mockOutlineService struct {
	files   []domain.OrgFile
	outline *driving.Outline
	err     error
}

func (m *mockOutlineService) ListFiles(_ context.Context) ([]domain.OrgFile, error) {
	return m.files, m.err
}

func (m *mockOutlineService) Get(_ context.Context, _ string) (*driving.Outline, error) {
	return m.outline, m.err
}

// mockSyncService is a mock implementation of driving.SyncService.
type mockSyncService struct {
	report *driving.SyncReport
	err    error
	dir    string
}

func (m *mockSyncService) SyncDir(_ context.Context, dir string) (*driving.SyncReport, error) {
	m.dir = dir
	return m.report, m.err
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
	query   string
	opts    domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.query = query
	m.opts = opts
	return m.results, m.err
}

// testOutline is:
//
//	preamble
//	* TODO [#A] Task :work:
//	SCHEDULED: <2024-01-02>
//	** Sub
//	* Done
func testOutline() *driving.Outline {
	sub := &driving.OutlineNode{Node: domain.Node{ID: 3, Depth: 2, Title: "Sub", InheritedTags: "work"}}
	task := &driving.OutlineNode{
		Node:       domain.Node{ID: 2, Depth: 1, Title: "Task", Todo: "TODO", Priority: "A", Tags: "work"},
		Payload:    "SCHEDULED: <2024-01-02>\n",
		Timestamps: domain.TimestampRecord{domain.TimestampScheduled: "2024-01-02"},
		Children:   []*driving.OutlineNode{sub},
	}
	done := &driving.OutlineNode{Node: domain.Node{ID: 4, Depth: 1, Title: "Done", Todo: "DONE", Position: 1}}
	root := &driving.OutlineNode{
		Node:     domain.Node{ID: 1, Title: "todo.org"},
		Payload:  "preamble\n",
		Children: []*driving.OutlineNode{task, done},
	}
	return &driving.Outline{File: domain.OrgFile{ID: "f1", Name: "todo.org", RootNodeID: 1}, Root: root}
}
