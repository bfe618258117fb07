package tui

import (
	"context"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

type mockOutlineService struct {
	files    []domain.OrgFile
	outlines map[string]*driving.Outline
	err      error
}

func (m *mockOutlineService) ListFiles(_ context.Context) ([]domain.OrgFile, error) {
	return m.files, m.err
}

func (m *mockOutlineService) Get(_ context.Context, name string) (*driving.Outline, error) {
	if m.err != nil {
		return nil, m.err
	}
	o, ok := m.outlines[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

type mockIndexService struct {
	meta *domain.IndexMetadata
}

func (m *mockIndexService) Sync(_ context.Context, _ string) (*domain.IndexMetadata, error) {
	return m.meta, nil
}

func (m *mockIndexService) Get(_ context.Context) (*domain.IndexMetadata, error) {
	return m.meta, nil
}
