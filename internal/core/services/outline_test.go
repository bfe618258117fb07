package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

func TestOutlineService_Get(t *testing.T) {
	stores := newTestStores()
	ctx := context.Background()

	doc := "preamble\n* A\nbody a\nDEADLINE: <2024-05-01>\n** A1\n** A2\n* B\n"
	_, err := stores.parseService().Parse(ctx, driving.ParseRequest{Name: "a.org", Alias: "Alpha"}, strings.NewReader(doc))
	require.NoError(t, err)

	svc := NewOutlineService(stores.nodes)
	outline, err := svc.Get(ctx, "a.org")
	require.NoError(t, err)

	root := outline.Root
	assert.Equal(t, "Alpha", root.Node.Title)
	assert.Equal(t, "preamble\n", root.Payload)
	require.Len(t, root.Children, 2)

	a := root.Children[0]
	assert.Equal(t, "A", a.Node.Title)
	assert.Equal(t, "body a\nDEADLINE: <2024-05-01>\n", a.Payload)
	assert.True(t, a.Timestamps.Has(domain.TimestampDeadline))
	require.Len(t, a.Children, 2)
	assert.Equal(t, "A1", a.Children[0].Node.Title)
	assert.Equal(t, "A2", a.Children[1].Node.Title)
	assert.Equal(t, "B", root.Children[1].Node.Title)

	var levels []int
	root.Walk(func(_ *driving.OutlineNode, level int) {
		levels = append(levels, level)
	})
	assert.Equal(t, []int{0, 1, 2, 2, 1}, levels)
}

func TestOutlineService_ListFilesAndNotFound(t *testing.T) {
	stores := newTestStores()
	ctx := context.Background()
	svc := NewOutlineService(stores.nodes)

	_, err := svc.Get(ctx, "missing.org")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for _, name := range []string{"b.org", "a.org"} {
		_, err := stores.parseService().Parse(ctx, driving.ParseRequest{Name: name}, strings.NewReader("* x\n"))
		require.NoError(t, err)
	}

	files, err := svc.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.org", files[0].Name)
}

func TestOutlineService_CacheFollowsReparse(t *testing.T) {
	stores := newTestStores()
	ctx := context.Background()
	svc := NewOutlineService(stores.nodes)

	parse := func(doc string) {
		t.Helper()
		_, err := stores.parseService().Parse(ctx, driving.ParseRequest{Name: "a.org"}, strings.NewReader(doc))
		require.NoError(t, err)
	}

	parse("* First\n")
	first, err := svc.Get(ctx, "a.org")
	require.NoError(t, err)

	again, err := svc.Get(ctx, "a.org")
	require.NoError(t, err)
	assert.Same(t, first.Root, again.Root)

	parse("* Second\n")
	fresh, err := svc.Get(ctx, "a.org")
	require.NoError(t, err)
	assert.NotSame(t, first.Root, fresh.Root)
	require.Len(t, fresh.Root.Children, 1)
	assert.Equal(t, "Second", fresh.Root.Children[0].Node.Title)
}
