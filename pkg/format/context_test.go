package format_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuncb/dfixxer/pkg/format"
	pascallex "github.com/tuncb/dfixxer/pkg/parser/pascal"
)

func TestCollectSpacingContext(t *testing.T) {
	t.Parallel()

	t.Run("records exponent sign offsets from numeric literals", func(t *testing.T) {
		t.Parallel()
		src := []byte("const X = 2e+10;\n")
		snap, err := pascallex.Parse(context.Background(), "foo.pas", src)
		require.NoError(t, err)

		ctx := format.CollectSpacingContext(snap)
		require.NotEmpty(t, ctx.ExponentSignPositions)
	})

	t.Run("records declaration-equals positions inside default values", func(t *testing.T) {
		t.Parallel()
		src := []byte("unit Foo;\ninterface\nconst\n  X = 1;\nimplementation\nend.\n")
		snap, err := pascallex.Parse(context.Background(), "foo.pas", src)
		require.NoError(t, err)

		ctx := format.CollectSpacingContext(snap)
		require.NotEmpty(t, ctx.DeclarationEqualsPositions)
	})

	t.Run("carries forward parser error ranges", func(t *testing.T) {
		t.Parallel()
		src := []byte("unit 123Bad;\n")
		snap, err := pascallex.Parse(context.Background(), "foo.pas", src)
		require.NoError(t, err)

		ctx := format.CollectSpacingContext(snap)
		require.NotEmpty(t, snap.ErrorRanges)
		require.True(t, ctx.InErrorRange(snap.ErrorRanges[0].StartOffset))
	})
}
