package format_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuncb/dfixxer/pkg/format"
	pascallex "github.com/tuncb/dfixxer/pkg/parser/pascal"
)

func TestGenerateUsesEdits(t *testing.T) {
	t.Parallel()

	t.Run("sorts by priority prefix then case-insensitively", func(t *testing.T) {
		t.Parallel()
		src := "unit Foo;\ninterface\nuses\n  Vcl.Forms, System.SysUtils, Winapi.Windows;\nimplementation\nend.\n"
		snap, err := pascallex.Parse(context.Background(), "foo.pas", []byte(src))
		require.NoError(t, err)

		opts := format.DefaultOptions()
		opts.UsesSection.PriorityPrefixes = []string{"System", "Winapi", "Vcl"}

		edits, warnings := format.GenerateUsesEdits(snap, opts)
		require.Empty(t, warnings)
		require.Len(t, edits, 1)
		require.Contains(t, edits[0].NewText, "System.SysUtils")
		sysIdx := indexOf(edits[0].NewText, "System.SysUtils")
		winIdx := indexOf(edits[0].NewText, "Winapi.Windows")
		vclIdx := indexOf(edits[0].NewText, "Vcl.Forms")
		require.Less(t, sysIdx, winIdx)
		require.Less(t, winIdx, vclIdx)
	})

	t.Run("preserves a unit's legal trailing comment", func(t *testing.T) {
		t.Parallel()
		src := "unit Foo;\ninterface\nuses\n  SysUtils, // used for strings\n  Classes;\nimplementation\nend.\n"
		snap, err := pascallex.Parse(context.Background(), "foo.pas", []byte(src))
		require.NoError(t, err)

		edits, warnings := format.GenerateUsesEdits(snap, format.DefaultOptions())
		require.Empty(t, warnings)
		require.Len(t, edits, 1)
		require.Contains(t, edits[0].NewText, "System.SysUtils; // used for strings")
	})

	t.Run("declines a uses clause with a comment on its own line", func(t *testing.T) {
		t.Parallel()
		src := "unit Foo;\ninterface\nuses\n  SysUtils,\n  // note\n  Classes;\nimplementation\nend.\n"
		snap, err := pascallex.Parse(context.Background(), "foo.pas", []byte(src))
		require.NoError(t, err)

		edits, warnings := format.GenerateUsesEdits(snap, format.DefaultOptions())
		require.Empty(t, edits)
		require.Len(t, warnings, 1)
	})

	t.Run("comma at beginning layout", func(t *testing.T) {
		t.Parallel()
		src := "unit Foo;\ninterface\nuses\n  SysUtils, Classes;\nimplementation\nend.\n"
		snap, err := pascallex.Parse(context.Background(), "foo.pas", []byte(src))
		require.NoError(t, err)

		opts := format.DefaultOptions()
		opts.UsesSection.Style = format.StyleCommaAtBeginning

		edits, warnings := format.GenerateUsesEdits(snap, opts)
		require.Empty(t, warnings)
		require.Len(t, edits, 1)
		require.Contains(t, edits[0].NewText, "\n, ")
		require.NotContains(t, edits[0].NewText, "\n  , ")
		require.Contains(t, edits[0].NewText, "\n  ;")
		require.NotContains(t, edits[0].NewText, "Classes;")
	})

	t.Run("rewrites a short name to its canonical dotted form", func(t *testing.T) {
		t.Parallel()
		src := "unit Foo;\ninterface\nuses\n  SysUtils;\nimplementation\nend.\n"
		snap, err := pascallex.Parse(context.Background(), "foo.pas", []byte(src))
		require.NoError(t, err)

		edits, _ := format.GenerateUsesEdits(snap, format.DefaultOptions())
		require.Len(t, edits, 1)
		require.Contains(t, edits[0].NewText, "System.SysUtils")
	})

	t.Run("no edit when already canonical and sorted", func(t *testing.T) {
		t.Parallel()
		src := "unit Foo;\ninterface\nuses\n  System.Classes;\nimplementation\nend.\n"
		snap, err := pascallex.Parse(context.Background(), "foo.pas", []byte(src))
		require.NoError(t, err)

		edits, warnings := format.GenerateUsesEdits(snap, format.DefaultOptions())
		require.Empty(t, edits)
		require.Empty(t, warnings)
	})
}
