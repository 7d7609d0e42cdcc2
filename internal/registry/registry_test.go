package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/dropboard/internal/model"
)

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestDefaultSeed(t *testing.T) {
	r := New(DefaultSeed())
	items := r.Items()
	require.Len(t, items, 3)
	require.Equal(t, []string{"item1", "item2", "item3"}, ids(items))
	require.Equal(t, "today", items[0].Status)
	require.Equal(t, "tomorrow", items[1].Status)
	require.Equal(t, "today", items[2].Status)
}

func TestMoveAppendsToEnd(t *testing.T) {
	r := New(DefaultSeed())
	item1, ok := r.Find("item1")
	require.True(t, ok)

	r.Move(item1, "tomorrow")

	require.Equal(t, []model.Item{
		{ID: "item2", Text: "item2", Status: "tomorrow"},
		{ID: "item3", Text: "item3", Status: "today"},
		{ID: "item1", Text: "item1", Status: "tomorrow"},
	}, r.Items())
	require.Equal(t, []string{"item3"}, ids(r.ByStatus("today")))
	require.Equal(t, []string{"item2", "item1"}, ids(r.ByStatus("tomorrow")))
}

func TestMoveIsIdempotent(t *testing.T) {
	r := New(DefaultSeed())
	item2, _ := r.Find("item2")

	r.Move(item2, "today")
	first := r.Items()
	r.Move(item2, "today")

	require.Equal(t, first, r.Items())
	require.Equal(t, 3, r.Len())
	require.Equal(t, "item2", r.Items()[2].ID)
}

func TestMoveKeepsOneItemPerID(t *testing.T) {
	statuses := []string{"today", "tomorrow", "someday", "", "today"}
	for _, it := range DefaultSeed() {
		for _, s := range statuses {
			r := New(DefaultSeed())
			r.Move(it, s)

			count := 0
			for _, got := range r.Items() {
				if got.ID == it.ID {
					count++
					require.Equal(t, s, got.Status)
				}
			}
			require.Equal(t, 1, count, "id %s status %q", it.ID, s)
			require.Equal(t, 3, r.Len())
		}
	}
}

func TestMoveToUnknownStatusKeepsItem(t *testing.T) {
	r := New(DefaultSeed())
	item3, _ := r.Find("item3")

	r.Move(item3, "someday")

	require.Len(t, r.ByStatus("someday"), 1)
	require.Equal(t, []string{"item1"}, ids(r.ByStatus("today")))
	require.Equal(t, []string{"item2"}, ids(r.ByStatus("tomorrow")))
	got, ok := r.Find("item3")
	require.True(t, ok)
	require.Equal(t, "someday", got.Status)
	require.Equal(t, 3, r.Len())
}

func TestMoveUsesPayloadFields(t *testing.T) {
	r := New(DefaultSeed())
	// The drag payload is captured before the drop, so its text wins.
	r.Move(model.Item{ID: "item1", Text: "renamed", Status: "today"}, "tomorrow")

	got, ok := r.Find("item1")
	require.True(t, ok)
	require.Equal(t, "renamed", got.Text)
	require.Equal(t, "tomorrow", got.Status)
}

func TestItemsReturnsCopy(t *testing.T) {
	r := New(DefaultSeed())
	items := r.Items()
	items[0].Status = "mutated"

	got, _ := r.Find("item1")
	require.Equal(t, "today", got.Status)
}

func TestNewCollapsesDuplicateSeedIDs(t *testing.T) {
	r := New([]model.Item{
		{ID: "a", Text: "first", Status: "today"},
		{ID: "b", Text: "b", Status: "today"},
		{ID: "a", Text: "second", Status: "tomorrow"},
	})

	require.Equal(t, []string{"b", "a"}, ids(r.Items()))
	got, _ := r.Find("a")
	require.Equal(t, "second", got.Text)
}

func TestFindMissing(t *testing.T) {
	r := New(nil)
	_, ok := r.Find("nope")
	require.False(t, ok)
	require.Empty(t, r.Items())
}
