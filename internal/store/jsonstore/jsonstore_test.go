package jsonstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/dropboard/internal/model"
)

func TestLoadSeedFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "seed.json")
	data := `[
  {"id": "a", "text": "write report", "status": "today"},
  {"id": "b", "text": "call bank", "status": "later"}
]`
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))

	items, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, []model.Item{
		{ID: "a", Text: "write report", Status: "today"},
		{ID: "b", Text: "call bank", Status: "later"},
	}, items)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeRejectsEmptyID(t *testing.T) {
	_, err := Decode([]byte(`[{"id":"a","text":"x","status":"today"},{"id":"  ","text":"y","status":"today"}]`))
	require.ErrorIs(t, err, ErrEmptyID)
	require.Contains(t, err.Error(), "item 2")
}

func TestDecodeBadJSON(t *testing.T) {
	_, err := Decode([]byte(`{"id":"a"}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "json unmarshal")
}

func TestEncodeRoundTripsSeed(t *testing.T) {
	seed := []model.Item{{ID: "item1", Text: "item1", Status: "today"}}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, seed))
	require.Contains(t, buf.String(), `"status": "today"`)

	back, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, seed, back)
}

func TestEncodeNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	require.Equal(t, "[]\n", buf.String())
}
