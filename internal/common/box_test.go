package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBox() *Box[any] {
	return NewBox(map[string]any{
		"data_ingestion": map[string]any{
			"root_dir":   "artifacts/data_ingestion",
			"source_url": "https://example.com/data.zip",
		},
		"model_trainer": map[any]any{
			"alpha":    "0.2",
			"l1_ratio": 0.1,
			"target":   "quality",
		},
		"columns": []any{"fixed_acidity", "ph"},
	})
}

func TestBoxLookup(t *testing.T) {
	b := sampleBox()

	v, err := b.Lookup("data_ingestion.root_dir")
	require.NoError(t, err)
	assert.Equal(t, "artifacts/data_ingestion", v)

	v, err = b.Lookup("model_trainer.target")
	require.NoError(t, err)
	assert.Equal(t, "quality", v)

	_, err = b.Lookup("data_ingestion.missing")
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Contains(t, err.Error(), "data_ingestion.missing")

	_, err = b.Lookup("columns.first")
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Contains(t, err.Error(), "not a mapping")

	_, err = b.Lookup("")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBoxTypedGetters(t *testing.T) {
	b := sampleBox()

	alpha, err := b.Float64("model_trainer.alpha")
	require.NoError(t, err)
	assert.Equal(t, 0.2, alpha)

	cols, err := b.StringSlice("columns")
	require.NoError(t, err)
	assert.Equal(t, []string{"fixed_acidity", "ph"}, cols)

	_, err = b.Int("data_ingestion.source_url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_ingestion.source_url")
}

func TestBoxSub(t *testing.T) {
	b := sampleBox()

	trainer, err := b.Sub("model_trainer")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "l1_ratio", "target"}, trainer.Keys())

	_, err = b.Sub("columns")
	require.Error(t, err)
}

func TestBoxDecode(t *testing.T) {
	type ingestion struct {
		RootDir   string `mapstructure:"root_dir"`
		SourceURL string `mapstructure:"source_url"`
	}
	type trainer struct {
		Alpha   float64 `mapstructure:"alpha"`
		L1Ratio float64 `mapstructure:"l1_ratio"`
		Target  string  `mapstructure:"target"`
	}

	sub, err := sampleBox().Sub("data_ingestion")
	require.NoError(t, err)

	var ing ingestion
	require.NoError(t, sub.Decode(&ing))
	assert.Equal(t, ingestion{RootDir: "artifacts/data_ingestion", SourceURL: "https://example.com/data.zip"}, ing)

	sub, err = sampleBox().Sub("model_trainer")
	require.NoError(t, err)

	var tr trainer
	require.NoError(t, sub.Decode(&tr))
	assert.Equal(t, trainer{Alpha: 0.2, L1Ratio: 0.1, Target: "quality"}, tr)

	require.ErrorIs(t, sub.Decode(tr), ErrInvalidArgument)
}

func TestBoxIsReadOnlyView(t *testing.T) {
	b := NewBox(map[string]int{"a": 1})

	m := b.Map()
	m["a"] = 2
	m["b"] = 3

	v, ok := b.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, b.Has("b"))
	assert.Equal(t, 1, b.Len())
}
