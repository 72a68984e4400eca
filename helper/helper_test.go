package helper_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/benji-bou/canopy/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	name  string
	count int
}

func TestConfigure(t *testing.T) {
	withName := func(name string) helper.Option[sample] {
		return func(configure *sample) { configure.name = name }
	}
	got := helper.Configure(sample{count: 1}, withName("a"), nil, withName("b"))
	assert.Equal(t, sample{name: "b", count: 1}, got)
}

func TestConfigureWithErrorStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	var incr helper.OptionError[sample] = func(configure *sample) error { configure.count++; return nil }
	var fail helper.OptionError[sample] = func(_ *sample) error { return boom }
	got, err := helper.ConfigureWithError(sample{}, incr, fail, incr)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, got.count)
}

func TestMapHelpers(t *testing.T) {
	double := func(i int) int { return i * 2 }
	assert.Equal(t, []int{2, 4}, helper.Map([]int{1, 2}, double))
	assert.Equal(t, []int{2, 4}, slices.Collect(helper.IterMap(slices.Values([]int{1, 2}), double)))
	assert.Equal(t, []string{"x"}, helper.ErrorStrings([]error{nil, errors.New("x")}))
	assert.NotNil(t, helper.ErrorStrings[[]error](nil))
}

func TestSetLogJSON(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	buff := &bytes.Buffer{}
	helper.SetLog(slog.LevelWarn, helper.WithJSON(), helper.WithWriter(buff))
	slog.Info("dropped")
	slog.Warn("kept", "object", "test")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buff.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "test", line["object"])
}
