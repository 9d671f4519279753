package scenario_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/internal/scenario"
)

func TestLoadFile_Basic(t *testing.T) {
	f, err := scenario.LoadFile("testdata/basic.yaml")
	require.NoError(t, err)
	require.NotNil(t, f.Tolerance)
	assert.Equal(t, 1e-9, *f.Tolerance)
	require.Len(t, f.Scenarios, 12)

	first := f.Scenarios[0]
	assert.Equal(t, "crossing", first.Name)
	assert.Equal(t, scenario.KindSegment2, first.Kind)
	assert.Equal(t, []float64{0, 0, 10, 0}, first.A)
	require.NotNil(t, first.Expect.Hit)
	assert.True(t, *first.Expect.Hit)
	assert.Equal(t, []float64{5, 0}, first.Expect.Point)

	last := f.Scenarios[11]
	require.NotNil(t, last.Expect.Raw)
	assert.Equal(t, uint16(0x3e00), *last.Expect.Raw, "hex literal")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := scenario.LoadFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", ``, scenario.ErrInvalidScenario},
		{"no scenarios", `scenarios: []`, scenario.ErrInvalidScenario},
		{"unknown key", `
scenarios:
  - {name: s, kind: half, a: [1], expect: {hit: true}, extra: 1}`, scenario.ErrInvalidScenario},
		{"negative tolerance", `
tolerance: -1
scenarios:
  - {name: s, kind: half, a: [1], expect: {hit: true}}`, scenario.ErrInvalidScenario},
		{"infinite tolerance", `
tolerance: .inf
scenarios:
  - {name: s, kind: half, a: [1], expect: {hit: true}}`, scenario.ErrNaNInf},
		{"missing name", `
scenarios:
  - {kind: half, a: [1], expect: {hit: true}}`, scenario.ErrInvalidScenario},
		{"duplicate name", `
scenarios:
  - {name: s, kind: half, a: [1], expect: {hit: true}}
  - {name: s, kind: half, a: [2], expect: {hit: true}}`, scenario.ErrInvalidScenario},
		{"unknown kind", `
scenarios:
  - {name: s, kind: circle, a: [1], expect: {hit: true}}`, scenario.ErrUnknownKind},
		{"short a", `
scenarios:
  - {name: s, kind: segment2, a: [0, 0, 1], b: [0, 0, 1, 1], expect: {hit: true}}`, scenario.ErrInvalidScenario},
		{"missing b", `
scenarios:
  - {name: s, kind: rect_point, a: [0, 1, 1, 0], expect: {result: OUTSIDE}}`, scenario.ErrInvalidScenario},
		{"no expectation", `
scenarios:
  - {name: s, kind: half, a: [1]}`, scenario.ErrInvalidScenario},
		{"point arity", `
scenarios:
  - {name: s, kind: line2, a: [0, 0, 1, 0], b: [0, 0, 0, 1], expect: {point: [0, 0, 0]}}`, scenario.ErrInvalidScenario},
		{"result on a line", `
scenarios:
  - {name: s, kind: line2, a: [0, 0, 1, 0], b: [0, 0, 0, 1], expect: {result: OUTSIDE}}`, scenario.ErrInvalidScenario},
		{"unknown result", `
scenarios:
  - {name: s, kind: rect_point, a: [0, 1, 1, 0], b: [0, 0], expect: {result: INSIDE}}`, scenario.ErrInvalidScenario},
		{"raw on a matrix", `
scenarios:
  - {name: s, kind: matrix3_inverse, a: [1, 0, 0, 0, 1, 0, 0, 0, 1], expect: {raw: 1}}`, scenario.ErrInvalidScenario},
		{"NaN input", `
scenarios:
  - {name: s, kind: segment2, a: [.nan, 0, 1, 0], b: [0, 0, 1, 1], expect: {hit: true}}`, scenario.ErrNaNInf},
		{"infinite expectation", `
scenarios:
  - {name: s, kind: half, a: [1], expect: {point: [-.inf]}}`, scenario.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_OptionalB(t *testing.T) {
	yes := true
	s := scenario.Scenario{
		Name:   "identity",
		Kind:   scenario.KindQuaternionEuler,
		A:      []float64{0, 0, 0},
		Expect: scenario.Expect{Hit: &yes},
	}
	require.NoError(t, s.Validate(), "b may be omitted")

	s.B = []float64{1, 0}
	require.ErrorIs(t, s.Validate(), scenario.ErrInvalidScenario, "but must have 3 values when present")
}
