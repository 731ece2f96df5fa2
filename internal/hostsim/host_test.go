package hostsim

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rok-office/cwdetails/connector"
	"github.com/rok-office/cwdetails/geometry"
)

const twoColumns = `
columns:
  - name: C1
    p1: [0, 0, 0]
    p2: [0, 0, 3000]
    xl: [0, 0, 1]
    yl: [1, 0, 0]
    zl: [0, 1, 0]
    width: 200
    height: 160
  - name: C2
    p1: [1000, 0, 3000]
    p2: [1000, 0, 0]
    xl: [0, 0, -1]
    yl: [1, 0, 0]
    zl: [0, -1, 0]
    width: 120
    height: 120
    active: false
`

func TestLoadScene(t *testing.T) {
	h, err := LoadScene(strings.NewReader(twoColumns))
	require.NoError(t, err)

	ids, err := h.ActiveElementIDs(context.Background())
	require.NoError(t, err)
	require.Equal(t, []connector.ElementID{1}, ids)

	c, err := h.Column(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, connector.ElementID(1), c.ID)
	assert.Equal(t, geometry.NewPoint3(0, 0, 3000), c.P2)
	assert.Equal(t, geometry.NewVector3(1, 0, 0), c.YL)
	assert.Equal(t, 160.0, c.Height)

	all := h.Elements()
	require.Len(t, all, 2)
	assert.Equal(t, "C2", all[1].Name)
}

func TestLoadSceneRejects(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{"short point", "columns:\n  - {p1: [0, 0], p2: [0, 0, 1], xl: [0, 0, 1], yl: [1, 0, 0], zl: [0, 1, 0], width: 1, height: 1}\n"},
		{"missing width", "columns:\n  - {p1: [0, 0, 0], p2: [0, 0, 1], xl: [0, 0, 1], yl: [1, 0, 0], zl: [0, 1, 0], height: 1}\n"},
		{"unknown key", "colums: []\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadScene(strings.NewReader(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestCreateAndSubtract(t *testing.T) {
	ctx := context.Background()
	h := New()
	col := h.AddColumn(connector.Column{Width: 100, Height: 100}, true)

	plate, err := h.CreateRectangularPanel(ctx, connector.Panel{Length: 80})
	require.NoError(t, err)
	require.NoError(t, h.SetName(ctx, plate, "FLA"))
	require.NoError(t, h.SubtractElements(ctx, []connector.ElementID{plate}, []connector.ElementID{col}))

	dowel, err := h.CreateStandardConnector(ctx, "Duebel_8", geometry.NewPoint3(-50, 0, 0), geometry.NewPoint3(50, 0, 0))
	require.NoError(t, err)

	e, ok := h.Element(col)
	require.True(t, ok)
	assert.Equal(t, []connector.ElementID{plate}, e.CutBy)

	e, ok = h.Element(plate)
	require.True(t, ok)
	assert.Equal(t, KindPanel, e.Kind)
	assert.Equal(t, "FLA", e.Name)

	e, ok = h.Element(dowel)
	require.True(t, ok)
	assert.Equal(t, "Duebel_8", e.Connector)

	_, err = h.Column(ctx, plate)
	assert.ErrorIs(t, err, ErrNotAColumn)
	_, err = h.Column(ctx, 99)
	assert.ErrorIs(t, err, ErrUnknownElement)
	assert.ErrorIs(t, h.SetName(ctx, 99, "x"), ErrUnknownElement)
	assert.ErrorIs(t, h.SubtractElements(ctx, []connector.ElementID{99}, []connector.ElementID{col}), ErrUnknownElement)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().ActiveElementIDs(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
