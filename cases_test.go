package tablemend_test

import (
	"os"
	"testing"

	"github.com/bjaus/tablemend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type goldenCase struct {
	Name  string `yaml:"name"`
	Align bool   `yaml:"align"`
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
}

func TestGoldenCases(t *testing.T) {
	t.Parallel()
	data, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)

	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			f := tablemend.Fixer{AlignColumns: tc.Align}
			got := f.Fix(tc.Input)
			assert.Equal(t, tc.Want, got)
			assert.Equal(t, got, f.Fix(got), "fix must be idempotent")
		})
	}
}
