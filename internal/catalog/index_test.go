package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexResolvesEveryVariant(t *testing.T) {
	idx := DefaultIndex()
	for _, alias := range ColumnAliases {
		for _, variant := range alias.Variants {
			got, ok := idx.Lookup(variant)
			require.True(t, ok, "variant %q", variant)
			assert.Equal(t, alias.Canonical, got, "variant %q", variant)
		}
	}
}

func TestIndexLookup(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "입학정원(명)", want: ColAdmissionQuota, ok: true},
		{header: "입학정원", want: ColAdmissionQuota, ok: true},
		{header: "대 학", want: ColInstallingCollege, ok: true},
		{header: " 학과\n또는 전공", want: ColDepartment, ok: true},
		{header: "설치ㆍ운영기간", want: ColOperatingPeriod, ok: true},
		{header: "비고", ok: false},
		{header: "", ok: false},
	}

	idx := DefaultIndex()
	for _, tc := range cases {
		t.Run(tc.header, func(t *testing.T) {
			got, ok := idx.Lookup(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSpecsOutputsCoverTargets(t *testing.T) {
	names := map[string]bool{}
	for _, spec := range Specs {
		assert.False(t, names[spec.Name], "duplicate spec %s", spec.Name)
		names[spec.Name] = true

		for target := range spec.Targets {
			assert.Contains(t, spec.Outputs, target, "spec %s", spec.Name)
		}
		for _, out := range spec.Outputs {
			_, ok := DefaultIndex().Lookup(out)
			assert.True(t, ok, "output %s of %s has no alias", out, spec.Name)
		}
		require.NotNil(t, spec.Pages)
		assert.LessOrEqual(t, spec.Pages.Start, spec.Pages.End)
	}
	assert.False(t, Specs[0].Targets.Has(ColInstallationType))
	assert.True(t, Specs[0].Exclude.Has(ColInstallationType))
	assert.True(t, Specs[1].Require.Has(ColInstallationType))
}
