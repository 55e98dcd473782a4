package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveBuildInfo(t *testing.T) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		SetBuildInfo(origVersion, origCommit, origDate)
	})
}

func TestGetInfo(t *testing.T) {
	saveBuildInfo(t)
	SetBuildInfo("1.2.3", "abcdef1234567890", "2026-08-01")

	info, err := GetInfo()
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abcdef1234567890", info.GitCommit)
	assert.Equal(t, "2026-08-01", info.BuildDate)
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
	assert.Contains(t, info.Platform, "/")
	require.NotNil(t, info.SemVer)
	assert.Equal(t, uint64(1), info.SemVer.Major())
}

func TestGetInfo_InvalidVersion(t *testing.T) {
	saveBuildInfo(t)
	SetBuildInfo("not-a-version", "unknown", "unknown")

	_, err := GetInfo()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid semantic version")
}

func TestGetBaseVersion(t *testing.T) {
	saveBuildInfo(t)

	tests := []struct {
		version  string
		expected string
	}{
		{"1.2.3", "1.2.3"},
		{"1.2.3-rc.1", "1.2.3"},
		{"1.2.3+45.abc1234", "1.2.3"},
		{"garbage", "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			SetBuildInfo(tt.version, "unknown", "unknown")
			assert.Equal(t, tt.expected, GetBaseVersion())
		})
	}
}

func TestGetFormattedVersion(t *testing.T) {
	saveBuildInfo(t)

	t.Run("development build", func(t *testing.T) {
		SetBuildInfo("0.3.0", "unknown", "unknown")
		assert.Equal(t, "Templar v0.3.0", GetFormattedVersion())
	})

	t.Run("release build shortens commit", func(t *testing.T) {
		SetBuildInfo("0.3.0", "abcdef1234567890", "2026-08-01")
		formatted := GetFormattedVersion()
		assert.Contains(t, formatted, "Templar v0.3.0")
		assert.Contains(t, formatted, "commit abcdef1")
		assert.NotContains(t, formatted, "abcdef12345")
		assert.Contains(t, formatted, "built 2026-08-01")
	})
}

func TestIsPrerelease(t *testing.T) {
	saveBuildInfo(t)

	SetBuildInfo("1.0.0-beta.1", "unknown", "unknown")
	assert.True(t, IsPrerelease())

	SetBuildInfo("1.0.0", "unknown", "unknown")
	assert.False(t, IsPrerelease())
}

func TestIsDevelopment(t *testing.T) {
	saveBuildInfo(t)

	SetBuildInfo("1.0.0", "unknown", "unknown")
	assert.True(t, IsDevelopment())

	SetBuildInfo("1.0.0", "abc1234", "2026-08-01")
	assert.False(t, IsDevelopment())
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2   string
		expected int
	}{
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.0.0", 1},
		{"1.2.3", "1.2.3", 0},
		{"1.0.0-rc.1", "1.0.0", -1},
	}

	for _, tt := range tests {
		result, err := CompareVersions(tt.v1, tt.v2)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, result, "%s vs %s", tt.v1, tt.v2)
	}

	_, err := CompareVersions("bad", "1.0.0")
	assert.Error(t, err)
}

func TestValidateVersion(t *testing.T) {
	saveBuildInfo(t)

	SetBuildInfo("1.0.0", "unknown", "unknown")
	assert.NoError(t, ValidateVersion())

	SetBuildInfo("bad", "unknown", "unknown")
	assert.Error(t, ValidateVersion())
}
