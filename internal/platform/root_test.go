package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoot(t *testing.T) {
	// /tmp/
	//   paper/ (aastex.yaml)
	//     figures/
	//       raw/
	//   other/ (aastex.json)
	//   empty/

	baseDir := t.TempDir()
	paperDir := filepath.Join(baseDir, "paper")
	figDir := filepath.Join(paperDir, "figures")
	rawDir := filepath.Join(figDir, "raw")
	otherDir := filepath.Join(baseDir, "other")
	emptyDir := filepath.Join(baseDir, "empty")

	for _, d := range []string{rawDir, otherDir, emptyDir} {
		require.NoError(t, os.MkdirAll(d, 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(paperDir, "aastex.yaml"), []byte("title: x\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(otherDir, "aastex.json"), []byte("{}"), 0644))
	// A directory with a manifest name is not a manifest.
	require.NoError(t, os.Mkdir(filepath.Join(figDir, "aastex.yml"), 0755))

	tests := []struct {
		name         string
		startPath    string
		wantRoot     string
		wantManifest string
		wantErr      bool
	}{
		{
			name:         "Start at Root",
			startPath:    paperDir,
			wantRoot:     paperDir,
			wantManifest: "aastex.yaml",
		},
		{
			name:         "Start Nested Deeply",
			startPath:    rawDir,
			wantRoot:     paperDir,
			wantManifest: "aastex.yaml",
		},
		{
			name:         "Skips Directory Named Like Manifest",
			startPath:    figDir,
			wantRoot:     paperDir,
			wantManifest: "aastex.yaml",
		},
		{
			name:         "JSON Manifest",
			startPath:    otherDir,
			wantRoot:     otherDir,
			wantManifest: "aastex.json",
		},
		{
			name:      "No Root Found",
			startPath: emptyDir,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, manifest, err := FindRoot(tt.startPath)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRootNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Clean(tt.wantRoot), filepath.Clean(got))
			assert.Equal(t, filepath.Join(got, tt.wantManifest), manifest)
		})
	}
}
