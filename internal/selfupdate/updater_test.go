package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"linux", "amd64", "chemcat_linux_amd64.tar.gz", false},
		{"linux", "arm64", "chemcat_linux_arm64.tar.gz", false},
		{"darwin", "arm64", "chemcat_darwin_arm64.tar.gz", false},
		{"windows", "amd64", "chemcat_windows_amd64.zip", false},
		{"freebsd", "amd64", "", true},
		{"linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	sums := []byte(`abc123  chemcat_linux_amd64.tar.gz
def456  chemcat_darwin_arm64.tar.gz

malformed line without fields count
`)

	got, err := checksumFor(sums, "chemcat_darwin_arm64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "def456", got)

	_, err = checksumFor(sums, "chemcat_windows_amd64.zip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing from checksums.txt")
}

func TestExtractBinary(t *testing.T) {
	payload := []byte("#!/bin/true\n")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "chemcat", payload)
		got, err := extractBinary(archive, "chemcat_linux_amd64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("tar.gz missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "README.md", []byte("docs"))
		_, err := extractBinary(archive, "chemcat_linux_amd64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not in archive")
	})

	t.Run("zip", func(t *testing.T) {
		archive := buildZip(t, "chemcat.exe", payload)
		got, err := extractBinary(archive, "chemcat_windows_amd64.zip")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})
}

func TestSwapExecutable(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "chemcat")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	require.NoError(t, swapExecutable(target, []byte("new")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "staging file should be gone")
}

func TestSwapExecutableMissingTarget(t *testing.T) {
	err := swapExecutable(filepath.Join(t.TempDir(), "absent"), []byte("new"))
	require.Error(t, err)
}

func TestUpdate(t *testing.T) {
	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		t.Skipf("no release build for this platform: %v", err)
	}

	newBinary := []byte("chemcat v1.1.0 binary")
	var archive []byte
	if strings.HasSuffix(asset, ".zip") {
		archive = buildZip(t, "chemcat.exe", newBinary)
	} else {
		archive = buildTarGz(t, "chemcat", newBinary)
	}
	sum := sha256.Sum256(archive)
	checksums := hex.EncodeToString(sum[:]) + "  " + asset + "\n"

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/chemcat/chemcat/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v1.1.0","html_url":"https://example.com/v1.1.0"}`))
	})
	mux.HandleFunc("/chemcat/chemcat/releases/download/v1.1.0/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(checksums))
	})
	mux.HandleFunc("/chemcat/chemcat/releases/download/v1.1.0/"+asset, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	target := filepath.Join(t.TempDir(), "chemcat")
	require.NoError(t, os.WriteFile(target, []byte("old binary"), 0o755))

	checker := NewChecker(
		WithBaseURL(server.URL),
		WithDownloadBaseURL(server.URL),
		withExecPath(func() (string, error) { return target, nil }),
	)

	var lines []string
	err = checker.Update(context.Background(), "v1.0.0", func(msg string) {
		lines = append(lines, msg)
	})
	require.NoError(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newBinary, got)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "v1.1.0")
}

func TestUpdateGuards(t *testing.T) {
	noProgress := func(string) {}

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), "(devel)", noProgress)
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := releaseServer(t, "v1.0.0")
		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), "v1.0.0", noProgress)
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})
}

func TestUpdateChecksumMismatch(t *testing.T) {
	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		t.Skipf("no release build for this platform: %v", err)
	}

	var archive []byte
	if strings.HasSuffix(asset, ".zip") {
		archive = buildZip(t, "chemcat.exe", []byte("binary"))
	} else {
		archive = buildTarGz(t, "chemcat", []byte("binary"))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/chemcat/chemcat/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v1.1.0","html_url":""}`))
	})
	mux.HandleFunc("/chemcat/chemcat/releases/download/v1.1.0/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("0", 64) + "  " + asset + "\n"))
	})
	mux.HandleFunc("/chemcat/chemcat/releases/download/v1.1.0/"+asset, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	target := filepath.Join(t.TempDir(), "chemcat")
	require.NoError(t, os.WriteFile(target, []byte("old binary"), 0o755))

	checker := NewChecker(
		WithBaseURL(server.URL),
		WithDownloadBaseURL(server.URL),
		withExecPath(func() (string, error) { return target, nil }),
	)
	err = checker.Update(context.Background(), "v1.0.0", func(string) {})
	assert.ErrorIs(t, err, ErrChecksum)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "old binary", string(got), "target must be untouched on failure")
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0o755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
