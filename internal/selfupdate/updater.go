package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum mismatch")
)

// binaryName is the executable inside every release archive.
const binaryName = "chemcat"

// releasePlatforms maps GOOS/GOARCH pairs with published release builds
// to their archive extension. Everything else has no asset to fetch.
var releasePlatforms = map[string]string{
	"darwin/amd64":  "tar.gz",
	"darwin/arm64":  "tar.gz",
	"linux/amd64":   "tar.gz",
	"linux/arm64":   "tar.gz",
	"windows/amd64": "zip",
}

// Update replaces the running executable with the latest published
// release. report receives one human-readable line per stage. The swap
// is atomic: the new binary lands under a temporary name next to the
// current one and is renamed into place only after its checksum
// verifies against the release's checksums.txt.
func (c *Checker) Update(ctx context.Context, currentVersion string, report func(string)) error {
	if currentVersion == "(devel)" {
		return ErrDevBuild
	}

	report("Checking for the latest release...")
	result, err := c.Check(ctx, &CheckInput{Version: currentVersion})
	if err != nil {
		return fmt.Errorf("check latest release: %w", err)
	}
	if !result.UpdateAvailable {
		return ErrAlreadyLatest
	}
	tag := result.LatestVersion

	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	report(fmt.Sprintf("Downloading %s (%s)...", tag, asset))
	sums, err := c.fetch(ctx, c.assetURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, err := checksumFor(sums, asset)
	if err != nil {
		return err
	}
	archive, err := c.fetch(ctx, c.assetURL(tag, asset))
	if err != nil {
		return fmt.Errorf("download release archive: %w", err)
	}
	if sum := sha256.Sum256(archive); hex.EncodeToString(sum[:]) != want {
		return fmt.Errorf("%w for %s", ErrChecksum, asset)
	}

	report("Unpacking...")
	binary, err := extractBinary(archive, asset)
	if err != nil {
		return fmt.Errorf("unpack %s: %w", asset, err)
	}

	report("Installing...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	if err := swapExecutable(target, binary); err != nil {
		return err
	}

	report(fmt.Sprintf("chemcat is now %s.", tag))
	return nil
}

// releaseAsset names the archive published for a platform, e.g.
// chemcat_linux_amd64.tar.gz.
func releaseAsset(goos, goarch string) (string, error) {
	ext, ok := releasePlatforms[goos+"/"+goarch]
	if !ok {
		return "", fmt.Errorf("no release build for %s/%s", goos, goarch)
	}
	return fmt.Sprintf("%s_%s_%s.%s", binaryName, goos, goarch, ext), nil
}

// assetURL builds the download URL of one file attached to a release.
func (c *Checker) assetURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor scans a goreleaser-style checksums.txt ("<hex>  <file>"
// per line) for the named asset.
func checksumFor(sums []byte, asset string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == asset {
			return fields[0], nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read checksums: %w", err)
	}
	return "", fmt.Errorf("%s missing from checksums.txt", asset)
}

// extractBinary pulls the chemcat executable out of a release archive.
func extractBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return binaryFromZip(archive)
	}
	return binaryFromTarGz(archive)
}

func binaryFromTarGz(archive []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s not in archive", binaryName)
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == binaryName {
			return io.ReadAll(tr)
		}
	}
}

func binaryFromZip(archive []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, err
	}
	want := binaryName + ".exe"
	for _, f := range zr.File {
		if filepath.Base(f.Name) != want {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s not in archive", want)
}

// swapExecutable writes the new binary next to the target and renames
// it into place, keeping the target's file mode. The rename stays on
// one filesystem, so a crash leaves either the old or the new binary,
// never a torn one.
func swapExecutable(target string, binary []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	staging, err := os.CreateTemp(filepath.Dir(target), ".chemcat-update-*")
	if err != nil {
		return fmt.Errorf("stage new binary: %w", err)
	}
	stagingPath := staging.Name()
	defer func() { _ = os.Remove(stagingPath) }()

	if _, err := staging.Write(binary); err != nil {
		_ = staging.Close()
		return fmt.Errorf("write new binary: %w", err)
	}
	if err := staging.Close(); err != nil {
		return fmt.Errorf("write new binary: %w", err)
	}
	if err := os.Chmod(stagingPath, info.Mode()); err != nil {
		return fmt.Errorf("chmod new binary: %w", err)
	}
	if err := os.Rename(stagingPath, target); err != nil {
		return fmt.Errorf("install new binary: %w", err)
	}
	return nil
}
