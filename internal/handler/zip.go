package handler

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"frontierwatch/internal/bias"
)

// unzipFlat extracts every regular file in the archive into dest, flattening
// directory structure. Entry names are reduced to their base name so an
// archive can never write outside dest.
func unzipFlat(zipPath, dest string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return bias.Validationf("error opening zip archive: %v", err)
	}
	defer zr.Close()

	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}

		src, err := entry.Open()
		if err != nil {
			return bias.Validationf("error reading zip entry %s: %v", entry.Name, err)
		}

		outPath := filepath.Join(dest, filepath.Base(entry.Name))
		out, err := os.Create(outPath)
		if err != nil {
			src.Close()
			return err
		}

		_, err = io.Copy(out, src)
		src.Close()
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	return nil
}
