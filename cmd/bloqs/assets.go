package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	bloqs "github.com/alnah/go-bloqs"
	"github.com/alnah/go-bloqs/internal/fileutil"
)

// runAssetsCmd lists the embedded assets, or exports them with --export.
func runAssetsCmd(args []string, env *Environment) error {
	flags, positional, err := parseAssetsFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: assets takes no arguments", ErrUsage)
	}

	names := bloqs.EmbeddedAssets()
	if flags.export == "" {
		for _, name := range names {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	if err := exportAssets(flags.export, names, flags.force); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Exported %d asset(s) to %s\n", len(names), flags.export)
	return nil
}

// exportAssets copies the named embedded files into dir.
// Existing files are kept unless force is set.
func exportAssets(dir string, names []string, force bool) error {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrExportAssets, err)
	}

	loader, err := bloqs.NewAssetLoader("")
	if err != nil {
		return err
	}

	for _, file := range names {
		dest := filepath.Join(dir, file)
		if !force && fileutil.FileExists(dest) {
			return fmt.Errorf("%w: %s exists (use --force to overwrite)", ErrExportAssets, dest)
		}

		ext := filepath.Ext(file)
		data, err := loader.Load(strings.TrimSuffix(file, ext), ext)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrExportAssets, err)
		}
		if err := fileutil.WriteFileAtomic(dest, data, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrExportAssets, err)
		}
	}
	return nil
}
