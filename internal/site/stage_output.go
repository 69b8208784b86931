package site

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"git.home.luguber.info/inful/docweaver/internal/config"
	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/logfields"
	"git.home.luguber.info/inful/docweaver/internal/render"
)

// Output locations of shared files, relative to the output root.
const (
	sharedDir    = "~"
	assetsOutDir = "~/assets"
)

// stagePrepareOutput empties the output directory and creates a fresh staging directory.
func stagePrepareOutput(_ context.Context, bs *BuildState) error {
	b := bs.Builder
	if err := clearDir(b.outputDir); err != nil {
		return err
	}

	stage := b.outputDir + "_stage"
	if err := os.RemoveAll(stage); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to remove stale staging directory").
			WithContext("path", stage).
			Build()
	}
	if err := os.MkdirAll(stage, 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create staging directory").
			WithContext("path", stage).
			Build()
	}
	bs.stageDir = stage
	bs.writer = render.NewDirWriter(stage)
	b.logger.Debug("Initialized staging directory", slog.String("staging", stage), logfields.Path(b.outputDir))
	return nil
}

// stageCopyAssets copies project assets and the shared stylesheet and script.
func stageCopyAssets(ctx context.Context, bs *BuildState) error {
	b := bs.Builder
	if err := bs.writer.WriteFile(path.Join(sharedDir, render.StyleFile), bs.Template.Style); err != nil {
		return err
	}
	if err := bs.writer.WriteFile(path.Join(sharedDir, render.ScriptFile), bs.Template.Script); err != nil {
		return err
	}

	root := b.path(config.AssetsDir)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	copied := 0
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p) // #nosec G304 -- path comes from walking the project assets directory
		if err != nil {
			return err
		}
		copied++
		return bs.writer.WriteFile(path.Join(assetsOutDir, filepath.ToSlash(rel)), data)
	})
	if err != nil {
		if _, ok := errors.AsClassified(err); ok || ctx.Err() != nil {
			return err
		}
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to copy assets").
			WithContext("path", root).
			Build()
	}
	b.logger.Debug("Copied assets", logfields.Count(copied))
	return nil
}

// stageFinalize moves the staged entries into the output directory.
func stageFinalize(_ context.Context, bs *BuildState) error {
	b := bs.Builder
	entries, err := os.ReadDir(bs.stageDir)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "staging directory missing").
			WithContext("path", bs.stageDir).
			Build()
	}
	for _, e := range entries {
		from := filepath.Join(bs.stageDir, e.Name())
		to := filepath.Join(b.outputDir, e.Name())
		if err := os.Rename(from, to); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to promote staged output").
				WithContext("path", to).
				Build()
		}
	}
	if err := os.Remove(bs.stageDir); err != nil {
		b.logger.Warn("Failed to remove staging directory", logfields.Path(bs.stageDir), logfields.Error(err))
	}
	bs.stageDir = ""
	if dw, ok := bs.writer.(*render.DirWriter); ok {
		bs.Report.Files = dw.Files()
	}
	b.logger.Info("Promoted staging directory", logfields.Path(b.outputDir))
	return nil
}

// abortStaging removes the staging directory and leaves the output directory empty.
func (b *Builder) abortStaging(bs *BuildState) {
	if bs.stageDir != "" {
		dir := bs.stageDir
		bs.stageDir = ""
		if err := os.RemoveAll(dir); err != nil {
			b.logger.Warn("Failed to remove staging directory after abort", logfields.Path(dir), logfields.Error(err))
		} else {
			b.logger.Debug("Removed staging directory after abort", logfields.Path(dir))
		}
	}
	if err := clearDir(b.outputDir); err != nil {
		b.logger.Warn("Failed to clear output directory after abort", logfields.Path(b.outputDir), logfields.Error(err))
	}
}

// clearDir creates dir if needed and removes everything inside it.
func clearDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", dir).
			Build()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to read output directory").
			WithContext("path", dir).
			Build()
	}
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if err := os.RemoveAll(p); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to clear output directory").
				WithContext("path", p).
				Build()
		}
	}
	return nil
}
