package cmd

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/llehouerou/looper/internal/app"
	"github.com/llehouerou/looper/internal/catalog"
	"github.com/llehouerou/looper/internal/config"
	"github.com/llehouerou/looper/internal/errmsg"
	"github.com/llehouerou/looper/internal/playback"
	"github.com/llehouerou/looper/internal/player"
	"github.com/llehouerou/looper/internal/stderr"
	"github.com/llehouerou/looper/internal/tags"
	"github.com/llehouerou/looper/internal/ui/styles"
)

// run builds everything that can fail before the terminal is touched, then
// hands control to the session until it quits.
func run(dir string, opts *options) error {
	log := setupLogger(opts.logLevel, stderr.Original())

	cfg := config.LoadOrCreate(opts.configPath, log)
	// Names need tags only; the duration hint is read per selected track.
	cat, err := catalog.Build(dir, catalog.Options{
		Extensions:   cfg.Extensions(),
		ShowFullPath: cfg.UI.ShowFullPath,
		Tags:         tags.FileReader{TagsOnly: true},
	})
	if err != nil {
		return fail(errmsg.OpCatalogBuild, err)
	}
	log.Debug().Str("dir", cat.Dir()).Int("tracks", cat.Len()).Msg("catalog built")

	if err := stderr.Start(); err != nil {
		log.Debug().Err(err).Msg("stderr capture unavailable")
	}
	defer func() {
		for _, line := range stderr.Stop() {
			log.Debug().Str("line", line).Msg("audio backend output")
		}
	}()

	backend := player.New()
	defer backend.Close()

	ctrl := playback.New(backend, tags.FileReader{}, playback.VolumeRange{
		Default: cfg.Volume.Default,
		Step:    cfg.Volume.Step,
		Min:     cfg.Volume.Min,
		Max:     cfg.Volume.Max,
	})

	// Checked once; the theme never re-queries the terminal
	hasColor := lipgloss.ColorProfile() != termenv.Ascii
	theme := styles.New(cfg.Palette(), hasColor)

	return runSession(tea.NewProgram(app.New(cat, ctrl, theme), tea.WithAltScreen()))
}

// runSession runs p to completion. An interrupt (SIGINT) counts as quitting.
func runSession(p *tea.Program) error {
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrInterrupted) {
		return fail(errmsg.OpSession, err)
	}
	return nil
}
