package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/roster-filter-service/internal/app/roster"
	"github.com/preston-bernstein/roster-filter-service/internal/catalog"
	"github.com/preston-bernstein/roster-filter-service/internal/config"
	"github.com/preston-bernstein/roster-filter-service/internal/filter"
	"github.com/preston-bernstein/roster-filter-service/internal/poller"
	"github.com/preston-bernstein/roster-filter-service/internal/providers"
	"github.com/preston-bernstein/roster-filter-service/internal/providers/apifootball"
	"github.com/preston-bernstein/roster-filter-service/internal/providers/fixture"
	"github.com/preston-bernstein/roster-filter-service/internal/snapshots"
	"github.com/preston-bernstein/roster-filter-service/internal/store"
)

const (
	sourceFixture     = "fixture"
	sourceAPIFootball = "apifootball"
	sourceSnapshots   = "snapshots"

	formatTable = "table"
	formatJSON  = "json"
)

type playersOptions struct {
	source      string
	snapshotDir string
	timeout     time.Duration
	format      string

	leagues       []string
	positions     []string
	nationalities []string
	ageMin        int
	ageMax        int
	numberMin     int
	numberMax     int
}

func newPlayersCmd() *cobra.Command {
	opts := &playersOptions{}
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Load rosters and print the players matching a filter",
		Long: `Load the configured leagues from a provider or from roster snapshots on disk,
apply the filter given by flags and print the matching players.
Set flags replace the default selection; an omitted flag keeps it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlayers(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.source, "source", sourceFixture, "Roster source (fixture, apifootball, snapshots)")
	f.StringVar(&opts.snapshotDir, "snapshot-dir", "", "Snapshot directory (defaults to SNAPSHOT_DIR)")
	f.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Upper bound on loading rosters")
	f.StringVarP(&opts.format, "output", "o", formatTable, "Output format (table, json)")
	f.StringArrayVar(&opts.leagues, "league", nil, "League code to include (repeatable)")
	f.StringArrayVar(&opts.positions, "position", nil, "Position to include (repeatable)")
	f.StringArrayVar(&opts.nationalities, "nationality", nil, "Nationality to include (repeatable; none means all)")
	f.IntVar(&opts.ageMin, "age-min", filter.DefaultAgeMin, "Minimum age")
	f.IntVar(&opts.ageMax, "age-max", filter.DefaultAgeMax, "Maximum age")
	f.IntVar(&opts.numberMin, "number-min", filter.DefaultShirtNumberMin, "Minimum shirt number")
	f.IntVar(&opts.numberMax, "number-max", filter.DefaultShirtNumberMax, "Maximum shirt number")
	return cmd
}

func runPlayers(cmd *cobra.Command, opts *playersOptions) error {
	if opts.format != formatTable && opts.format != formatJSON {
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cmd.ErrOrStderr())

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	svc := roster.NewService(store.NewMemoryStore(), cat, nil)
	if err := loadRosters(ctx, opts, cfg, cat, svc, logger); err != nil {
		return err
	}

	view := svc.Evaluate(opts.state(cmd, cat))
	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	return renderPlayers(out, view)
}

func loadRosters(ctx context.Context, opts *playersOptions, cfg config.Config, cat catalog.Catalog, svc *roster.Service, logger *slog.Logger) error {
	if opts.source == sourceSnapshots {
		dir := opts.snapshotDir
		if dir == "" {
			dir = cfg.SnapshotDir
		}
		if snapshots.Restore(snapshots.NewFSStore(dir), svc, cat.Season, cat.Codes(), logger) == 0 {
			return fmt.Errorf("no roster snapshots for season %s under %s", cat.Season, dir)
		}
		return nil
	}

	provider, err := buildProvider(opts.source, cfg, logger)
	if err != nil {
		return err
	}
	p := poller.New(provider, svc, nil, logger, nil, poller.Config{
		Season:       cat.Season,
		Leagues:      cat.Leagues,
		Concurrency:  cfg.PollConcurrency,
		ProviderName: opts.source,
	})
	if err := p.Refresh(ctx); err != nil {
		if p.Status().ConsecutiveFailures > 0 {
			return fmt.Errorf("load rosters: %w", err)
		}
		logger.Warn("some leagues failed to load", "failed_leagues", p.Status().FailedLeagues, "error", err)
	}
	return nil
}

func buildProvider(source string, cfg config.Config, logger *slog.Logger) (providers.RosterProvider, error) {
	switch source {
	case sourceFixture:
		return fixture.New(), nil
	case sourceAPIFootball:
		if cfg.APIFootball.APIKey == "" {
			return nil, fmt.Errorf("APIFOOTBALL_API_KEY is required for source %s", source)
		}
		client := apifootball.NewClient(apifootball.Config{
			BaseURL:  cfg.APIFootball.BaseURL,
			APIKey:   cfg.APIFootball.APIKey,
			MaxPages: cfg.APIFootball.MaxPages,
		})
		limited := providers.NewRateLimitedProvider(client, cfg.APIFootball.RateInterval, logger)
		return providers.NewRetryingProvider(limited, logger, nil, source, 0, 0), nil
	default:
		return nil, fmt.Errorf("unknown source %q", source)
	}
}

// state starts from the catalog defaults and applies only the flags the user set.
func (o *playersOptions) state(cmd *cobra.Command, cat catalog.Catalog) filter.State {
	state := cat.DefaultState()
	f := cmd.Flags()
	if f.Changed("league") {
		state.Leagues = o.leagues
	}
	if f.Changed("position") {
		state.Positions = o.positions
	}
	if f.Changed("nationality") {
		state.Nationalities = o.nationalities
	}
	state.SetRange(filter.DimensionAge, changedInt(cmd, "age-min", o.ageMin), changedInt(cmd, "age-max", o.ageMax))
	state.SetRange(filter.DimensionShirtNumber, changedInt(cmd, "number-min", o.numberMin), changedInt(cmd, "number-max", o.numberMax))
	return state
}

func changedInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
