package report

import (
	"context"
	"fmt"
	"log/slog"

	"masteryplot/internal/mastery"
)

type Options struct {
	Players []string
	Region  string
	// Champions is the total number of champions in the game, defaults to
	// the size of the built in registry.
	Champions int
	// SkipFailed logs and skips players whose table cannot be fetched
	// instead of aborting.
	SkipFailed bool
}

// ChampionTotal is Champions or the registry size when unset.
func (o Options) ChampionTotal() int {
	if o.Champions > 0 {
		return o.Champions
	}
	return mastery.ChampionCount()
}

type PlayerTable struct {
	Player string
	Table  mastery.Table
}

// FetchAll fetches the players one after another, in order.
func FetchAll(ctx context.Context, source mastery.Source, opts Options) ([]PlayerTable, error) {
	if len(opts.Players) == 0 {
		return nil, fmt.Errorf("no players given")
	}

	var out []PlayerTable
	for _, player := range opts.Players {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		slog.InfoContext(ctx, "gathering mastery", "player", player)
		table, err := source.Fetch(ctx, player, opts.Region)
		if err != nil {
			if opts.SkipFailed {
				slog.WarnContext(ctx, "skipping player", "player", player, "err", err)
				continue
			}
			return out, err
		}
		slog.DebugContext(ctx, "finished", "player", player, "champions", len(table.Rows))
		out = append(out, PlayerTable{Player: player, Table: table})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no player could be fetched")
	}
	return out, nil
}
