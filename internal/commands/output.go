package commands

import (
	"log/slog"
	"os"

	"masteryplot/internal/chart"
)

func writeFigure(path string, fig chart.Figure) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = fig.WriteSVG(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	slog.Info("wrote chart", "path", path)
	return nil
}
