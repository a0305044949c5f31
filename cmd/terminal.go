package cmd

import (
	"context"
	"io"

	"cinema-seating/internal/adaptor"

	"go.uber.org/zap"
)

// Terminal runs the interactive booking menu on in/out until the operator
// exits or ctx is cancelled.
func Terminal(ctx context.Context, menu *adaptor.MenuHandler, in io.Reader, out io.Writer, logger *zap.Logger) error {
	logger.Info("Terminal session started")
	defer logger.Info("Terminal session ended")

	return menu.Run(ctx, in, out)
}
