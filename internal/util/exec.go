package util

import (
	"context"
	"errors"
	"fmt"
	"github.com/markusressel/fps2go/internal/ui"
	"os/exec"
	"strings"
	"time"
)

// SafeCmdExecution runs the given executable after checking its permissions
// and returns its trimmed stdout.
func SafeCmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	if _, err := CheckFilePermissionsForExecution(executable); err != nil {
		return "", fmt.Errorf("cannot execute %s: %w", executable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, executable, args...).Output()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		ui.Warning("Command timed out: %s", executable)
		return "", fmt.Errorf("command timed out after %s: %s", timeout, executable)
	}

	if err != nil {
		ui.Warning("Command failed to execute: %s", executable)
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
