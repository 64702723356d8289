package config

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/types"
)

// Context builds the base compilation context. Commands become deferred
// values; a data entry with the same name wins. Each command runs at most
// once per returned Context, the first time a file shows it, so a new
// build that calls Context again sees fresh output.
func (c *Config) Context() (types.Context, error) {
	values := make(map[string]types.Value, len(c.Data)+len(c.Commands))

	for name, command := range c.Commands {
		values[name] = types.Deferred(commandValue(c.Shell, command))
	}

	for name, raw := range c.Data {
		v, err := types.FromGo(raw)
		if err != nil {
			return types.Context{}, errors.Wrapf(err, errors.ErrConfigValid, "data.%s", name)
		}
		values[name] = v
	}

	return types.NewContext(values), nil
}

// commandValue runs command through shell and yields its trimmed stdout.
// The outcome, failure included, is kept for later calls.
func commandValue(shell, command string) types.DeferredFunc {
	var (
		once   sync.Once
		output string
		err    error
	)
	return func(ctx context.Context) (string, error) {
		once.Do(func() {
			output, err = runCommand(ctx, shell, command)
		})
		return output, err
	}
}

func runCommand(ctx context.Context, shell, command string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, errors.ErrDeferred, "command %q failed", command).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	return strings.TrimRight(stdout.String(), "\r\n"), nil
}
