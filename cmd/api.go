package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/desertthunder/myflix/internal/shared"
	"github.com/urfave/cli/v3"
)

// APIRequest makes a direct request to the myFlix API using the subcommand name as the method.
func (r *Runner) APIRequest(ctx context.Context, cmd *cli.Command) error {
	method := strings.ToUpper(cmd.Name)
	path := cmd.StringArg("path")
	data := cmd.String("data")
	auth := !cmd.Bool("no-auth")

	if path == "" {
		return fmt.Errorf("%w: request path", shared.ErrMissingArgument)
	}

	if data != "" {
		var jsonTest any
		if err := json.Unmarshal([]byte(data), &jsonTest); err != nil {
			return fmt.Errorf("%w: data is not valid JSON: %v", shared.ErrInvalidInput, err)
		}
	}

	r.logger.Info(method+" request", "path", path, "auth", auth)

	resp, err := r.raw.Raw(ctx, method, path, []byte(data), auth)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, cmd.Bool("pretty"))
	}

	if len(resp.Body) == 0 {
		return r.writePlain("✓ %d\n", resp.StatusCode)
	}
	return r.writePlain("%s\n", resp.Body)
}
