package commands

import (
	"context"
	"errors"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/sketchgrid/internal/core/config"
	"github.com/colonyops/sketchgrid/internal/printer"
	"github.com/colonyops/sketchgrid/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "sketchgrid config validate [options]",
				Description: "Validates the configuration file, checking grid limits, theme names, and file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validationIssue is one failed check in the JSON output.
type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	var issues []validationIssue
	cfg, err := config.Parse(cmd.flags.ConfigPath, cmd.flags.DataDir)
	if err != nil {
		issues = []validationIssue{{Field: "config_file", Message: err.Error()}}
	} else {
		issues = collectIssues(cfg.ValidateDeep(cmd.flags.ConfigPath))
	}

	if cmd.format == "json" {
		return cmd.outputJSON(c.Root().Writer, c.Root().ErrWriter, issues)
	}

	return cmd.outputText(printer.Ctx(ctx), issues)
}

// collectIssues flattens a validation error into per-field issues. Errors
// that are not field errors are reported under "config".
func collectIssues(err error) []validationIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationIssue{{Field: "config", Message: err.Error()}}
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}

func (cmd *ConfigValidateCmd) outputJSON(w, ew io.Writer, issues []validationIssue) error {
	out := struct {
		Valid  bool              `json:"valid"`
		Config string            `json:"config"`
		Errors []validationIssue `json:"errors,omitempty"`
	}{
		Valid:  len(issues) == 0,
		Config: cmd.flags.ConfigPath,
		Errors: issues,
	}

	if err := iojson.WriteWith(w, ew, out); err != nil {
		return err
	}
	if !out.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, issues []validationIssue) error {
	for _, issue := range issues {
		p.Errorf("%s: %s", issue.Field, issue.Message)
	}

	if len(issues) == 0 {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Printf("")
	p.Errorf("%d error(s) found", len(issues))
	return cli.Exit("", 1)
}
