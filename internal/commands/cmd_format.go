package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/sketchgrid/internal/core/prompt"
	"github.com/colonyops/sketchgrid/pkg/iojson"
)

type FormatCmd struct {
	flags *Flags
	kind  string
	json  bool
}

// NewFormatCmd creates a new format command.
func NewFormatCmd(flags *Flags) *FormatCmd {
	return &FormatCmd{flags: flags}
}

// Register adds the format command to the application.
func (cmd *FormatCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "format",
		Usage:     "Fill {n} placeholders in a message template",
		UsageText: "sketchgrid format <template> [values...]\n   sketchgrid format --kind grid-size-high 60 60",
		Description: `Replaces each {n} placeholder in the template with the n-th value.
Placeholders without a matching value are printed as written.

With --kind, renders one of the built-in warnings (destructive-action,
grid-size-high, wipe) instead, using the arguments as its values.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Usage:       "built-in warning to render",
				Destination: &cmd.kind,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the result as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FormatCmd) run(_ context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	w := c.Root().Writer

	if cmd.kind != "" {
		view, err := warningView(cmd.kind, args)
		if err != nil {
			return err
		}
		if cmd.json {
			return iojson.WriteWith(w, c.Root().ErrWriter, view)
		}
		_, err = fmt.Fprintf(w, "%s\n%s\n[%s] [%s]\n", view.Heading, view.Description, view.ConfirmLabel, view.AbortLabel)
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing template. Run 'sketchgrid format --help' for usage")
	}

	out := prompt.Format(args[0], toValues(args[1:])...)
	if cmd.json {
		return iojson.WriteWith(w, c.Root().ErrWriter, map[string]string{"text": out})
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func warningView(kind string, args []string) (prompt.View, error) {
	k, err := prompt.ParseKind(kind)
	if err != nil {
		return prompt.View{}, err
	}

	req, err := prompt.NewWarning(k, toValues(args)...)
	if err != nil {
		return prompt.View{}, err
	}
	return req.View(), nil
}

func toValues(args []string) []any {
	values := make([]any, len(args))
	for i, a := range args {
		values[i] = a
	}
	return values
}
