package cli

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"pfeifer.dev/controlsd/params"
	"pfeifer.dev/controlsd/utils"
)

// Handle runs the requested subcommand and exits, or returns when the daemon
// should start.
func Handle() {
	loadEnv()

	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Send commands to and watch an active controlsd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:    "settings",
				Aliases: []string{"s"},
				Usage:   "Edit the persisted controlsd settings",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return editSettings()
				},
			},
			simulateCommand(),
		},
		Name:  "Controlsd",
		Usage: "Start an instance of controlsd",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}

// loadEnv applies an optional .env file before the params path is used.
func loadEnv() {
	err := godotenv.Load()
	if os.IsNotExist(err) {
		utils.Logde(err, "no .env file")
	} else {
		utils.Logwe(err, "could not load .env")
	}
	params.ParamsPath = params.GetParamsPath()
}
