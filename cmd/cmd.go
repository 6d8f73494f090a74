// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup of the configuration file and session database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a config.toml populated with defaults",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   r.configPath,
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the session database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   r.configPath,
					},
					&cli.BoolFlag{
						Name:  "reset",
						Usage: "Drop the stored session and recreate the schema",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles account creation and the session
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage your account session",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: append(accountFlags(), &cli.StringFlag{
					Name:  "birthday",
					Usage: "Birthday as YYYY-MM-DD",
				}, &cli.StringFlag{
					Name:  "email",
					Usage: "Email address",
				}),
				Action: r.AuthRegister,
			},
			{
				Name:   "login",
				Usage:  "Log in and store the session token",
				Flags:  accountFlags(),
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:  "status",
				Usage: "Show the stored session",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AuthStatus,
			},
		},
	}
}

// moviesCommand handles catalog lookups and export
func moviesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "movies",
		Usage: "Browse the movie catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List or export the movie catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "favorites",
						Aliases: []string{"f"},
						Usage:   "Only list your favorite movies",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: table, json, csv, markdown or text",
						Value: "table",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the export to this file instead of stdout",
					},
				},
				Action: r.MoviesList,
			},
			{
				Name:      "show",
				Usage:     "Show a movie and its synopsis",
				Arguments: []cli.Argument{&cli.StringArg{Name: "title"}},
				Flags:     []cli.Flag{jsonFlag()},
				Action:    r.MoviesShow,
			},
			{
				Name:      "genre",
				Usage:     "Show a genre description",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Flags:     []cli.Flag{jsonFlag()},
				Action:    r.MoviesGenre,
			},
			{
				Name:      "director",
				Usage:     "Show a director's biography",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Flags:     []cli.Flag{jsonFlag()},
				Action:    r.MoviesDirector,
			},
		},
	}
}

// favoritesCommand handles the user's favorite list
func favoritesCommand(r *Runner) *cli.Command {
	movieArg := []cli.Argument{&cli.StringArg{Name: "movie"}}
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage your favorite movies",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List your favorite movies",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.FavoritesList,
			},
			{
				Name:      "add",
				Usage:     "Add a movie (id or title) to your favorites",
				Arguments: movieArg,
				Action:    r.FavoritesAdd,
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Remove a movie (id or title) from your favorites",
				Arguments: movieArg,
				Action:    r.FavoritesRemove,
			},
			{
				Name:      "toggle",
				Usage:     "Add the movie if it is not a favorite, remove it otherwise",
				Arguments: movieArg,
				Action:    r.FavoritesToggle,
			},
		},
	}
}

// profileCommand handles the logged in user's account
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "View and manage your account",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show your account and favorite movies",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.ProfileShow,
			},
			{
				Name:  "edit",
				Usage: "Replace your account details",
				Flags: append(accountFlags(), &cli.StringFlag{
					Name:  "birthday",
					Usage: "Birthday as YYYY-MM-DD",
				}, &cli.StringFlag{
					Name:  "email",
					Usage: "Email address",
				}),
				Action: r.ProfileEdit,
			},
			{
				Name:  "delete",
				Usage: "Delete your account",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.ProfileDelete,
			},
		},
	}
}

// apiCommand handles direct API calls
func apiCommand(r *Runner) *cli.Command {
	commands := []*cli.Command{}
	for _, method := range []string{"get", "post", "put", "patch", "delete"} {
		flags := []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-auth",
				Usage: "Do not send the session token",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		}
		if method != "get" && method != "delete" {
			flags = append(flags, &cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "JSON body to send",
			})
		}
		commands = append(commands, &cli.Command{
			Name:      method,
			Usage:     "Direct " + method + " request to the myFlix API, prints the raw response",
			Arguments: []cli.Argument{&cli.StringArg{Name: "path"}},
			Flags:     flags,
			Action:    r.APIRequest,
		})
	}

	return &cli.Command{
		Name:     "api",
		Usage:    "Direct calls to the myFlix API",
		Commands: commands,
	}
}

// tuiCommand returns the top-level TUI command.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive movie browser",
		Action:  r.TUI,
	}
}

func accountFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   "Account username",
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "Account password (prompted when omitted)",
			Sources: cli.EnvVars("MYFLIX_PASSWORD"),
		},
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Output raw JSON",
	}
}
