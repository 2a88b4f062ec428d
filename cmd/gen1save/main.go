package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/gen1save"
	"github.com/urfave/cli/v2"
)

const defaultDB = "gen1save.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func openSave(c *cli.Context) (*gen1save.Save, error) {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}
	return gen1save.Open(c.Args().First(), newLogger(c))
}

func main() {
	app := cli.NewApp()

	app.Name = "gen1save"
	app.Usage = "Pokémon Red/Blue save file utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GEN1SAVE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Show the contents of a save",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: formatText,
					Usage: "output format, text or yaml",
				},
			},
			Action: func(c *cli.Context) error {
				s, err := openSave(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				r, err := newReport(s)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := r.write(os.Stdout, c.String("format")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "check",
			Usage:       "Verify the checksums of a save",
			Description: "Exits with status 1 if any checksum does not match.",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				s, err := openSave(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				r := s.Checksums()
				writeChecksums(os.Stdout, r)
				if !r.Valid() {
					return cli.Exit("", 1)
				}

				return nil
			},
		},
		{
			Name:        "fix",
			Usage:       "Repair the checksums of a save",
			Description: "The original file is copied to a \"(BACKUP)\" file and the repaired save is written to an \"(EDITED)\" file alongside it.",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "backup",
					Value: true,
					Usage: "back up the original file first",
				},
			},
			Action: func(c *cli.Context) error {
				s, err := openSave(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				file := c.Args().First()

				if c.Bool("backup") {
					backup, err := gen1save.Backup(file)
					if err != nil {
						return cli.Exit(err, 1)
					}
					newLogger(c).Printf("Backed up \"%s\" to \"%s\"\n", file, backup)
				}

				if err := s.Repair(); err != nil {
					return cli.Exit(err, 1)
				}

				edited := gen1save.EditedPath(file)
				if err := gen1save.WriteFile(edited, s.Buffer()); err != nil {
					return cli.Exit(err, 1)
				}
				fmt.Println(edited)

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Add a save to the database",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				col, err := gen1save.NewCollection(c.String("db"), newLogger(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer col.Close()

				r, err := col.Import(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				fmt.Printf("%s %s %s\n", r.Batch, r.SHA1, r.Path)

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and add every save to the database",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				col, err := gen1save.NewCollection(c.String("db"), newLogger(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer col.Close()

				batch, err := col.Scan(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				n, err := col.DB().CountBatch(batch)
				if err != nil {
					return cli.Exit(err, 1)
				}
				fmt.Printf("%s %d saves\n", batch, n)

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
