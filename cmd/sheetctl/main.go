// sheetctl is a small ops tool for checking the spreadsheet setup without
// starting the web server.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/arifmahmud/sheetboard/internal/cache"
	"github.com/arifmahmud/sheetboard/internal/config"
	"github.com/arifmahmud/sheetboard/internal/sheets"
)

func newClient(c *cli.Context) (*sheets.Client, string, error) {
	cfg := config.Load()

	creds, err := sheets.LoadCredentials(cfg.Sheets.CredentialsEnvJSON, cfg.Sheets.CredentialsFile)
	if err != nil {
		return nil, "", err
	}

	client, err := sheets.NewClient(c.Context, creds)
	if err != nil {
		return nil, "", err
	}

	name := c.String("spreadsheet")
	if name == "" {
		name = cfg.Sheets.SpreadsheetName
	}
	return client, name, nil
}

func checkCommand(c *cli.Context) error {
	client, name, err := newClient(c)
	if err != nil {
		return err
	}

	id, err := client.OpenSpreadsheet(c.Context, name)
	if err != nil {
		return err
	}
	fmt.Printf("spreadsheet %q found (id=%s)\n", name, id)

	titles, err := client.WorksheetTitles(c.Context, id)
	if err != nil {
		return err
	}
	fmt.Println("worksheets:")
	for _, t := range titles {
		fmt.Printf("  - %s\n", t)
	}
	return nil
}

func dumpCommand(c *cli.Context) error {
	client, name, err := newClient(c)
	if err != nil {
		return err
	}

	id, err := client.OpenSpreadsheet(c.Context, name)
	if err != nil {
		return err
	}

	rows, err := client.Records(c.Context, id, c.String("worksheet"))
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("worksheet is empty")
		return nil
	}

	headers := make([]string, 0, len(rows[0]))
	for h := range rows[0] {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	w := csv.NewWriter(os.Stdout)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		out := make([]string, len(headers))
		for i, h := range headers {
			out[i] = row.Str(h, "")
		}
		if err := w.Write(out); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func cacheFlushCommand(c *cli.Context) error {
	cfg := config.Load()
	if !cfg.Cache.Enabled {
		fmt.Println("cache is disabled, nothing to flush")
		return nil
	}

	rowCache, err := cache.NewRowCache(cfg.Cache)
	if err != nil {
		return err
	}
	if err := rowCache.InvalidateAll(context.Background()); err != nil {
		return err
	}
	fmt.Println("row cache flushed")
	return nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "sheetctl",
		Usage: "Verify and inspect the dashboard's spreadsheet setup",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "spreadsheet",
				Usage:   "Spreadsheet name (defaults to SHEET_SPREADSHEET_NAME)",
				EnvVars: []string{"SHEET_SPREADSHEET_NAME"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "Validate credentials and list worksheet titles",
				Action: checkCommand,
			},
			{
				Name:  "dump",
				Usage: "Print a worksheet as CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "worksheet",
						Usage:    "Worksheet title to dump",
						Required: true,
					},
				},
				Action: dumpCommand,
			},
			{
				Name:  "cache",
				Usage: "Row cache maintenance",
				Subcommands: []*cli.Command{
					{
						Name:   "flush",
						Usage:  "Invalidate all cached worksheet rows",
						Action: cacheFlushCommand,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
