// Command board is an interactive terminal client for the activity signup
// service. It lists activities, signs students up, and removes them,
// mirroring the original activity web page.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"activityboard/config"
	"activityboard/internal/board"
	"activityboard/internal/client"
)

func main() {
	configPath := flag.String("config", "board.toml", "path to the board config file")
	flag.Parse()

	cfg, err := config.LoadBoard(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	api := client.New(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout()})
	tr := board.NewTranslator(cfg.Locale)
	b := board.New(api, os.Stdout, logger, tr, cfg.HideDelay())

	ctx := context.Background()
	b.Refresh(ctx)
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			b.Refresh(ctx)
		case "signup":
			if len(fields) < 3 {
				fmt.Println("usage: signup <email> <activity name>")
				continue
			}
			b.SetEmail(fields[1])
			b.Signup(ctx, strings.Join(fields[2:], " "))
		case "remove":
			if len(fields) < 3 {
				fmt.Println("usage: remove <email> <activity name>")
				continue
			}
			b.Unregister(ctx, strings.Join(fields[2:], " "), fields[1])
		case "help":
			printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q; type help\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  list                           refresh and show all activities
  signup <email> <activity…>     sign up for an activity
  remove <email> <activity…>     remove a participant
  help                           show this help
  quit                           exit`)
}
