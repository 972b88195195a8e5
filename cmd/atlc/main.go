// Program atlc replays a captured log of LTE modem notification lines
// through the link-control layer and prints the Events it decodes.
//
// Usage: atlc [--input FILE] [--debug]
//
// Each line of input is a single notification such as
// "+CEREG: 5,\"76C1\",\"0102DA04\",7" (with or without a trailing AT
// RESP tail; atlc appends "OK\r\n" itself when one is missing). Blank
// lines and lines beginning with "#" are skipped, so a log file can be
// annotated.
//
// If FILE is omitted, atlc reads standard input.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/repr"
	"github.com/pborman/getopt"

	"github.com/MirkoCovizzi/atparser/linkctl"
)

// loopbackTransport answers every command with a bare OK tail. atlc
// never issues commands itself; Controller still requires a Transport
// to be constructed, and a real one would be supplied by a caller
// driving an actual modem link.
type loopbackTransport struct{}

func (loopbackTransport) Send(_ context.Context, _ string) ([]byte, error) {
	return []byte("\r\nOK\r\n"), nil
}

func main() {
	var (
		inputPath string
		debug     bool
		help      bool
	)
	getopt.StringVarLong(&inputPath, "input", 'i', "file of notification lines to replay", "FILE")
	getopt.BoolVarLong(&debug, "debug", 'd', "repr each decoded event instead of printing a summary line")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		os.Exit(0)
	}

	in := os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	dispatcher := linkctl.NewDispatcher(32)
	dispatcher.AddHandler(func(evt linkctl.Event) {
		if debug {
			repr.Println(evt)
			return
		}
		fmt.Printf("%s %s\n", time.Now().UTC().Format(time.RFC3339), evt.Type)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl := linkctl.NewController(loopbackTransport{}, dispatcher, logger)
	go ctrl.Run(ctx)

	scanner := bufio.NewScanner(in)
	var lines, decoded int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines++

		raw := line + "\r\n"
		if !strings.Contains(line, "OK") && !strings.Contains(line, "ERROR") {
			raw += "OK\r\n"
		}
		if err := ctrl.HandleLine(ctx, []byte(raw)); err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lines, err)
			continue
		}
		decoded++
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cancel()
	<-dispatcher.Done()

	fmt.Fprintf(os.Stderr, "%d line(s) read, %d handled without error\n", lines, decoded)
}
