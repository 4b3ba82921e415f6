// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/cscan/lexer"
)

func main() {
	rulesPath := flag.String("rules", "", "JSON rule source replacing the built-in rules")
	debug := flag.Bool("debug", false, "Enable debug logging")
	bestEffort := flag.Bool("best-effort", false, "Print the tokens scanned before an unknown token")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [source ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logrus.New()
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	rules, err := loadRules(logger, *rulesPath, *debug)
	if err != nil {
		logger.WithError(err).Fatal("failed to load rules")
	}

	scanner := lexer.New(
		lexer.WithRules(rules),
		lexer.WithLogger(logger),
		lexer.WithDebug(*debug),
		lexer.WithBestEffort(*bestEffort),
	)

	sources, err := readSources(flag.Args())
	if err != nil {
		logger.WithError(err).Fatal("failed to read source")
	}

	if len(sources) == 1 {
		if err = scanOne(scanner, sources[0]); err != nil {
			logSourceError(logger, sources[0].name, err)
			os.Exit(1)
		}

		return
	}

	texts := make([]string, len(sources))
	for index := range sources {
		texts[index] = sources[index].text
	}

	results, err := lexer.ScanBatch(context.Background(), texts, lexer.WithBatchScanner(scanner))
	for _, resl := range results {
		fmt.Printf("==> %s <==\n", sources[resl.Index].name)
		if renderErr := lexer.Render(os.Stdout, resl.Tokens); renderErr != nil {
			logger.WithError(renderErr).Fatal("failed to write tokens")
		}
		if resl.Err != nil {
			logSourceError(logger, sources[resl.Index].name, resl.Err)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

type source struct {
	name string
	text string
}

// loadRules obtains the built-in RuleTable or one read from a JSON rule source.
func loadRules(logger logrus.FieldLogger, path string, debug bool) (*lexer.RuleTable, error) {
	if path == "" {
		return lexer.DefaultRules(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return lexer.LoadRules(file, lexer.WithBuildLogger(logger), lexer.WithBuildDebug(debug))
}

// readSources reads every path, or stdin when no path is given.
func readSources(paths []string) (sources []source, err error) {
	if len(paths) < 1 {
		var data []byte
		if data, err = io.ReadAll(os.Stdin); err != nil {
			return
		}
		sources = []source{{name: "<stdin>", text: string(data)}}

		return
	}

	sources = make([]source, len(paths))
	for index, path := range paths {
		var data []byte
		if data, err = os.ReadFile(path); err != nil {
			return
		}
		sources[index] = source{name: path, text: string(data)}
	}

	return
}

func scanOne(scanner *lexer.Scanner, src source) error {
	tokens, err := scanner.Scan(src.text)
	if renderErr := lexer.Render(os.Stdout, tokens); renderErr != nil {
		return renderErr
	}

	return err
}

func logSourceError(logger logrus.FieldLogger, name string, err error) {
	entry := logger.WithField("source", name)

	var scanErr *lexer.ScanError
	if errors.As(err, &scanErr) {
		entry = entry.WithFields(logrus.Fields{"pos": scanErr.Pos, "near": scanErr.Near})
	}

	entry.WithError(err).Error("scan failed")
}
