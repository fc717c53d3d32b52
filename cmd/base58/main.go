package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/bartossh/base58cli/configuration"
	"github.com/bartossh/base58cli/dispatcher"
	"github.com/bartossh/base58cli/fileoperations"
	"github.com/bartossh/base58cli/logging"
	"github.com/bartossh/base58cli/logo"
	"github.com/bartossh/base58cli/terminal"
)

const (
	exitSuccess = iota
	exitOperationFailed
	exitUsage
)

const usage = "A CLI tool to encode/decode Base58 strings like Solana"

// errOperationFailed is returned by actions in strict mode, the failure itself is already printed.
var errOperationFailed = errors.New("operation failed")

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	err := newApp(out, errOut).Run(args)
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errOperationFailed) {
		return exitOperationFailed
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if exitErr.Error() != "" {
			pterm.Error.WithWriter(errOut).Println(exitErr.Error())
		}
		return exitErr.ExitCode()
	}
	pterm.Error.WithWriter(errOut).Println(err.Error())
	return exitUsage
}

func newApp(out, errOut io.Writer) *cli.App {
	var (
		config string
		strict bool
		input  string
		hex    bool
		file   string
		output string
	)

	execute := func(op dispatcher.Operation) error {
		cfg := configuration.Configuration{}
		if config != "" {
			var err error
			cfg, err = configuration.Read(config)
			if err != nil {
				return err
			}
		}

		var writers []io.Writer
		if cfg.Logger.LogPath != "" {
			f, err := os.OpenFile(cfg.Logger.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("cannot open log file: %w", err)
			}
			defer f.Close()
			writers = append(writers, f)
		}
		warn := pterm.Warning.WithWriter(errOut)
		log := logging.New(func(err error) { warn.Println(err.Error()) }, writers...)

		d := dispatcher.New(fileoperations.New(cfg.FileOperator), terminal.New(out, errOut), log)
		if err := d.Run(op); err != nil && (strict || cfg.StrictExit) {
			return errOperationFailed
		}
		return nil
	}

	inputFlag := func(usage string) cli.Flag {
		return &cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       usage,
			Destination: &input,
			Required:    true,
		}
	}

	return &cli.App{
		Name:           "solana-base58-cli",
		Usage:          usage,
		Version:        "0.1.0",
		Description:    logo.Render(),
		Writer:         out,
		ErrWriter:      errOut,
		ExitErrHandler: func(_ *cli.Context, _ error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Load configuration from `FILE`",
				Destination: &config,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "Exit with non zero status when the conversion fails.",
				Destination: &strict,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "encode",
				Usage: "Encodes text, or hex string with --hex, to Base58.",
				Flags: []cli.Flag{
					inputFlag("Text or hex string to encode."),
					&cli.BoolFlag{
						Name:        "hex",
						Usage:       "Treat input as hex string.",
						Destination: &hex,
					},
				},
				Action: func(_ *cli.Context) error {
					return execute(dispatcher.Encode{Input: input, Hex: hex})
				},
			},
			{
				Name:  "decode",
				Usage: "Decodes Base58 to text, or to hex string with --hex.",
				Flags: []cli.Flag{
					inputFlag("Base58 string to decode."),
					&cli.BoolFlag{
						Name:        "hex",
						Usage:       "Print decoded bytes as hex string.",
						Destination: &hex,
					},
				},
				Action: func(_ *cli.Context) error {
					return execute(dispatcher.Decode{Input: input, Hex: hex})
				},
			},
			{
				Name:  "wallet-to-base58",
				Usage: "Reads wallet JSON byte array file and encodes it to Base58 private key.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "file",
						Aliases:     []string{"f"},
						Usage:       "Path to wallet JSON `FILE`.",
						Destination: &file,
						Required:    true,
					},
				},
				Action: func(_ *cli.Context) error {
					return execute(dispatcher.WalletToBase58{File: file})
				},
			},
			{
				Name:  "base58-to-wallet",
				Usage: "Decodes Base58 private key to wallet JSON byte array.",
				Flags: []cli.Flag{
					inputFlag("Base58 private key."),
					&cli.StringFlag{
						Name:        "output",
						Aliases:     []string{"o"},
						Usage:       "Save wallet to `FILE` instead of printing it.",
						Destination: &output,
					},
				},
				Action: func(_ *cli.Context) error {
					return execute(dispatcher.Base58ToWallet{Input: input, Output: output})
				},
			},
		},
	}
}
