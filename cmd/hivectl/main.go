package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"hive/internal/errors"
)

// Supported subcommands:
// - migrate: Create the identity and kv_entries tables
// - seed:    Write the default collections to the configured store
// - dump:    Print one stored document

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	dumpCmd := flag.NewFlagSet("dump", flag.ExitOnError)

	seedForce := seedCmd.Bool("force", false, "Overwrite collections that already hold data")
	dumpRaw := dumpCmd.Bool("raw", false, "Print the stored bytes without indentation")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := ctlFlags{
		Migrate: migrateCmd,
		Seed:    seedFlags{cmd: seedCmd, force: seedForce},
		Dump:    dumpFlags{cmd: dumpCmd, raw: dumpRaw},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Migrate *flag.FlagSet
	Seed    seedFlags
	Dump    dumpFlags
}

type seedFlags struct {
	cmd   *flag.FlagSet
	force *bool
}

type dumpFlags struct {
	cmd *flag.FlagSet
	raw *bool
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		if err := flags.Migrate.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return withInfra(ctx, true, func(in infra) error {
			return migrate(in.db, in.logger)
		})
	case "seed":
		if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return withInfra(ctx, false, func(in infra) error {
			return seedStore(ctx, in.kv, *flags.Seed.force, os.Stdout)
		})
	case "dump":
		if err := flags.Dump.cmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}
		if flags.Dump.cmd.NArg() != 1 {
			return errors.New("dump requires exactly one key")
		}

		return withInfra(ctx, false, func(in infra) error {
			return dump(ctx, in.kv, flags.Dump.cmd.Arg(0), *flags.Dump.raw, os.Stdout)
		})
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

func printUsage() {
	fmt.Println(`hivectl - maintenance tool for the community hub

Usage:
  hivectl <command> [options]

Commands:
  migrate          Create the identity and kv_entries tables
  seed [-force]    Write the default collections to the configured store
  dump [-raw] KEY  Print the document stored under KEY (e.g. hive_cart_items)

The store backend and database are read from the same config as the API.`)
}
