package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/suparena/tablestore"
	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/datastore/azt"
	"github.com/suparena/tablestore/processor"
	"github.com/suparena/tablestore/storagemodels"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	accountFlag  = flag.String("account", "", "Storage account name")
	keyFlag      = flag.String("key", "", "Storage account key")
	connFlag     = flag.String("conn", "", "Storage connection string")
	endpointFlag = flag.String("endpoint", "", "Table service endpoint override")
	configFlag   = flag.String("config", "", "Path to a YAML config file")
	verboseFlag  = flag.Bool("verbose", false, "Log every service call")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: tablectl [flags] <command> [args]\n\n")
	fmt.Fprintf(out, "Commands:\n")
	fmt.Fprintf(out, "  tables                 List tables\n")
	fmt.Fprintf(out, "  create <table>         Create a table\n")
	fmt.Fprintf(out, "  drop <table>           Delete a table\n")
	fmt.Fprintf(out, "  query <table> [flags]  Query entities, one JSON object per line\n")
	fmt.Fprintf(out, "  apply <manifest>       Apply a YAML seeding manifest\n\n")
	fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := tablestore.GetVersionInfo()
		fmt.Printf("tablestore tablectl version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := resolveConfig(*configFlag, *accountFlag, *keyFlag, *connFlag, *endpointFlag)
	if err != nil {
		fatal(err)
	}

	client, err := connect(cfg, *verboseFlag)
	if err != nil {
		fatal(err)
	}
	defer client.Close()

	ctx := context.Background()
	switch args[0] {
	case "tables":
		err = runTables(ctx, client)
	case "create":
		err = runCreate(ctx, client, args[1:])
	case "drop":
		err = runDrop(ctx, client, args[1:])
	case "query":
		err = runQuery(ctx, client, args[1:])
	case "apply":
		err = runApply(ctx, client, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "tablectl: unknown command %q\n\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fatal(err)
	}
}

func connect(cfg Config, verbose bool) (*azt.Client, error) {
	opts := []azt.Option{}
	if cfg.Endpoint != "" {
		opts = append(opts, azt.WithEndpoint(cfg.Endpoint))
	}
	if verbose {
		opts = append(opts, azt.WithLogger(datastore.NewVerboseLogger()))
	}

	var (
		client *azt.Client
		err    error
	)
	if cfg.ConnectionString != "" {
		client, err = azt.NewFromConnectionString(cfg.ConnectionString, opts...)
	} else {
		client, err = azt.New(cfg.Account, cfg.Key, opts...)
	}
	if err != nil {
		return nil, err
	}
	if err := client.Connect(); err != nil {
		return nil, err
	}
	return client, nil
}

func runTables(ctx context.Context, client *azt.Client) error {
	names, err := client.ListTables(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runCreate(ctx context.Context, client *azt.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tablectl create <table>")
	}
	if err := client.CreateTable(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Created table %s\n", args[0])
	return nil
}

func runDrop(ctx context.Context, client *azt.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tablectl drop <table>")
	}
	if err := client.DeleteTable(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted table %s\n", args[0])
	return nil
}

func runQuery(ctx context.Context, client *azt.Client, args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	filterFlag := fs.String("filter", "", "Filter expression, may contain @name parameters")
	topFlag := fs.Int("top", 0, "Maximum entities per page")
	selectFlag := fs.String("select", "", "Comma-separated list of properties to return")
	params := paramFlags{}
	fs.Var(params, "param", "Bind name=value to an @name parameter (repeatable; numbers and booleans are detected)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tablectl query <table> -filter <expr> [-top n] [-select cols] [-param name=value]")
	}

	opts := []storagemodels.QueryOption{}
	if len(params) > 0 {
		opts = append(opts, storagemodels.WithParameters(params))
	}
	if *selectFlag != "" {
		opts = append(opts, storagemodels.WithSelect(strings.Split(*selectFlag, ",")...))
	}
	if *topFlag > 0 {
		opts = append(opts, storagemodels.WithResultsPerPage(int32(*topFlag)))
	}

	res, err := client.SelectEntities(ctx, fs.Arg(0), *filterFlag, opts...)
	if err != nil {
		return err
	}
	for res.More() {
		page, err := res.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, e := range page.Entities {
			row := make(map[string]any, len(e.Properties)+2)
			for k, v := range e.Properties {
				row[k] = v
			}
			row["PartitionKey"] = e.PartitionKey
			row["RowKey"] = e.RowKey
			data, err := json.Marshal(row)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		}
	}
	return nil
}

func runApply(ctx context.Context, client *azt.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tablectl apply <manifest>")
	}
	m, err := processor.Load(args[0])
	if err != nil {
		return err
	}
	res, err := m.Apply(ctx, client)
	if err != nil {
		return err
	}
	fmt.Printf("Applied %s: %d tables, %d entities\n", args[0], res.Tables, res.Entities)
	return nil
}

// paramFlags collects repeated -param name=value flags. Values that parse
// as integers, floats or booleans bind typed so numeric comparisons render
// unquoted.
type paramFlags map[string]any

func (p paramFlags) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ",")
}

func (p paramFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	p[name] = coerceParam(value)
	return nil
}

func coerceParam(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "tablectl: %v\n", err)
	os.Exit(1)
}
