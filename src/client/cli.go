package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/apimgr/weather-chart/src/config"
	"github.com/apimgr/weather-chart/src/models"
	"github.com/apimgr/weather-chart/src/service"
	"github.com/apimgr/weather-chart/src/utils"
)

// Streams are the standard streams a run reads from and writes to
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Execute is the main entry point for the CLI
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	return Run(ctx, os.Args[1:], Streams{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	})
}

// Run parses args, fetches the forecast and shows it
func Run(ctx context.Context, args []string, streams Streams) error {
	cfg := config.Load()

	flagSet := flag.NewFlagSet(projectName, flag.ContinueOnError)
	flagSet.SetOutput(streams.Err)
	flagSet.Usage = func() {
		printUsage(streams.Err)
	}

	unitsFlag := flagSet.String("units", cfg.Units, "Temperature units: celsius, fahrenheit")
	daysFlag := flagSet.Int("days", cfg.Days, "Forecast days (1-16)")
	outputFlag := flagSet.String("output", cfg.Output, "Output format: tui, plain, json, yaml")
	pngFlag := flagSet.String("png", "", "Write a PNG chart to this file instead of starting the UI")
	timeoutFlag := flagSet.Int("timeout", cfg.Timeout, "Request timeout in seconds")
	logFlag := flagSet.String("log", cfg.LogFile, "Log file path")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored output")
	versionFlag := flagSet.Bool("version", false, "Show version information")
	helpFlag := flagSet.Bool("help", false, "Show help")

	flagArgs, positional := splitArgs(flagSet, args)
	if err := flagSet.Parse(flagArgs); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return NewUsageError(err.Error())
	}
	positional = append(positional, flagSet.Args()...)

	if *versionFlag {
		printVersion(streams.Out)
		return nil
	}
	if *helpFlag {
		printUsage(streams.Out)
		return nil
	}

	// Override config with flags
	cfg.Units = strings.ToLower(*unitsFlag)
	cfg.Days = *daysFlag
	cfg.Output = strings.ToLower(*outputFlag)
	cfg.PNGPath = *pngFlag
	cfg.LogFile = *logFlag
	cfg.Timeout = *timeoutFlag
	if *noColorFlag {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return NewUsageError(err.Error())
	}

	logger, err := utils.NewLogger(cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintf(streams.Err, "Warning: logging disabled: %v\n", err)
		logger = utils.NewNopLogger()
	}
	defer logger.Close()

	coords, used := ResolveCoordinates(positional)
	if !used && len(positional) > 0 {
		logger.Warn("ignoring arguments %q: expected <latitude> <longitude>, using %s", positional, coords)
	}
	logger.Info("fetching %d-day forecast for %s in %s", cfg.Days, coords, cfg.Units)

	svc := service.NewForecastService(
		service.WithBaseURL(cfg.APIURL),
		service.WithTimeout(time.Duration(cfg.Timeout)*time.Second),
		service.WithUserAgent(UserAgent()),
	)
	logger.Debug("request url %s", svc.ForecastURL(coords, service.ForecastOptions{Days: cfg.Days, Units: cfg.Units}))

	forecast, err := svc.GetForecast(ctx, coords, service.ForecastOptions{
		Days:  cfg.Days,
		Units: cfg.Units,
	})
	if err != nil {
		logger.Error("%v", err)
		return fetchError(err)
	}
	logger.Info("received %d days for %s", forecast.Len(), forecast.Location)

	return show(ctx, forecast, cfg, streams, logger)
}

// show writes the forecast in the configured form
func show(ctx context.Context, forecast *models.Forecast, cfg *config.Config, streams Streams, logger *utils.Logger) error {
	if cfg.PNGPath != "" {
		if err := ExportPNG(forecast, cfg.PNGPath); err != nil {
			logger.Error("png export failed: %v", err)
			return NewExitError(err.Error(), ExitGeneralError)
		}
		logger.Info("wrote chart to %s", cfg.PNGPath)
		return nil
	}

	outFile, _ := streams.Out.(*os.File)
	output := cfg.Output
	if output == config.OutputTUI && !utils.IsTerminal(outFile) {
		logger.Info("stdout is not a terminal, printing plain output")
		output = config.OutputPlain
	}
	noColor := !utils.ColorEnabled(cfg.NoColor, outFile)

	if output != config.OutputTUI {
		text, err := NewFormatter(output, noColor).FormatForecast(forecast)
		if err != nil {
			return NewExitError(err.Error(), ExitGeneralError)
		}
		fmt.Fprintln(streams.Out, text)
		return nil
	}

	width, height := utils.TerminalSize(outFile)
	logger.Info("starting chart UI (%dx%d)", width, height)
	opts := TUIOptions{
		Width:   width,
		Height:  height,
		NoColor: noColor,
	}
	// bubbletea opens the process terminal itself; only pass replacements
	if streams.In != io.Reader(os.Stdin) {
		opts.Input = streams.In
	}
	if streams.Out != io.Writer(os.Stdout) {
		opts.Output = streams.Out
	}
	err := RunTUI(ctx, forecast, opts)
	if err != nil {
		logger.Error("%v", err)
		return NewExitError(err.Error(), ExitGeneralError)
	}
	logger.Info("quit")
	return nil
}

// splitArgs separates flags from positional values so that negative
// coordinates such as -33.86 are not taken for flags, and flags may follow them.
func splitArgs(flagSet *flag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if _, err := strconv.ParseFloat(arg, 64); err == nil || !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}

		flagArgs = append(flagArgs, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := flagSet.Lookup(name); f != nil && !isBoolFlag(f) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}
	return flagArgs, positional
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

// printUsage prints the usage information
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Weather Chart - daily maximum temperatures in your terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  weather-chart [flags] [latitude longitude]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without coordinates, New York City is used.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  --units <units>    celsius or fahrenheit (default: fahrenheit)")
	fmt.Fprintln(w, "  --days <n>         Forecast days, 1-16 (default: 7)")
	fmt.Fprintln(w, "  --output <format>  tui, plain, json, yaml (default: tui)")
	fmt.Fprintln(w, "  --png <file>       Write a PNG chart instead of starting the UI")
	fmt.Fprintln(w, "  --timeout <secs>   Request timeout (default: 30)")
	fmt.Fprintln(w, "  --log <file>       Log file (default: weather-chart.log)")
	fmt.Fprintln(w, "  --no-color         Disable colored output")
	fmt.Fprintln(w, "  --version          Show version information")
	fmt.Fprintln(w, "  --help             Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys:")
	fmt.Fprintln(w, "  q                  Quit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  weather-chart")
	fmt.Fprintln(w, "  weather-chart 51.5074 -0.1278")
	fmt.Fprintln(w, "  weather-chart --units celsius -33.8688 151.2093")
	fmt.Fprintln(w, "  weather-chart --output json 48.8566 2.3522")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  WEATHER_CHART_API_URL, WEATHER_CHART_LOG, WEATHER_CHART_UNITS, WEATHER_CHART_TIMEOUT, NO_COLOR, DEBUG")
}

// printVersion prints version information
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "weather-chart version %s\n", Version)
	fmt.Fprintf(w, "Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
}
