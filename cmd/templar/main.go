// Package main provides the Templar CLI entry point.
// Templar reconciles a declarative template's parameter declarations against
// its compiled defaults and an optional parameter-values file, producing the
// list of parameters a user may edit before deployment.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"templar/internal/config"
	"templar/internal/handler"
	"templar/internal/logger"
	"templar/internal/output"
	"templar/internal/services"
	"templar/internal/version"
	"templar/pkg/templartypes"
)

// hostLineLimit bounds one host-protocol request line; compiled templates
// travel inline in templateText.
const hostLineLimit = 16 * 1024 * 1024

var (
	logLevel     string
	logFile      string
	testMode     bool
	valuesFile   string
	compiledFile string
	jsonOut      bool
	detailed     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "templar",
	Short: "Templar - deployment parameter tooling for declarative templates",
	Long: `Templar inspects a declarative template and reports which deployment
parameters are editable, which are missing, and which are pinned by a
parameter-values file.`,
}

// paramsCmd performs a one-shot reconciliation for a template document.
var paramsCmd = &cobra.Command{
	Use:   "params <template>",
	Short: "List the editable deployment parameters of a template",
	Long: `Reconcile the template's parameter declarations against its compiled
default values and an optional parameter-values file. The result lists every
parameter a user may edit before deployment, in declaration order.`,
	Args: cobra.ExactArgs(1),
	Run:  runParams,
}

// hostCmd serves the request/response protocol for editor hosts.
var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Serve deployment parameter requests over stdin/stdout",
	Long: `Read line-delimited JSON requests from stdin and write one JSON response
per line to stdout. Each request carries documentPath, valuesFilePath, and
templateText fields; a failed request yields {"error": "..."} and the loop
continues.`,
	Run: runHost,
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		if detailed {
			fmt.Println(version.GetDetailedVersion())
			return
		}
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")

	paramsCmd.Flags().StringVar(&valuesFile, "values", "", "Path to the parameter-values file")
	paramsCmd.Flags().StringVar(&compiledFile, "compiled", "", "Path to the compiled template (defaults compiled from source when omitted)")
	paramsCmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the raw response JSON instead of styled output")
	paramsCmd.Flags().Bool("strict", false, "Fail when the compiled template lacks a default for an optional parameter")

	versionCmd.Flags().BoolVar(&detailed, "detailed", false, "Show detailed version information")

	if err := viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag(config.KeyStrict, paramsCmd.Flags().Lookup("strict")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding strict flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	level := logLevel
	if level == "" {
		level = config.LogLevel()
	}
	if err := logger.Configure(level, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// initServices registers and initializes the collaborator services.
func initServices() error {
	registry := services.NewRegistry()
	for _, service := range []templartypes.Service{
		services.NewFilesystemService(),
		services.NewAnalysisService(),
		services.NewCodecService(),
	} {
		if err := registry.RegisterService(service); err != nil {
			return err
		}
	}
	if err := registry.InitializeAll(); err != nil {
		return err
	}
	services.SetGlobalRegistry(registry)
	return nil
}

func newHandler() *handler.DeploymentParametersHandler {
	return handler.NewDeploymentParametersHandler(services.GetGlobalRegistry(), handler.Options{
		Strict:   config.Strict(),
		TestMode: testMode,
	})
}

func runParams(_ *cobra.Command, args []string) {
	if err := initServices(); err != nil {
		logger.Fatal("Failed to initialize services", "error", err)
	}

	req := templartypes.DeploymentParametersRequest{
		DocumentPath:   args[0],
		ValuesFilePath: valuesFile,
	}
	if compiledFile != "" {
		data, err := os.ReadFile(compiledFile)
		if err != nil {
			logger.Fatal("Failed to read compiled template", "error", err)
		}
		req.TemplateText = string(data)
	}

	resp, err := newHandler().Handle(req)
	if err != nil {
		logger.Fatal("Reconciliation failed", "error", err)
	}

	if jsonOut {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(resp); err != nil {
			logger.Fatal("Failed to encode response", "error", err)
		}
		return
	}

	output.NewPrinter(printerOptions()...).RenderResponse(resp)
}

func runHost(_ *cobra.Command, _ []string) {
	if err := initServices(); err != nil {
		logger.Fatal("Failed to initialize services", "error", err)
	}

	logger.Info("Templar host started", "version", version.GetVersion())

	h := newHandler()
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), hostLineLimit)
	writer := bufio.NewWriter(os.Stdout)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req templartypes.DeploymentParametersRequest
		if err := json.Unmarshal(line, &req); err != nil {
			writeHostError(writer, fmt.Errorf("malformed request: %w", err))
			continue
		}

		resp, err := h.Handle(req)
		if err != nil {
			writeHostError(writer, err)
			continue
		}
		writeHostLine(writer, resp)
	}

	if err := scanner.Err(); err != nil {
		logger.Fatal("Host input failed", "error", err)
	}
}

func writeHostError(writer *bufio.Writer, err error) {
	writeHostLine(writer, map[string]string{"error": err.Error()})
}

func writeHostLine(writer *bufio.Writer, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode host response", "error", err)
		return
	}
	_, _ = writer.Write(data)
	_ = writer.WriteByte('\n')
	_ = writer.Flush()
}

func printerOptions() []output.Option {
	if testMode {
		return []output.Option{output.TestMode()}
	}
	switch config.Color() {
	case "never":
		return []output.Option{output.PlainText()}
	case "always":
		return []output.Option{output.WithMode(output.ModeStyled)}
	default:
		return nil
	}
}
