// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/petal-labs/visionary/cli/config"
	"github.com/petal-labs/visionary/cli/keystore"
	"github.com/petal-labs/visionary/cli/logging"
	"github.com/petal-labs/visionary/core"
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// GeneratorFactory creates the generation client.
type GeneratorFactory func(creds core.CredentialSource, cfg *config.Config, hook core.TelemetryHook) (core.Generator, error)

// KeystoreFactory creates a keystore instance.
type KeystoreFactory func() (keystore.Keystore, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig      ConfigLoader
	createGenerator GeneratorFactory
	newKeystore     KeystoreFactory
	stdin           io.Reader
	stdout          io.Writer
	stderr          io.Writer
	cfgFile         string
	jsonOutput      bool
	verbose         bool
	cfg             *config.Config
	logger          *slog.Logger

	prompt       string
	aspectRatio  string
	highQuality  bool
	enhanceFirst bool
	outPath      string
	serveAddr    string

	// listening is called with the bound address once serve is accepting.
	listening func(net.Addr)
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithGeneratorFactory injects a generator factory dependency.
func WithGeneratorFactory(factory GeneratorFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.createGenerator = factory
		}
	}
}

// WithKeystoreFactory injects a keystore factory dependency.
func WithKeystoreFactory(factory KeystoreFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newKeystore = factory
		}
	}
}

// WithIO injects process I/O streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdin != nil {
			a.stdin = stdin
		}
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig:      config.LoadConfig,
		createGenerator: defaultGeneratorFactory,
		newKeystore:     keystore.NewKeystore,
		stdin:           os.Stdin,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "visionary",
		Short: "Visionary - prompt-to-image studio for Gemini",
		Long: `Visionary turns short text prompts into images with the Gemini image models.

Use Visionary to enhance prompts, generate images from the command line,
serve the browser studio, and manage API keys.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return a.fail(ExitValidation, err)
			}
			cmd.SetContext(logging.NewContext(cmd.Context(), a.logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	// Global flags available to all commands.
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.visionary/config.yaml)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "emit JSON output")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(a.newEnhanceCommand())
	root.AddCommand(a.newGenerateCommand())
	root.AddCommand(a.newServeCommand())
	root.AddCommand(a.newKeysCommand())
	root.AddCommand(a.newModelsCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// SetArgs overrides the command-line arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

func (a *App) initConfig() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := config.LoadEnvFile(cfg.EnvFile); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return err
	}
	a.logger = logging.New(a.stderr, level, format)

	return nil
}

// credentials reads the environment first, then the keystore entry named
// by api_key_ref. Both are consulted on every call.
func (a *App) credentials() core.CredentialSource {
	fromKeystore := core.CredentialFunc(func(ctx context.Context) (core.Secret, error) {
		if a.cfg.APIKeyRef == "" {
			return core.Secret{}, nil
		}
		ks, err := a.newKeystore()
		if err != nil {
			return core.Secret{}, err
		}
		return keystore.Credential(ks, a.cfg.APIKeyRef).Credential(ctx)
	})
	return core.CredentialChain(core.EnvCredential(a.cfg.APIKeyEnv...), fromKeystore)
}

func (a *App) generator() (core.Generator, error) {
	return a.createGenerator(a.credentials(), a.cfg, logging.TelemetryHook{Logger: a.logger})
}

var defaultApp = NewApp()

// Execute runs the default app root command.
func Execute() error {
	return defaultApp.Execute()
}
