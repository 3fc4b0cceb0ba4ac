package d2conf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/d2conf/config"
	filefetcher "github.com/0xalexb/d2conf/config/fetcher/file"
	"github.com/0xalexb/d2conf/d2"
	"github.com/0xalexb/d2conf/logging"

	"go.uber.org/dig"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for tools consuming the d2 configuration through Fx.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
// When a config file is set, d2.Config is available for injection.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	output := options.LogOutput
	if output == nil {
		output = os.Stderr
	}

	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := createLogger(loggerConfig, output)
	slog.SetDefault(logger)

	fxOptions := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
	}

	if options.ConfigFile != "" {
		fxOptions = append(fxOptions, configModule(options.ConfigFile, options.Section, options.Format))
	}

	fxOptions = append(fxOptions, fx.Options(options.Modules...))

	return fx.New(fxOptions...)
}

func createLogger(config logging.LoggerConfig, w io.Writer) *slog.Logger {
	return logging.NewLogger(config, w)
}

// configModule provides config.Parser, config.DataFetcher and the accepted d2.Config.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func configModule(path, section, format string) fx.Option {
	return fx.Module("config",
		fx.Provide(func() (config.Parser, error) {
			return NewParser(format, path)
		}),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(path),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(config.Provider(d2.Acceptor(), section)),
	)
}

// Start starts the Fx application.
// Construction failures, including configuration errors, are reported here.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", dig.RootCause(err))
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// LoadConfig builds an App around opts, starts it, and returns the injected d2.Config.
// WithConfigFile is required.
func LoadConfig(opts ...Option) (d2.Config, error) {
	var cfg d2.Config

	capture := WithModules(fx.Invoke(func(accepted d2.Config) {
		cfg = accepted
	}))

	app := NewApp(append(opts[:len(opts):len(opts)], capture)...)

	err := app.Start()
	if err != nil {
		return d2.Config{}, err
	}

	err = app.Stop()
	if err != nil {
		return d2.Config{}, err
	}

	return cfg, nil
}
