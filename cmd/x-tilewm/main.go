package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/jezek/xgb"
	"github.com/joho/godotenv"
	"github.com/ktsine/x-tilewm/internal/api"
	"github.com/ktsine/x-tilewm/internal/app"
	"github.com/ktsine/x-tilewm/internal/build"
	"github.com/ktsine/x-tilewm/internal/bus"
	"github.com/ktsine/x-tilewm/internal/config"
	"github.com/ktsine/x-tilewm/internal/xwm"
	"github.com/ktsine/x-tilewm/pkg/sutureext"
	"github.com/phsym/console-slog"
)

type Options struct {
	Debug  bool   `doc:"enable debug logging"`
	Host   string `doc:"host for the control api"`
	Port   int    `doc:"port for the control api" default:"8080"`
	Config string `doc:"config file" default:".x-tilewm.yaml"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			configFilePath, err := filepath.Abs(options.Config)
			if err != nil {
				return err
			}

			store, err := config.NewStore(config.NewYAML(configFilePath))
			if err != nil {
				return err
			}

			if err := app.NormalizeConfig(store); err != nil {
				return err
			}

			conn, err := xgb.NewConn()
			if err != nil {
				return err
			}
			defer conn.Close()

			hub := bus.NewHub[bus.LayoutCommand]()
			status := app.NewStatus()

			super := sutureext.New("root")
			super.Add(sutureext.NewServiceFunc("api.http", func(ctx context.Context) error {
				addr := net.JoinHostPort(options.Host, strconv.Itoa(options.Port))
				return api.Serve(ctx, addr, api.Router(hub, status))
			}))
			super.ServeBackground(ctx)

			msgC := make(chan xwm.Msg)
			go xwm.ReceiveEvents(ctx, conn, msgC)
			go forwardCommands(ctx, hub, msgC)

			model := app.Model{
				Store:  store,
				Status: status,
				Debug:  options.Debug,
			}

			return xwm.Run(ctx, conn, model, msgC)
		})
	})

	cli.Root().Version = build.Current.Version

	cli.Run()
}

// forwardCommands feeds control commands from the API into the event loop's
// message channel.
func forwardCommands(ctx context.Context, hub *bus.Hub[bus.LayoutCommand], msgC chan<- xwm.Msg) {
	commands, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case command := <-commands:
			select {
			case <-ctx.Done():
				return
			case msgC <- command:
			}
		}
	}
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}
