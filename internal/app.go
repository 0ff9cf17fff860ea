package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"scoreboard/internal/console"
	"scoreboard/internal/providers"
	"scoreboard/internal/scheduler"
	"scoreboard/internal/structures"
	"syscall"
	"time"
)

const shutdownGrace = 2 * time.Second

type App struct {
	conf      *structures.Config
	logger    providers.Logger
	menu      providers.MenuProviderInterface
	prompt    *console.Prompter
	scheduler scheduler.SchedulerInterface
}

func NewApp(conf *structures.Config, logger providers.Logger, menu providers.MenuProviderInterface, prompt *console.Prompter, sched scheduler.SchedulerInterface) *App {
	return &App{
		conf:      conf,
		logger:    logger,
		menu:      menu,
		prompt:    prompt,
		scheduler: sched,
	}
}

// Start runs the menu until the user exits or input ends. A signal also
// stops it. Metrics are written and the logger closed on the way out.
func (a *App) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	return a.serve(stop)
}

// serve runs the menu until it finishes or stop fires. After a stop the
// running operation gets shutdownGrace to return before Close.
func (a *App) serve(stop <-chan os.Signal) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.logger.Infof(providers.TypeApp, "Starting %s", a.conf.AppName)
	a.scheduler.Init()

	done := make(chan error, 1)
	go func() {
		done <- a.Run(ctx)
	}()

	var err error
	select {
	case <-stop:
		a.logger.Infof(providers.TypeApp, "Shutdown signal received")
		cancel()
		select {
		case err = <-done:
		case <-time.After(shutdownGrace):
			a.logger.Warnf(providers.TypeApp, "Operation still running after %s, closing anyway", shutdownGrace)
		}
	case err = <-done:
	}

	a.Close()
	return err
}

// Run is the menu loop. Operations report their own failures, so the loop
// only ends on exit, end of input or a cancelled context.
func (a *App) Run(ctx context.Context) error {
	items := a.menu.GetItems()
	for {
		if ctx.Err() != nil {
			return nil
		}

		a.prompt.Println("\nWhat would you like to do?")
		for _, item := range items {
			a.prompt.Printf("%s. %s\n", item.Key, item.Label)
		}

		choice, err := a.prompt.Ask(fmt.Sprintf("Enter your choice (1-%d): ", len(items)))
		if errors.Is(err, io.EOF) {
			a.prompt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		item, ok := a.menu.Find(choice)
		if !ok {
			a.prompt.Println("Invalid choice. Please try again.")
			continue
		}
		if item.Exit {
			return nil
		}
		item.Handler(ctx)
	}
}

func (a *App) Close() {
	a.scheduler.Stop()
	_ = a.scheduler.Flush()
	a.logger.Infof(providers.TypeApp, "%s stopped", a.conf.AppName)
	a.logger.Close()
}
