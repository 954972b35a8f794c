package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
	"pfeifer.dev/controlsd/cereal"
	"pfeifer.dev/controlsd/cereal/custom"
	"pfeifer.dev/controlsd/cli"
	"pfeifer.dev/controlsd/params"
	ms "pfeifer.dev/controlsd/settings"
	"pfeifer.dev/controlsd/utils"
)

func main() {
	cli.Handle()

	slog.SetDefault(slog.Default().With("session", xid.New().String()))
	params.EnsureParamDirectories()
	ms.Settings.LoadWithRetries(ms.SETTINGS_LOAD_TRIES)

	// car states are not conflated so no button event is lost
	carSub := cereal.NewSubscriber("carState", cereal.CarStateReader, false)
	planSub := cereal.NewSubscriber("lateralPlan", cereal.LateralPlanReader, true)
	inSub := cereal.NewSubscriber("controlsdIn", cereal.ControlsdInReader, false)
	pub := cereal.NewPublisher("controlsdOut", cereal.ControlsdOutCreator)

	d := newDaemon()
	atexit.Register(func() {
		d.closeTrace()
		carSub.Close()
		planSub.Close()
		inSub.Close()
		pub.Close()
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	ticker := time.NewTicker(ms.LOOP_DELAY)
	defer ticker.Stop()

	slog.Info("controlsd started", "loop_delay", ms.LOOP_DELAY)
	for {
		select {
		case sig := <-signals:
			slog.Info("shutting down", "signal", sig.String())
			atexit.Exit(0)
		case <-ticker.C:
		}

		inSub.Drain(d.handleInput)

		plan, success := planSub.Read()
		if success {
			d.updatePlan(plan)
		}

		carSub.Drain(func(carData custom.ControlsdCarState) {
			utils.Logwe(d.car.Update(carData), "could not read car state")
		})

		out, ran := d.step(time.Now())
		if !ran {
			continue
		}

		msg, controlsdOut := pub.NewMessage(true)
		fillOutput(out, controlsdOut)
		logOutput(controlsdOut)
		utils.Loge(pub.Send(msg), "could not send controlsdOut")
	}
}
