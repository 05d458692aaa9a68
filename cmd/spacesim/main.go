package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	kitlog "github.com/go-kit/kit/log"
	sim "github.com/tmasha/space-simulation"
)

func main() {
	export := flag.Bool("export", true, "write the orbit path files and catalog at startup")
	flag.Parse()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "cmd", "spacesim")

	system, err := sim.NewSolarSystem()
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	if *export {
		if err := sim.ExportPaths(system, sim.ExportConfig{Filename: "sol"}); err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		logger.Log("exported", system.Len(), "dir", ".")
	}

	stream := sim.NewStreamServer(system)
	go func() {
		logger.Log("listen", sim.ListenAddr())
		if err := http.ListenAndServe(sim.ListenAddr(), stream.Handler()); err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
	}()

	// The frame loop: one tick is one frame. Sampling happens here, rendering
	// happens wherever the stream clients are.
	clock := sim.NewClock()
	ticker := time.NewTicker(time.Second / time.Duration(sim.FrameRate()))
	defer ticker.Stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	logger.Log("bodies", system.Len(), "fps", sim.FrameRate(), "timeScale", sim.TimeScale(), "status", "running")
	for {
		select {
		case <-ticker.C:
			t := clock.NowMs()
			stream.Broadcast(t, system.Update(t))
		case s := <-sig:
			logger.Log("signal", s.String(), "status", "stopping")
			return
		}
	}
}
