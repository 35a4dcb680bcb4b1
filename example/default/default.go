package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/chewxy/math32"
	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/EiraChris/Mirror/entity"
	"github.com/EiraChris/Mirror/netsync"
	"github.com/EiraChris/Mirror/record"
	"github.com/EiraChris/Mirror/settings"
	"github.com/EiraChris/Mirror/snapshot"
)

// The following program drives a sync manager against a locally simulated
// jittery sender: an entity orbits the origin on the "remote" side, its
// snapshots are delivered late, reordered and occasionally dropped, and the
// manager replays them as smooth motion.
func main() {
	conf, err := settings.Load("settings.toml")
	if err != nil {
		panic(err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if lvl, err := logrus.ParseLevel(conf.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			logger.Errorf("sentry init failed: %v", err)
		}
	}

	if conf.Stats.Enabled {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(conf.Stats.Address))

		mgr := statsview.New()
		go mgr.Start()
	}

	manager := netsync.NewManager(logger, netsync.Config{
		BufferTime:   conf.BufferTime(),
		HistorySize:  conf.Sync.HistorySize,
		JitterWindow: conf.Sync.JitterWindow,
	})
	recorder := record.NewRecorder()
	manager.SetRecorder(recorder)

	rid, se := manager.Register("example:orbiter", entity.IdentityTransform())

	// Delayed delivery queue standing in for the network link.
	type delivery struct {
		at   time.Time
		snap snapshot.Snapshot
	}
	var inFlight []delivery

	const tickRate = time.Second / 60
	sendInterval := time.Duration(conf.Sync.SendInterval * float64(time.Second))

	start := time.Now()
	lastSend := start
	lastTick := start

	for range time.Tick(tickRate) {
		now := time.Now()

		// The simulated sender captures a snapshot every send interval and
		// puts it on the link with 40-80ms of latency jitter and 5% loss.
		if now.Sub(lastSend) >= sendInterval {
			lastSend = now
			remoteNow := now.Sub(start).Seconds()
			angle := float32(remoteNow)
			if rand.Float64() >= 0.05 {
				inFlight = append(inFlight, delivery{
					at: now.Add(40*time.Millisecond + time.Duration(rand.Int63n(int64(40*time.Millisecond)))),
					snap: snapshot.New(
						remoteNow,
						mgl32.Vec3{3 * math32.Cos(angle), 0, 3 * math32.Sin(angle)},
						mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0}),
						mgl32.Vec3{1, 1, 1},
					),
				})
			}
		}

		// Deliver whatever has "arrived".
		remaining := inFlight[:0]
		for _, d := range inFlight {
			if now.After(d.at) {
				manager.Feed(rid, netsync.FromServer, d.snap)
			} else {
				remaining = append(remaining, d)
			}
		}
		inFlight = remaining

		manager.TickAll(now.Sub(lastTick).Seconds())
		lastTick = now

		if manager.Tick()%60 == 0 {
			t := se.Entity().Transform()
			logger.Infof("tick=%d pos=%v buffered=%d suggested=%.0fms",
				manager.Tick(), t.Position, se.BufferLen(netsync.FromServer),
				se.Jitter().SuggestedBufferTime(conf.Sync.BufferMultiplier)*1000)
		}

		if now.Sub(start) > 30*time.Second {
			break
		}
	}

	blob := recorder.Drain()
	if err := os.WriteFile("session.mrec", blob, 0644); err != nil {
		panic(err)
	}
	fmt.Printf("wrote %d bytes of recorded snapshots to session.mrec\n", len(blob))
}
