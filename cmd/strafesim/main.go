package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/strafesim/strafesim/config"
	"github.com/strafesim/strafesim/record"
	"github.com/strafesim/strafesim/sim"
	"github.com/strafesim/strafesim/world"
)

var CLI struct {
	Config string `help:"Path to the tuning file." default:"strafesim.toml"`
	Debug  bool   `help:"Enable debug logging."`

	Demo struct {
		Ticks int `help:"How many ticks to simulate." default:"2560"`
	} `cmd:"" help:"Run a scripted demonstration through the reference arena."`

	Best struct {
		Map string `arg:"" optional:"" help:"Map name to look up." default:"reference-arena"`
	} `cmd:"" help:"Print the stored best run for a map."`
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})

	ctx := kong.Parse(&CLI,
		kong.Name("strafesim"),
		kong.Description("a fixed-tick movement and combat simulation core"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))
		mgr := statsview.New()
		go mgr.Start()
	}

	var err error
	switch ctx.Command() {
	case "demo":
		err = demoCommand(log, CLI.Demo.Ticks)
	case "best", "best <map>":
		err = bestCommand(log, CLI.Best.Map)
	}
	if err != nil {
		log.Fatal(err)
	}
}

const demoMapName = "reference-arena"

// demoCommand drives a scripted input stream through the reference arena at
// the fixed tick rate and stores the result if the run finishes.
func demoCommand(log *logrus.Logger, ticks int) error {
	conf, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}

	arena := buildArena()
	s := sim.New(sim.Options{
		Conf:     conf,
		World:    arena.world,
		Log:      log,
		Effects:  sim.AsyncSink{Sink: logSink{log: log}},
		SpawnPos: arena.spawn,
		SpawnYaw: 0,
		Debugf: func(format string, args ...any) {
			log.Debugf(format, args...)
		},
	})
	for _, anchor := range arena.anchors {
		s.RegisterGrappleAnchor(anchor)
	}

	log.Infof("simulating %d ticks (%.1fs of game time)", ticks, float64(ticks)/sim.TicksPerSecond)

	input := &sim.InputSnapshot{}
	for i := 0; i < ticks; i++ {
		scriptInput(input, i)
		arena.pushZones(s)
		res := s.Tick(input)
		if res.HUDUpdated && log.IsLevelEnabled(logrus.DebugLevel) {
			hud := s.HUD()
			log.Debugf("tick=%d speed=%.2f pos=%v phase=%s", hud.Tick, hud.Speed, hud.Position, hud.Phase)
		}
		if s.Run.Phase == sim.RunFinished {
			break
		}
	}

	log.Infof("done: phase=%s elapsed=%dms maxspeed=%.2f distance=%.1f jumps=%d",
		s.Run.Phase, s.ElapsedMs(), s.Run.Stats.MaxSpeed, s.Run.Stats.Distance, s.Run.Stats.Jumps)

	if s.Run.Phase != sim.RunFinished {
		return nil
	}

	rec, err := record.FromRun(s, demoMapName, time.Now().UnixMilli())
	if err != nil {
		return err
	}
	store, err := record.OpenStore("strafesim")
	if err != nil {
		return err
	}
	improved, err := store.SaveBest(rec)
	if err != nil {
		return err
	}
	if improved {
		log.Infof("new best for %s: %dms", rec.MapName, rec.ElapsedMs)
	} else {
		log.Infof("run of %dms did not beat the stored best", rec.ElapsedMs)
	}
	return nil
}

func bestCommand(log *logrus.Logger, mapName string) error {
	store, err := record.OpenStore("strafesim")
	if err != nil {
		return err
	}
	best, ok := store.LoadBest(mapName)
	if !ok {
		log.Infof("no stored run for %s", mapName)
		return nil
	}
	log.Infof("%s: %dms over %.1f units (max %.2f u/s, %d jumps, set %s)",
		best.MapName, best.ElapsedMs, best.Distance, best.MaxSpeed, best.Jumps,
		time.UnixMilli(best.UnixMs).Format(time.RFC3339))
	for _, split := range best.Splits {
		log.Infof("  checkpoint %d: %dms", split.Index, split.ElapsedMs)
	}
	return nil
}

// logSink traces effect requests at debug level. It is delivered through
// sim.AsyncSink, so a slow terminal never stalls the tick loop.
type logSink struct {
	log *logrus.Logger
}

func (l logSink) PlaySound(id sim.SoundID, gain float32) {
	l.log.Debugf("effect: sound %d gain %.2f", id, gain)
}

func (l logSink) SpawnExplosion(pos mgl32.Vec3, _ mgl32.Vec3, scale float32) {
	l.log.Debugf("effect: explosion at %v scale %.2f", pos, scale)
}

func (l logSink) CameraShake(intensity float32) {
	l.log.Debugf("effect: camera shake %.2f", intensity)
}

// scriptInput produces a fixed input sequence: run forward, bunny-hop, and
// strafe side to side for air acceleration.
func scriptInput(in *sim.InputSnapshot, tick int) {
	in.Forward = true
	in.Jump = tick > 64 && (tick/8)%2 == 0
	in.Left = (tick/96)%2 == 0
	in.Right = !in.Left
}

// arena is a small hand-built course: a long floor, a side wall, and start,
// checkpoint and finish planes the driver turns into zone events.
type arena struct {
	world   *world.World
	spawn   mgl32.Vec3
	anchors []mgl32.Vec3

	startZ      float32
	checkpointZ float32
	finishZ     float32
	sentStart   bool
	sentCP      bool
	sentFinish  bool
}

func buildArena() *arena {
	w := world.New()
	// Floor strip along +Z.
	w.AddBox(-8, -1, -8, 8, 0, 260)
	// Left wall for wall-running.
	w.AddBox(-9, 0, 40, -8, 12, 120)

	return &arena{
		world:       w,
		spawn:       mgl32.Vec3{0, 0, 0},
		anchors:     []mgl32.Vec3{{0, 18, 150}},
		startZ:      4,
		checkpointZ: 128,
		finishZ:     250,
	}
}

// pushZones stands in for the host's collision sensors: it pushes the zone
// event when the player first moves past each plane.
func (a *arena) pushZones(s *sim.Simulation) {
	z := s.Player.Pos.Z()
	if !a.sentStart && z > a.startZ {
		a.sentStart = true
		_ = s.PushZoneEvent(sim.StartZone{})
	}
	if !a.sentCP && z > a.checkpointZ {
		a.sentCP = true
		_ = s.PushZoneEvent(sim.CheckpointZone{Index: 0, Pos: mgl32.Vec3{0, 0, a.checkpointZ}, Yaw: 0})
	}
	if !a.sentFinish && z > a.finishZ {
		a.sentFinish = true
		_ = s.PushZoneEvent(sim.FinishZone{})
	}
}
