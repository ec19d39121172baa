// Package controlpanel exposes the runtime controls (simulation speed, blob merge factor,
// shading toggles, pause/resume, add blob) as console commands.
package controlpanel

import (
	"fmt"
	"strconv"
	"strings"

	"metaballs/internal/commands"
	"metaballs/internal/logger"
	"metaballs/internal/scene"
	"metaballs/internal/settings"
)

// Simulation is the part of the frame loop the panel drives.
type Simulation interface {
	Pause()
	Resume()
	Paused() bool
	AddBlob() bool
	Blobs() int
	FPS() int
}

// Panel binds a simulation and its render settings to console commands.
type Panel struct {
	sim      Simulation
	settings *settings.RenderSettings
	log      *logger.Logger
}

// New returns a panel. log receives command feedback.
func New(sim Simulation, rs *settings.RenderSettings, log *logger.Logger) *Panel {
	return &Panel{sim: sim, settings: rs, log: log}
}

// Register adds the panel commands to reg.
//
//	speed <f> [--apply]       stage the simulation speed multiplier
//	blobfactor <f> [--apply]  stage the blob merge factor
//	apply                     commit staged numeric fields
//	discard                   drop staged numeric fields
//	shadow|diffuse|normals <on|off>
//	pause, resume, addblob [-n N], status, help
func (p *Panel) Register(reg *commands.Registry) {
	p.registerNumeric(reg, "speed", "<multiplier> [--apply]: stage the simulation speed", p.settings.StageAnimSpeed)
	p.registerNumeric(reg, "blobfactor", "<factor> [--apply]: stage the blob merge factor", p.settings.StageBlobFactor)

	reg.Register("apply", "commit staged speed and blob factor", nil, func() error {
		p.apply()
		return nil
	})
	reg.Register("discard", "drop staged speed and blob factor", nil, func() error {
		p.settings.Discard()
		p.log.Log("staged settings discarded")
		return nil
	})

	p.registerToggle(reg, "shadow", p.settings.SetShadow)
	p.registerToggle(reg, "diffuse", p.settings.SetDiffuse)
	p.registerToggle(reg, "normals", p.settings.SetNormalsOnly)

	reg.Register("pause", "freeze the blobs", nil, func() error {
		p.sim.Pause()
		return nil
	})
	reg.Register("resume", "unfreeze the blobs", nil, func() error {
		p.sim.Resume()
		return nil
	})

	addFS := commands.NewFlagSet("addblob")
	n := addFS.IntP("count", "n", 1, "number of blobs to add")
	reg.Register("addblob", "[-n N]: add random blobs", addFS, func() error {
		if *n < 1 {
			return fmt.Errorf("addblob: count must be positive, got %d", *n)
		}
		for i := 0; i < *n; i++ {
			if !p.sim.AddBlob() {
				return fmt.Errorf("addblob: %w", scene.ErrCapacity)
			}
		}
		return nil
	})

	reg.Register("status", "print simulation state", nil, func() error {
		p.log.Log(p.Status())
		return nil
	})
	reg.Register("help", "list commands", nil, func() error {
		for _, line := range reg.Usage() {
			p.log.Log("cmd " + line)
		}
		return nil
	})
}

func (p *Panel) registerNumeric(reg *commands.Registry, name, usage string, stage func(float32) error) {
	fs := commands.NewFlagSet(name)
	apply := fs.BoolP("apply", "a", false, "commit immediately")
	reg.Register(name, usage, fs, func() error {
		if fs.NArg() != 1 {
			return fmt.Errorf("%s: expected one value", name)
		}
		v, err := strconv.ParseFloat(fs.Arg(0), 32)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := stage(float32(v)); err != nil {
			return err
		}
		if *apply {
			p.apply()
		} else {
			p.log.Logf("%s staged, run 'cmd apply' to use it", name)
		}
		return nil
	})
}

func (p *Panel) registerToggle(reg *commands.Registry, name string, set func(bool)) {
	fs := commands.NewFlagSet(name)
	reg.Register(name, "<on|off>: toggle "+name, fs, func() error {
		if fs.NArg() != 1 {
			return fmt.Errorf("%s: expected on or off", name)
		}
		on, err := ParseSwitch(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		set(on)
		p.log.Logf("%s %s", name, onOff(on))
		return nil
	})
}

func (p *Panel) apply() {
	v := p.settings.Commit()
	p.log.Logf("settings applied: speed %.2f, blob factor %.2f", v.AnimSpeed, v.BlobFactor)
}

// Status is a one-line summary of the simulation and settings.
func (p *Panel) Status() string {
	v := p.settings.Snapshot()
	state := "running"
	if p.sim.Paused() {
		state = "paused"
	}
	return fmt.Sprintf("%s, blobs %d/%d, fps %d, speed %.2f, blob factor %.2f, shadow %s, diffuse %s, normals %s",
		state, p.sim.Blobs(), scene.HardLimit, p.sim.FPS(), v.AnimSpeed, v.BlobFactor,
		onOff(v.Shadow), onOff(v.Diffuse), onOff(v.NormalsOnly))
}

// ParseSwitch accepts on/off, yes/no and anything strconv.ParseBool does.
func ParseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
