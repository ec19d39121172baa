package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"metaballs/internal/camera"
	"metaballs/internal/commands"
	"metaballs/internal/controlpanel"
	"metaballs/internal/debug"
	"metaballs/internal/engineconfig"
	"metaballs/internal/env"
	"metaballs/internal/fonts"
	"metaballs/internal/graphics"
	"metaballs/internal/input"
	"metaballs/internal/logger"
	"metaballs/internal/scene"
	"metaballs/internal/settings"
	"metaballs/internal/sim"
	"metaballs/internal/terminal"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "metaballs"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Raymarched metaballs bouncing in a box",
	Long: `Opens a window and raymarches a handful of blobs that drift and bounce inside
an invisible box. Fly with WASD, Q/E for down/up, Shift to go faster, and drag
with the left mouse button to look around. ESC opens the control console.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := env.Load(env.DefaultPath); err != nil {
			return fmt.Errorf("env: %w", err)
		}
		prefs, err := loadPrefs()
		if err != nil {
			return err
		}
		return run(prefs)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := engineconfig.DefaultPath
		if len(args) == 1 {
			path = args[0]
		}
		if err := engineconfig.Save(path, engineconfig.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", engineconfig.DefaultPath, "config file")
	flags.Int("blobs", 0, "number of blobs at startup (0-30)")
	flags.Int64("seed", 0, "blob generator seed, 0 for a time-based seed")
	flags.Bool("fullscreen", false, "open fullscreen")
	flags.String("log", "", "log file path")

	viper.SetEnvPrefix("METABALLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("scene.initial_blobs", flags.Lookup("blobs"))
	viper.BindPFlag("scene.seed", flags.Lookup("seed"))
	viper.BindPFlag("window.fullscreen", flags.Lookup("fullscreen"))
	viper.BindPFlag("log_path", flags.Lookup("log"))

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// loadPrefs reads the config file, then applies flags and METABALLS_* environment variables.
func loadPrefs() (engineconfig.Prefs, error) {
	prefs, err := engineconfig.Load(cfgFile)
	if err != nil {
		return prefs, err
	}
	if viper.IsSet("scene.initial_blobs") {
		prefs.Scene.InitialBlobs = viper.GetInt("scene.initial_blobs")
	}
	if viper.IsSet("scene.seed") {
		prefs.Scene.Seed = viper.GetInt64("scene.seed")
	}
	if viper.IsSet("window.fullscreen") {
		prefs.Window.Fullscreen = viper.GetBool("window.fullscreen")
	}
	if viper.IsSet("log_path") {
		prefs.LogPath = viper.GetString("log_path")
	}
	if err := prefs.Validate(); err != nil {
		return prefs, fmt.Errorf("config: %w", err)
	}
	return prefs, nil
}

func run(prefs engineconfig.Prefs) error {
	log := logger.New(prefs.LogPath)

	sc := scene.New(prefs.Bounds(), scene.NewGenerator(prefs.Scene.Seed))
	n := sc.Populate(prefs.Scene.InitialBlobs)
	state := sim.State{
		Scene:    sc,
		Camera:   camera.New(prefs.CameraConfig()),
		Input:    input.New(time.Duration(prefs.Input.MouseStaleMs) * time.Millisecond),
		Settings: settings.New(prefs.RenderValues()),
	}
	log.Logf("starting: %d blobs, seed %d, config %s", n, prefs.Scene.Seed, cfgFile)

	dbg := debug.New()
	dbg.ShowFPS = prefs.Debug.ShowFPS
	dbg.ShowFrameStats = prefs.Debug.ShowFrameStats
	dbg.ShowMemAlloc = prefs.Debug.ShowMemAlloc
	focus := graphics.NewFocusWatcher()

	var (
		loop *sim.Loop
		term *terminal.Terminal
		now  time.Duration
	)
	setup := func() (func(), error) {
		prog, err := graphics.LoadProgram(prefs.Shaders.Vertex, prefs.Shaders.Fragment)
		if err != nil {
			log.Log(err.Error())
			return nil, err
		}
		log.Logf("shader loaded: %s, %s", prefs.Shaders.Vertex, prefs.Shaders.Fragment)

		loop = sim.NewLoop(state, prog, log)
		reg := commands.NewRegistry()
		controlpanel.New(loop, state.Settings, log).Register(reg)
		term = terminal.New(log, reg)

		font := loadFont(prefs.Window.Font, log)
		term.SetFont(font)
		dbg.SetFont(font)
		return func() {
			graphics.UnloadFont(font)
			prog.Unload()
		}, nil
	}
	update := func() {
		term.Update()
		focus.Update(loop)
		now = graphics.Now()
		graphics.PollInput(state.Input, now, !term.IsOpen())
	}
	draw := func() {
		loop.Frame(now)
		term.Draw()
		dbg.Draw(loop)
	}

	win := graphics.Window{
		Width:      prefs.Window.Width,
		Height:     prefs.Window.Height,
		Fullscreen: prefs.Window.Fullscreen,
		Title:      prefs.Window.Title,
		TargetFPS:  prefs.Window.TargetFPS,
	}
	return graphics.Run(win, setup, update, draw)
}

// loadFont resolves and loads the configured UI font. Failures fall back to the built-in
// font with a log line.
func loadFont(name string, log *logger.Logger) (font rl.Font) {
	if name == "" {
		return font
	}
	path, err := fonts.Resolve(name, nil)
	if err != nil {
		log.Logf("font %q not found, using the default font", name)
		return font
	}
	font, err = graphics.LoadFont(path)
	if err != nil {
		log.Log(err.Error())
	}
	return font
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
