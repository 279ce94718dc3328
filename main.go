// digger is a side-scrolling digging game: walk the surface, shoot blocks out
// of the ground and collect the gold and coal underneath.
//
// Usage:
//
//	digger                 - Play the default map
//	digger --map <name>    - Play a map from levels/ (.tmx or .json)
//	digger scores [map]    - Show high scores
//
// Global flags:
//
//	--assets <dir>   - On-disk asset directory (default: assets)
//	--prefabs <dir>  - On-disk prefab directory (default: prefabs)
//	--levels <dir>   - On-disk level directory (default: levels)
//	--db <path>      - Scores database, empty disables (default: ~/.digger/scores.db)
//	--debug          - Debug logging and physics overlay
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/digger/assets"
	"github.com/milk9111/digger/common"
	"github.com/milk9111/digger/prefabs"
	"github.com/milk9111/digger/session"
	"github.com/milk9111/digger/storage"
)

var (
	flagAssetsDir  string
	flagPrefabsDir string
	flagLevelsDir  string
	flagMap        string
	flagDBPath     string
	flagDebug      bool
	flagWatch      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("digger", "err", err)
	}
}

var rootCmd = &cobra.Command{
	Use:          "digger",
	Short:        "Dig for gold and coal",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagDebug)
		assets.Dir = flagAssetsDir
		prefabs.Dir = flagPrefabsDir
	},
	RunE: runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAssetsDir, "assets", "assets", "on-disk asset directory, read before the embedded assets")
	rootCmd.PersistentFlags().StringVar(&flagPrefabsDir, "prefabs", "prefabs", "on-disk prefab directory, read before the embedded prefabs")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.digger/scores.db", "path to the scores database (empty disables high scores)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging and the physics overlay")
	rootCmd.Flags().StringVar(&flagLevelsDir, "levels", "levels", "on-disk level directory, read before the embedded levels")
	rootCmd.Flags().StringVar(&flagMap, "map", "", "map name in levels/ (overrides level.map in game.yaml)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", true, "reload prefabs edited on disk while running")

	rootCmd.AddCommand(scoresCmd)
}

func setupLogging(debug bool) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "digger",
		Level:           level,
	}))
}

func runGame(cmd *cobra.Command, args []string) error {
	var store *storage.Store
	if flagDBPath != "" {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	sess, err := session.New(session.Options{
		MapName:   flagMap,
		LevelsDir: flagLevelsDir,
		Store:     store,
		Watch:     flagWatch,
		Debug:     flagDebug,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle(common.ScreenTitle)
	ebiten.SetTPS(int(sess.Spec().Physics.TPS))

	log.Info("starting", "map", sess.MapName())
	return ebiten.RunGame(NewGame(sess))
}
