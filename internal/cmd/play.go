package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/athoscouto/codename"
	"github.com/charmbracelet/lipgloss"
	"github.com/chiselstrike/blockfall/internal"
	"github.com/chiselstrike/blockfall/internal/flags"
	"github.com/chiselstrike/blockfall/internal/prompt"
	"github.com/chiselstrike/blockfall/internal/settings"
	"github.com/chiselstrike/blockfall/internal/tetris"
	"github.com/chiselstrike/blockfall/internal/tui"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	minTerminalWidth  = 80
	minTerminalHeight = 24
)

func init() {
	rootCmd.AddCommand(playCmd)
	flags.AddLevel(playCmd)
	flags.AddNoGhost(playCmd)
	flags.AddName(playCmd)
}

var playCmd = &cobra.Command{
	Use:               "play",
	Aliases:           []string{"relax"},
	Short:             "Sometimes you feel like you're working too hard... relax!",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if err := checkTerminal(); err != nil {
			return err
		}

		options, logFile, err := playOptions(cmd)
		if err != nil {
			return err
		}

		logger, closer, err := tui.NewLogger(logFile)
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		summary, err := tui.Start(ctx, logger, options)
		if err != nil {
			return fmt.Errorf("game crashed, see %s: %w", logFile, err)
		}
		printSummary(cmd.OutOrStdout(), summary)
		return nil
	},
}

func checkTerminal() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("blockfall needs a terminal to play")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("could not read terminal size: %w", err)
	}
	if width < minTerminalWidth || height < minTerminalHeight {
		return fmt.Errorf("terminal is %dx%d, blockfall needs at least %dx%d", width, height, minTerminalWidth, minTerminalHeight)
	}
	return nil
}

// playOptions merges the settings file with the command line flags
func playOptions(cmd *cobra.Command) (tui.Options, string, error) {
	config, err := settings.ReadSettings()
	if err != nil {
		return tui.Options{}, "", fmt.Errorf("failed to read settings: %w", err)
	}
	current, err := config.Config()
	if err != nil {
		return tui.Options{}, "", err
	}

	level, err := flags.Level(cmd)
	if err != nil {
		return tui.Options{}, "", err
	}
	if level == 0 {
		level = current.StartLevel
	}

	player, err := playerName(config, flags.Name())
	if err != nil {
		return tui.Options{}, "", err
	}
	if err := settings.PersistChanges(); err != nil {
		return tui.Options{}, "", err
	}

	options := tui.Options{
		Player:      player,
		StartLevel:  level,
		BaseScore:   current.BaseScore,
		Ghost:       current.Ghost && !flags.NoGhost(),
		SpawnColumn: current.SpawnColumn,
		Debug:       flags.Debug(),
	}
	return options, current.LogFile, nil
}

// playerName picks the name for the ranking: the flag, then the remembered
// name, then whatever the player types, then a generated one
func playerName(config *settings.Settings, name string) (string, error) {
	if name == "" {
		name = config.GetPlayer()
	}
	if name == "" {
		suggestion, err := randomName()
		if err != nil {
			return "", err
		}
		name = suggestion
		if prompt.IsInteractive() {
			if name, err = prompt.PlayerName(suggestion); err != nil {
				return "", err
			}
		}
	}
	name = truncateName(name)
	if name != config.GetPlayer() {
		config.SetPlayer(name)
	}
	return name, nil
}

// truncateName cuts name to the ranking width, counting runes
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > prompt.MaxNameLength {
		return string(runes[:prompt.MaxNameLength])
	}
	return name
}

func randomName() (string, error) {
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "", err
	}
	return codename.Generate(rng, 0), nil
}

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 2)

func printSummary(w io.Writer, summary *tui.Summary) {
	if summary == nil {
		return
	}
	fmt.Fprintln(w, bannerStyle.Render("Thanks for playing, "+summary.Player+"!"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games played: %s\n", internal.Emph(summary.Games))
	fmt.Fprintf(w, "Last game: %s points, %s lines, level %s\n",
		internal.Emph(humanize.Comma(int64(summary.Score))),
		internal.Emph(humanize.Comma(int64(summary.Lines))),
		internal.Emph(summary.Level))
	fmt.Fprintln(w)

	data := make([][]string, 0)
	for _, shape := range tetris.Shapes() {
		data = append(data, []string{shape.String(), humanize.Comma(int64(summary.Spawned[shape]))})
	}
	printTable(w, []string{"shape", "spawned"}, data)

	if len(summary.Ranking) == 0 {
		return
	}
	fmt.Fprintln(w)
	ranking := make([][]string, 0, len(summary.Ranking))
	for index, entry := range summary.Ranking {
		place := strconv.Itoa(index + 1)
		if index == 0 {
			place = internal.Good(place)
		}
		ranking = append(ranking, []string{place, entry.Name, humanize.Comma(int64(entry.Score))})
	}
	printTable(w, []string{"place", "player", "score"}, ranking)
}
