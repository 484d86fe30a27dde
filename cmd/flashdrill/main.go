package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ddrozdov/flashdrill/internal/exercise"
	appI18n "github.com/ddrozdov/flashdrill/internal/i18n"
	"github.com/ddrozdov/flashdrill/internal/model"
	"github.com/ddrozdov/flashdrill/internal/progress"
	"github.com/ddrozdov/flashdrill/internal/score"
	"github.com/ddrozdov/flashdrill/internal/session"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flashdrill",
		Short: "Adaptive flashcard exercise generator and grader",
	}

	practice := practiceCmd()
	root.AddCommand(practice, generateCmd(), gradeCmd())

	// Make "practice" the default when no subcommand is given.
	root.RunE = practice.RunE

	// Register practice flags on root so bare `flashdrill --module ...` still works.
	root.Flags().AddFlagSet(practice.Flags())

	return root
}

func practiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Run an interactive practice session over a module file",
		RunE:  runPractice,
	}
	f := cmd.Flags()
	f.StringP("module", "m", "module.json", "Path to the module JSON file")
	f.String("mode", string(model.ModeFillBlank), "Exercise mode (fill_blank, word_cloud, verbal)")
	f.IntP("stage", "s", 1, "Difficulty stage")
	f.StringP("lang", "l", "en", "UI language (en, ru)")
	f.Int64("seed", 0, "Random seed (0 = time-based)")
	f.Int("time-limit", 0, "Per-card on-time limit in seconds (0 = always on time)")
	f.StringP("output", "o", "", "Write the session export JSON to this path after the run")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single exercise as JSON",
		RunE:  runGenerate,
	}
	f := cmd.Flags()
	f.StringP("text", "t", "", "Card text to build the exercise from (required)")
	f.String("mode", string(model.ModeFillBlank), "Exercise mode (fill_blank, word_cloud, verbal)")
	f.IntP("stage", "s", 1, "Difficulty stage")
	f.StringSlice("vocab", nil, "Extra vocabulary words for decoy generation (repeatable)")
	f.Int64("seed", 0, "Random seed (0 = time-based)")
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")

	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func gradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade a response against a generated exercise",
		RunE:  runGrade,
	}
	f := cmd.Flags()
	f.StringP("exercise", "e", "-", "Path to the exercise envelope JSON (- for stdin)")
	f.StringSlice("answer", nil, "Blank answer as index=word, repeatable (fill_blank)")
	f.String("order", "", "Space-separated word order (word_cloud)")
	f.String("transcript", "", "Spoken transcript (verbal)")
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("FLASHDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("flashdrill")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/flashdrill")
	v.AddConfigPath("/etc/flashdrill")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func newGenerator(v *viper.Viper, vocab []string) *exercise.Generator {
	opts := []exercise.Option{exercise.WithVocabulary(vocab)}
	if seed := v.GetInt64("seed"); seed != 0 {
		opts = append(opts, exercise.WithSeed(seed))
	}
	return exercise.New(opts...)
}

func runPractice(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	mode, err := model.ParseMode(v.GetString("mode"))
	if err != nil {
		return err
	}
	stage := v.GetInt("stage")

	mod, err := loadModule(v.GetString("module"))
	if err != nil {
		return err
	}

	lang := v.GetString("lang")
	if err := appI18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}
	ctx := appI18n.WithLocalizer(context.Background(), appI18n.NewLocalizer(lang))

	sess := session.New(mod.ModuleID, session.WithGenerator(newGenerator(v, mod.Vocabulary)))
	timeLimit := v.GetInt("time-limit")
	reader := bufio.NewScanner(os.Stdin)

	fmt.Println(appI18n.T(ctx, "AppTitle"))
	slog.Info("starting practice",
		"module", mod.ModuleID,
		"cards", len(mod.Cards),
		"mode", mode,
		"stage", stage,
		"lang", lang,
	)

	for _, card := range mod.Cards {
		ex, err := sess.NextExercise(mode, card.Text, stage)
		if err != nil {
			return fmt.Errorf("generate exercise for card %s: %w", card.ID, err)
		}

		printPrompt(ctx, ex)
		start := time.Now()
		if !reader.Scan() {
			break
		}
		elapsed := int(time.Since(start).Seconds())

		resp := buildResponse(ex, reader.Text())
		att := session.Attempt{
			CardID:    card.ID,
			TimeSpent: elapsed,
			OnTime:    timeLimit == 0 || elapsed <= timeLimit,
		}
		result, calc, err := sess.Submit(ex, resp, att)
		if err != nil {
			return fmt.Errorf("grade card %s: %w", card.ID, err)
		}

		printResult(ctx, result, calc)
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Println(appI18n.Td(ctx, "SessionSummary", map[string]any{
		"ID":     sess.ID(),
		"Points": sess.Ledger().TotalPoints(),
	}))
	streak := sess.Streak()
	if streak.CurrentStreak > 0 {
		fmt.Println(appI18n.Tp(ctx, "StreakDays", streak.CurrentStreak))
	}
	if progress.IsStreakAtRisk(streak, time.Now()) {
		fmt.Println(appI18n.T(ctx, "StreakAtRisk"))
	}

	if outPath := v.GetString("output"); outPath != "" {
		if err := writeJSON(outPath, sess.Export()); err != nil {
			return fmt.Errorf("write session export: %w", err)
		}
		slog.Info("wrote session export", "path", outPath)
	}

	return nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	mode, err := model.ParseMode(v.GetString("mode"))
	if err != nil {
		return err
	}

	gen := newGenerator(v, v.GetStringSlice("vocab"))
	ex, err := gen.Generate(mode, v.GetString("text"), v.GetInt("stage"))
	if err != nil {
		return fmt.Errorf("generate exercise: %w", err)
	}

	return writeJSON(v.GetString("output"), model.WrapExercise(ex))
}

func runGrade(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	data, err := readInput(v.GetString("exercise"))
	if err != nil {
		return fmt.Errorf("read exercise: %w", err)
	}

	var env model.ExerciseEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("parse exercise: %w", err)
	}
	ex, err := env.Exercise()
	if err != nil {
		return err
	}

	resp, err := responseFromFlags(v)
	if err != nil {
		return err
	}

	result, err := score.Grade(ex, resp)
	if err != nil {
		return fmt.Errorf("grade response: %w", err)
	}

	return writeJSON(v.GetString("output"), result)
}

func loadModule(path string) (*model.ModuleImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var mod model.ModuleImport
	if err := json.Unmarshal(data, &mod); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(mod.Cards) == 0 {
		return nil, fmt.Errorf("module %s has no cards", path)
	}
	slog.Info("loaded module", "path", path, "module", mod.ModuleID, "cards", len(mod.Cards))
	return &mod, nil
}

func printPrompt(ctx context.Context, ex model.Exercise) {
	switch e := ex.(type) {
	case *model.FillBlankExercise:
		fmt.Println(appI18n.T(ctx, "FillBlankPrompt"))
		fmt.Println(e.DisplayText)
		fmt.Println(appI18n.Tp(ctx, "BlanksRemaining", len(e.Blanks)))
	case *model.WordCloudExercise:
		fmt.Println(appI18n.T(ctx, "WordCloudPrompt"))
		words := make([]string, 0, len(e.Words)+len(e.Decoys))
		for _, tok := range e.Words {
			words = append(words, tok.Word)
		}
		for _, tok := range e.Decoys {
			words = append(words, tok.Word)
		}
		// Scramble the display so the line does not spell out the answer.
		rand.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
		fmt.Println(strings.Join(words, " | "))
	case *model.VerbalExercise:
		fmt.Println(appI18n.T(ctx, "VerbalPrompt"))
		fmt.Println(e.DisplayText)
	}
	fmt.Print("> ")
}

// buildResponse maps one input line to the response shape for the exercise:
// comma-separated blank answers, the reordered words, or the full transcript.
func buildResponse(ex model.Exercise, line string) model.Response {
	switch ex.(type) {
	case *model.FillBlankExercise:
		parts := strings.Split(line, ",")
		answers := make(map[int]string, len(parts))
		for i, p := range parts {
			answers[i] = strings.TrimSpace(p)
		}
		return model.Response{Answers: answers}
	case *model.WordCloudExercise:
		return model.Response{Order: strings.Fields(line)}
	default:
		return model.Response{Transcript: line}
	}
}

func printResult(ctx context.Context, result model.GradedResult, calc *model.PointsCalculation) {
	if result.Correct {
		fmt.Println(appI18n.T(ctx, "CorrectAnswer"))
	} else {
		fmt.Println(appI18n.T(ctx, "WrongAnswer"))
	}
	fmt.Println(appI18n.Td(ctx, "AccuracyPercent", map[string]any{
		"Accuracy": fmt.Sprintf("%.1f", result.Accuracy),
	}))
	switch {
	case calc != nil:
		fmt.Println(appI18n.Tp(ctx, "PointsEarned", calc.TotalPoints))
		for _, line := range calc.Breakdown {
			fmt.Println("  " + line)
		}
	case score.Passed(result):
		fmt.Println(appI18n.T(ctx, "AlreadyCompleted"))
	}
	fmt.Println()
}

func responseFromFlags(v *viper.Viper) (model.Response, error) {
	var resp model.Response

	if pairs := v.GetStringSlice("answer"); len(pairs) > 0 {
		resp.Answers = make(map[int]string, len(pairs))
		for _, pair := range pairs {
			idx, word, found := strings.Cut(pair, "=")
			if !found {
				return resp, fmt.Errorf("invalid answer %q (want index=word)", pair)
			}
			var i int
			if _, err := fmt.Sscanf(idx, "%d", &i); err != nil {
				return resp, fmt.Errorf("invalid answer index %q: %w", idx, err)
			}
			resp.Answers[i] = word
		}
	}
	if order := v.GetString("order"); order != "" {
		resp.Order = strings.Fields(order)
	}
	resp.Transcript = v.GetString("transcript")

	return resp, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	var w io.Writer
	if path == "" || path == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	// Ensure trailing newline.
	_, _ = fmt.Fprintln(w)

	return nil
}
