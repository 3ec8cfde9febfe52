package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"jamodle/internal/game"
	"jamodle/internal/score"
	"jamodle/internal/session"
	"jamodle/internal/store"
	"jamodle/internal/words"
)

type config struct {
	WordFile   string `env:"WORD_FILE" envDefault:"data/words.json"`
	Backend    string `env:"STORE_BACKEND" envDefault:"file"`
	DataDir    string `env:"DATA_DIR" envDefault:"data/progress"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/jamodle.db"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	catalog, err := words.Load(cfg.WordFile)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.WordFile).Msg("failed to load word catalog")
	}
	logger.Info().Int("entries", catalog.Len()).Msg("word catalog loaded")

	st, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.Backend).Msg("failed to open store")
	}
	defer closeStore()

	sess, err := session.New(catalog, st, session.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start session")
	}

	run(sess, os.Stdin, os.Stdout)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// openStore picks the persistence backend by config. The session only
// ever sees the key-value port.
func openStore(cfg config, logger zerolog.Logger) (store.Store, func(), error) {
	switch cfg.Backend {
	case "memory":
		return store.NewMemory(), func() {}, nil
	case "sqlite":
		db, err := store.OpenSQLite(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	case "file":
		return store.NewFile(cfg.DataDir, logger), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Backend)
	}
}

// run drives rounds over a line-based loop: anything that is not a
// command is treated as a guess against the current round.
func run(sess *session.Session, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "jamodle — 초성으로 단어 맞히기")
	fmt.Fprintln(out, "명령: /new /daily /endless /hints /stats /reset /quit")
	printRound(sess, out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit":
			return
		case "/new":
			sess.NextRound()
			printRound(sess, out)
		case "/daily":
			sess.SetMode(game.ModeDaily)
			printRound(sess, out)
		case "/endless":
			sess.SetMode(game.ModeEndless)
			printRound(sess, out)
		case "/hints":
			printHints(sess, out)
		case "/stats":
			printStats(sess, out)
		case "/reset":
			sess.Reset()
			fmt.Fprintln(out, "진행 기록을 초기화했습니다.")
			printRound(sess, out)
		default:
			submit(sess, line, out)
		}
	}
}

func submit(sess *session.Session, line string, out io.Writer) {
	guess, tier, err := sess.Submit(line)
	switch err {
	case nil:
	case session.ErrRoundOver:
		fmt.Fprintln(out, "이미 맞힌 단어입니다. /new 로 다음 라운드를 시작하세요.")
		return
	case game.ErrEmptyGuess:
		fmt.Fprintln(out, "글자를 입력해 주세요.")
		return
	case game.ErrDuplicateGuess:
		fmt.Fprintln(out, "이미 시도한 단어입니다.")
		return
	default:
		fmt.Fprintf(out, "오류: %v\n", err)
		return
	}

	b := guess.Breakdown
	fmt.Fprintf(out, "전체 %d%% | 초성 %d%% | 중성 %d%% | 종성 %d%%\n",
		b.Overall, b.Initial, b.Medial, b.Final)
	fmt.Fprintln(out, tier.Message)
	if tier.Level == score.LevelSuccess {
		entry := sess.Round().Entry
		fmt.Fprintf(out, "정답: %s — %s\n", entry.Term, entry.Description)
	}
}

func printRound(sess *session.Session, out io.Writer) {
	round := sess.Round()
	fmt.Fprintf(out, "[%s] 초성: %s (시도 %d회)\n",
		round.Mode, round.Choseong(), len(round.Guesses))
}

func printHints(sess *session.Session, out io.Writer) {
	for _, h := range sess.Round().Hints() {
		if h.Unlocked {
			fmt.Fprintf(out, "%s: %s\n", h.Label, h.Value)
		} else {
			fmt.Fprintf(out, "%s: (잠김)\n", h.Label)
		}
	}
}

func printStats(sess *session.Session, out io.Writer) {
	stats := sess.Stats()
	fmt.Fprintf(out, "시도 %d회, 정답 %d회 (정답률 %d%%), 정복률 %d%%\n",
		stats.TotalGuesses, stats.CorrectAnswers, sess.SuccessRate(), sess.ConquestRate())
}
