package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"InvestAdvisor/internal/advisor"
	"InvestAdvisor/internal/faq"
	"InvestAdvisor/internal/notifier"
	"InvestAdvisor/internal/scheduler"
	"InvestAdvisor/internal/server"
	"InvestAdvisor/internal/translate"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the snapshot scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshotNow, _ := cmd.Flags().GetBool("snapshot-on-start")
			return runServe(a, snapshotNow)
		},
	}
	cmd.Flags().Bool("snapshot-on-start", os.Getenv("RUN_ON_START") == "true", "Take a market snapshot immediately")
	return cmd
}

func runServe(a *app, snapshotNow bool) error {
	svc, err := newServices(a.cfg, a.log)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var digest scheduler.Notifier
	var tn *notifier.TelegramNotifier
	if a.cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier("", a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.cfg.MarketData.Proxy, a.log)
		digest = tn
	}

	sched := scheduler.NewScheduler(ctx, svc.inflation, svc.market, svc.faq, digest, svc.recorder, a.log)
	if err := sched.Register(a.cfg.Schedule.SnapshotCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		a.log.Info().Msg("Telegram polling started")
	}
	if snapshotNow {
		go func() {
			if _, err := sched.RunSnapshotNow(); err != nil {
				a.log.Error().Err(err).Msg("Startup snapshot failed")
			}
		}()
	}

	srv := server.New(server.Config{
		Log:            a.log,
		Port:           a.cfg.Server.Port,
		ReadTimeout:    a.cfg.Server.ReadTimeout,
		WriteTimeout:   a.cfg.Server.WriteTimeout,
		RequestTimeout: a.cfg.Server.RequestTimeout,
		CORSOrigins:    a.cfg.Server.CORSOrigins,
		Advisor:        svc.advisor,
		FAQ:            svc.faq,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("Shutdown signal received, stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRecommendCmd(a *app) *cobra.Command {
	var (
		age                 int
		risk, horizon, goal string
		amount, lang        string
		asJSON              bool
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get a recommendation for a single profile",
		Long: `Get a recommendation for a single profile.
Example: investadvisor recommend --age 30 --risk high --horizon long --goal growth --amount 100000 --lang hi`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices(a.cfg, a.log)
			if err != nil {
				return err
			}
			defer svc.Close()

			res, err := svc.advisor.Recommend(cmd.Context(), advisor.RawRequest{
				Age:            age,
				Risk:           risk,
				Horizon:        horizon,
				Goal:           goal,
				InvestedAmount: amount,
				Language:       lang,
			})
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResult(res))
			return nil
		},
	}
	cmd.Flags().IntVar(&age, "age", 0, "Investor age in years")
	cmd.Flags().StringVar(&risk, "risk", "", "Risk appetite: low, medium or high")
	cmd.Flags().StringVar(&horizon, "horizon", "", "Investment horizon: short, medium or long")
	cmd.Flags().StringVar(&goal, "goal", "", "Investment goal, e.g. growth")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to invest")
	cmd.Flags().StringVar(&lang, "lang", translate.DefaultLanguage, "Output language code")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the API response body")
	for _, f := range []string{"age", "risk", "horizon", "goal", "amount"} {
		cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Answer prompts to get a recommendation or browse the FAQ",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), a)
		},
	}
}

func runInteractive(ctx context.Context, a *app) error {
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := newServices(a.cfg, a.log)
	if err != nil {
		return err
	}
	defer svc.Close()

	fmt.Println(titleStyle.Render("InvestAdvisor"))

	lang, err := PromptForLanguage()
	if err != nil {
		return ignoreInterrupt(err)
	}

	for {
		mode, err := PromptForMode()
		if err != nil {
			return ignoreInterrupt(err)
		}
		switch mode {
		case modeRecommend:
			raw, err := PromptForProfile()
			if err != nil {
				return ignoreInterrupt(err)
			}
			raw.Language = lang
			res, err := svc.advisor.Recommend(ctx, raw)
			if err != nil {
				fmt.Println(renderError(err))
				continue
			}
			fmt.Println(renderResult(res))
		case modeFAQ:
			if err := browseFAQ(ctx, svc.faq, lang); err != nil {
				return ignoreInterrupt(err)
			}
		default:
			return nil
		}
	}
}

func browseFAQ(ctx context.Context, store *faq.Store, lang string) error {
	questions := store.Questions(ctx, lang)
	for {
		idx, err := PromptForQuestion(questions)
		if err != nil || idx < 0 {
			return err
		}
		answer, err := store.Answer(ctx, lang, faq.Selector{Index: idx})
		if err != nil {
			fmt.Println(renderError(err))
			continue
		}
		fmt.Println(renderAnswer(questions[idx], answer))
	}
}

// ignoreInterrupt treats Ctrl+C at a prompt as a normal exit.
func ignoreInterrupt(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return nil
	}
	return err
}

func newFAQCmd(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "faq [INDEX]",
		Short: "List FAQ questions, or show the answer to one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := faq.NewStore(newTranslator(a.cfg, a.log))
			out := cmd.OutOrStdout()

			text, _ := cmd.Flags().GetString("text")
			if len(args) == 0 && text == "" {
				fmt.Fprintln(out, renderQuestions(store.Questions(cmd.Context(), lang)))
				return nil
			}

			sel := faq.Selector{Text: text}
			if len(args) == 1 {
				var idx int
				if _, err := fmt.Sscanf(args[0], "%d", &idx); err != nil {
					return fmt.Errorf("INDEX must be a number: %w", err)
				}
				sel.Index = idx
			}
			answer, err := store.Answer(cmd.Context(), lang, sel)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, answer)
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", translate.DefaultLanguage, "Output language code")
	cmd.Flags().String("text", "", "Select the question by its English text")
	return cmd
}

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported output languages",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), renderLanguages(translate.Languages))
		},
	}
}

func newSnapshotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch inflation and top performers now and record them",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices(a.cfg, a.log)
			if err != nil {
				return err
			}
			defer svc.Close()

			sched := scheduler.NewScheduler(cmd.Context(), svc.inflation, svc.market, svc.faq, nil, svc.recorder, a.log)
			snap, err := sched.RunSnapshotNow()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), notifier.FormatSnapshot(snap.TakenAt, snap.Inflation, snap.Top))
			return nil
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently served recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Database.SQLitePath == "" {
				return fmt.Errorf("database.sqlite_path is not configured")
			}
			rec := newRecorder(a.cfg, a.log)
			defer rec.Close()

			recs, err := rec.RecentRecommendations(limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistory(recs))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of records to show")
	return cmd
}
