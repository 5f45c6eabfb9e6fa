package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ykarpov/negobot/internal/logger"
	"github.com/ykarpov/negobot/internal/negotiation"
	"github.com/ykarpov/negobot/internal/offers"
	"github.com/ykarpov/negobot/internal/profile"
	"github.com/ykarpov/negobot/internal/templates"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptContinue = "Continue negotiating"
	PromptStatus   = "Show session status"
	PromptStop     = "Stop"

	maxDemoRounds = 5
)

var errExit = errors.New("exit requested")

var roundPrompt = promptui.Select{
	Label: "Next move?",
	Items: []string{PromptContinue, PromptStatus, PromptStop},
}

// recruiterScript plays the recruiter side of the demo. The first round is
// always the offer announcement; later rounds escalate pressure.
var recruiterScript = []string{
	"That's at the top of our budget for this band, to be honest.",
	"We do have other candidates moving forward, but let me hear you out.",
	"I've checked with the team and there's very little room left.",
	"This is our final offer, I'm afraid.",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a scripted negotiation against the simulator",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("sector", "s", "", "sector to draw the offer from (empty means any)")
	runCmd.Flags().String("strategy", "", "candidate strategy: collaborative, assertive, analytical or diplomatic")
	runCmd.Flags().Int("target-salary", 0, "candidate target salary")
	runCmd.Flags().String("resume-file", "", "plain-text resume to derive the candidate profile from")
	runCmd.Flags().BoolP("auto-approve", "y", false, "play all rounds without prompting")

	viper.BindPFlag("defaults.strategy", runCmd.Flags().Lookup("strategy"))
	viper.BindPFlag("defaults.target-salary", runCmd.Flags().Lookup("target-salary"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the negobot", zap.String("version", version))

	engine, err := newEngine(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the negotiation engine", zap.Error(err))
	}

	sector := offers.Sector(cmd.Flag("sector").Value.String())
	offer, err := engine.GenerateOffer(sector)
	if err != nil {
		logger.Fatal("generating an offer", zap.Error(err))
	}

	fmt.Printf("\nIncoming offer (%s difficulty):\n%s\n\n", offer.DifficultyLabel(), offer.Summary())

	strategy := templates.Strategy(viper.GetString("defaults.strategy"))
	targetSalary := viper.GetInt("defaults.target-salary")
	if targetSalary == 0 {
		// A reasonable stretch goal keeps the salary-focused templates in play.
		targetSalary = offer.BaseSalary + offer.BaseSalary/4
	}

	rawProfile, err := resolveProfile(cmd)
	if err != nil {
		logger.Fatal("building the candidate profile", zap.Error(err))
	}

	sessionID, err := engine.CreateSession(offer.Company.Name, offer.Position, rawProfile, negotiation.SessionOptions{
		InitialOffer: offer,
		Strategy:     strategy,
		TargetSalary: targetSalary,
	})
	if err != nil {
		logger.Fatal("creating a session", zap.Error(err))
	}

	auto := cmd.Flag("auto-approve").Value.String() == "true"

	message := fmt.Sprintf("We're excited to offer you the %s position at %s!", offer.Position, offer.Company.Name)
	for round := 1; round <= maxDemoRounds; round++ {
		result, err := engine.SubmitMessage(ctx, sessionID, message, nil)
		if err != nil {
			logger.Fatal("negotiation round failed", zap.Error(err))
		}

		fmt.Printf("Recruiter: %s\n", message)
		fmt.Printf("You:       %s\n", result.Utterance)
		fmt.Printf("Recruiter: %s\n\n", result.Reply)

		switch result.Action {
		case negotiation.ActionImprove:
			fmt.Printf("The offer improved!\n%s\n\n", result.NewOffer.Summary())
		case negotiation.ActionWithdraw:
			fmt.Println("The offer was withdrawn. Negotiation over.")
			return
		case negotiation.ActionDecline:
			fmt.Println("The recruiter declined to move further.")
		}

		if round == maxDemoRounds {
			break
		}

		if !auto {
			if err := handleRoundPrompt(engine, sessionID); err != nil {
				if errors.Is(err, errExit) {
					return
				}
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		message = recruiterScript[(round-1)%len(recruiterScript)]
	}

	printStatus(engine, sessionID)
}

func handleRoundPrompt(engine *negotiation.Engine, sessionID string) error {
	for {
		_, action, err := roundPrompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptContinue:
			return nil
		case PromptStatus:
			printStatus(engine, sessionID)
		case PromptStop:
			return errExit
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

func printStatus(engine *negotiation.Engine, sessionID string) {
	status, err := engine.SessionStatus(sessionID)
	if err != nil {
		fmt.Printf("session status unavailable: %v\n", err)
		return
	}

	fmt.Printf("\nSession %s after %d round(s):\n", status.SessionID, status.Rounds)
	if status.CurrentOffer != nil {
		fmt.Println(status.CurrentOffer.Summary())
	}
	if status.Declined {
		fmt.Println("The recruiter has declined further movement.")
	}
	if status.Withdrawn {
		fmt.Println("The offer was withdrawn.")
	}
	fmt.Println()
}

// resolveProfile builds the candidate profile map, from a resume file when one
// is given and from defaults otherwise.
func resolveProfile(cmd *cobra.Command) (map[string]any, error) {
	resumeFile := cmd.Flag("resume-file").Value.String()
	if resumeFile == "" {
		return nil, nil
	}

	data, err := os.ReadFile(resumeFile)
	if err != nil {
		return nil, fmt.Errorf("reading resume file: %w", err)
	}

	p := profile.ParseResume(string(data))

	return map[string]any{
		"years_experience":      p.YearsExperience,
		"industry":              p.Industry,
		"primary_skill":         p.PrimarySkill,
		"key_achievement":       p.KeyAchievement,
		"education_level":       p.EducationLevel,
		"leadership_experience": p.LeadershipExperience,
		"certifications":        p.Certifications,
	}, nil
}
