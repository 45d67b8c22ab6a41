package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"housing-agent/config"
	"housing-agent/domain"
	"housing-agent/service"
	"housing-agent/speech"
)

func adviseCmd() *cobra.Command {
	var (
		narrate bool
		tone    string
		userID  string
	)
	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Interactive affordability calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdvise(config.Load(), tone, narrate, userID)
		},
	}
	cmd.Flags().BoolVar(&narrate, "narrate", false, "narrate results by synthesized speech")
	cmd.Flags().StringVar(&tone, "tone", "neutral", "narration tone: friendly, professional or neutral")
	cmd.Flags().StringVar(&userID, "user", "anonymous", "user identity recorded in interaction history")
	return cmd
}

func runAdvise(cfg config.Config, tone string, narrate bool, userID string) error {
	ctx := context.Background()

	interpreter := service.NewNumberInterpreter(cfg.OpenRouterKey, cfg.OpenRouterModel)
	normalizer := service.NewNormalizer(interpreter)
	advisor := newAdvisor(cfg, userID)

	var narrator *speech.Narrator
	if narrate {
		narrator = newNarrator(cfg, tone)
		defer narrator.Close()
		narrator.Say("Please provide the following details for your rent calculation.")
	}

	reader := bufio.NewScanner(os.Stdin)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("💰 INTERACTIVE AFFORDABILITY CALCULATOR")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nEnter your financial information (or press Enter for defaults):")
	fmt.Println()

	profile := domain.FinancialProfile{
		Tuition:          promptAmount(ctx, reader, normalizer, "Annual Tuition", service.DefaultTuition),
		BankBalance:      promptAmount(ctx, reader, normalizer, "Current Bank Balance", service.DefaultBankBalance),
		PartTimeIncome:   promptAmount(ctx, reader, normalizer, "Monthly Part-Time Income", service.DefaultPartTimeIncome),
		InternshipIncome: promptAmount(ctx, reader, normalizer, "Monthly Internship Income", service.DefaultInternshipIncome),
		Scholarships:     promptAmount(ctx, reader, normalizer, "Total Scholarships", service.DefaultScholarships),
		Loans:            promptAmount(ctx, reader, normalizer, "Total Loans", service.DefaultLoans),
		Months:           int(promptAmount(ctx, reader, normalizer, "Months of Housing Needed", domain.DefaultMonths)),
	}

	rec, err := advisor.Advise(ctx, profile)
	if err != nil {
		return err
	}

	available, err := advisor.AvailableListings()
	if err != nil {
		available = nil
	}
	printReport(profile, rec, available)

	if narrator != nil {
		narrator.Say(fmt.Sprintf("Your suggested budget is $%.2f per month.", rec.SafeRent))
		if len(rec.Listings) > 0 {
			addresses := make([]string, len(rec.Listings))
			for i, l := range rec.Listings {
				addresses[i] = l.Address
			}
			narrator.Say("Recommended housing options are: " + strings.Join(addresses, ", "))
		} else {
			narrator.Say("No suitable housing options were found within your budget.")
		}
	}
	return nil
}

// newNarrator picks remote synthesis when a key and a voice for the tone are
// configured, console narration otherwise.
func newNarrator(cfg config.Config, tone string) *speech.Narrator {
	voiceID := cfg.VoiceIDs[tone]
	if cfg.ElevenLabsKey != "" && voiceID != "" {
		return speech.NewNarrator(speech.NewElevenLabsSpeaker(cfg.ElevenLabsKey, voiceID, cfg.AudioPlayer))
	}
	return speech.NewNarrator(speech.NewConsoleSpeaker())
}

// promptAmount reads one field, running the answer through the normalizer.
// Empty input or input no layer can resolve keeps the default.
func promptAmount(
	ctx context.Context,
	reader *bufio.Scanner,
	normalizer *service.Normalizer,
	label string,
	def float64,
) float64 {
	fmt.Printf("%s (default: $%.0f): ", label, def)
	if !reader.Scan() {
		return def
	}
	answer := strings.TrimSpace(reader.Text())
	if answer == "" {
		return def
	}
	value, ok := normalizer.Normalize(ctx, answer)
	if !ok {
		fmt.Printf("  Could not interpret %q. Using default: $%.0f\n", answer, def)
		return def
	}
	return value
}

func printReport(profile domain.FinancialProfile, rec domain.Recommendation, available []domain.Listing) {
	fmt.Println("\n" + strings.Repeat("=", 60))

	fmt.Println("💵 YOUR FINANCIAL SUMMARY:")
	fmt.Printf("  Income (Monthly):          $%10.2f\n", profile.MonthlyIncome())
	fmt.Printf("  Financial Support:         $%10.2f\n", profile.FinancialSupport())
	fmt.Printf("  Bank Balance:              $%10.2f\n", profile.BankBalance)
	fmt.Printf("  Tuition (Annual):          $%10.2f\n", profile.Tuition)

	months := profile.Months
	if months <= 0 {
		months = domain.DefaultMonths
	}
	fmt.Println("\n🏠 RECOMMENDATION:")
	fmt.Printf("  Safe Monthly Rent:         $%10.2f\n", rec.SafeRent)
	fmt.Printf("  (Based on your financial situation for %d months)\n", months)

	fmt.Println("\n🎯 APARTMENT RECOMMENDATIONS:")
	fmt.Printf("  Found %d apartments under $%.2f/month\n\n", len(rec.Listings), rec.SafeRent)

	switch {
	case len(rec.Listings) > 0:
		fmt.Printf("  %-40s %10s\n", "Address", "Rent")
		fmt.Println("  " + strings.Repeat("-", 52))
		for _, l := range service.SortByRent(rec.Listings) {
			address := l.Address
			if len(address) > 38 {
				address = address[:38]
			}
			fmt.Printf("  %-40s $%9.2f\n", address, l.MonthlyRent)
			if savings := rec.SafeRent - l.MonthlyRent; savings > 0 {
				fmt.Printf("    └─ Save $%.2f/month\n", savings)
			}
		}
	case rec.AvailableCount > 0:
		fmt.Printf("  ⚠️  No apartments under $%.2f/month\n", rec.SafeRent)
		if min, max, ok := service.RentRange(available); ok {
			fmt.Printf("  Available range: $%.2f - $%.2f\n", min, max)
		}
	default:
		fmt.Println("  ⚠️  No apartments available in database")
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
}
