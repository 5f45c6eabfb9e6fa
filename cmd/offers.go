package cmd

import (
	"fmt"
	"log"

	"github.com/ykarpov/negobot/internal/logger"
	"github.com/ykarpov/negobot/internal/offers"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Print a batch of sample offers from the catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		listOffers(cmd)
	},
}

func init() {
	rootCmd.AddCommand(offersCmd)

	offersCmd.Flags().IntP("count", "c", 3, "how many offers to draw")
	offersCmd.Flags().StringP("sector", "s", "", "restrict the draw to one sector")
}

func listOffers(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	generator := offers.NewGenerator(offers.NewCatalog(), config.Seed, logger)

	sector := offers.Sector(cmd.Flag("sector").Value.String())
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		logger.Fatal("reading the count flag", zap.Error(err))
	}

	if sector != "" {
		for i := 0; i < count; i++ {
			offer, err := generator.Generate(sector)
			if err != nil {
				logger.Fatal("generating an offer", zap.Error(err))
			}
			fmt.Printf("%s\n\n", offer.Summary())
		}
		return
	}

	batch, err := generator.GenerateMultiple(count)
	if err != nil {
		logger.Fatal("generating offers", zap.Error(err))
	}

	for _, offer := range batch {
		fmt.Printf("%s\n\n", offer.Summary())
	}
}
