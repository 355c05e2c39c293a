package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tuannh982/grayset/grayset"

	log "github.com/sirupsen/logrus"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grayset",
		Short: "set algebra over gray codes",
		Long: `grayset draws the universe of gray codes of the given power and two random
subsets of it, then prints intersection, union, differences, symmetric
difference, complements, zip sum and cartesian product of the subsets.
`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := readInConfig(); err != nil {
				return err
			}
			if viper.GetBool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := grayset.DefaultConfig()
			if err := viper.Unmarshal(&config); err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return err
			}
			seed := config.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			log.WithField("seed", seed).Debug("random source")
			w, err := grayset.NewWorkbench(config, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			return w.Run(cmd.OutOrStdout())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is grayset.yaml)")
	flags.IntP("power", "p", 2, "power of the gray code (1 - 10)")
	flags.Int("buckets", grayset.DefaultBuckets, "bucket count of generated sets")
	flags.Int64("seed", 0, "random seed, 0 for a time based one")
	flags.Bool("multiset", false, "keep duplicates and draw subsets with replacement")
	flags.Int("per_line", grayset.DefaultPerLine, "values per output row")
	flags.BoolP("verbose", "v", false, "verbose")
	for _, name := range []string{"config", "power", "buckets", "seed", "multiset", "per_line", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}

// readInConfig reads in config file and ENV variables if set.
func readInConfig() error {
	configName := viper.GetString("config")
	if configName == "" {
		configName = "grayset.yaml"
		if _, err := os.Stat(configName); err != nil {
			configName = ""
		}
	}
	viper.SetEnvPrefix("grayset")
	viper.AutomaticEnv()
	if configName == "" {
		return nil
	}
	viper.SetConfigType("yaml")
	viper.SetConfigFile(configName)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	log.Debugf("using config: %s", viper.ConfigFileUsed())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
