/*
 * Copyright 2021 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/nlnwa/gomarc/cmd/marc/cmd/cat"
	"github.com/nlnwa/gomarc/cmd/marc/cmd/ls"
	"github.com/nlnwa/gomarc/cmd/marc/cmd/validate"
	"github.com/nlnwa/gomarc/cmd/marc/internal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type conf struct {
	cfgFile string
}

// NewCommand returns a new cobra.Command implementing the root command for marc
func NewCommand() *cobra.Command {
	c := &conf{}
	cmd := &cobra.Command{
		Use:   "marc",
		Short: "A tool for reading ISO 2709 (MARC) files",
		Long: `marc reads files of concatenated ISO 2709 records, like CNMARC or MARC 21 exports,
and lists, prints or validates the records they contain.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
	}

	// Flags
	cmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.marc.yaml)")
	cmd.PersistentFlags().String(internal.FlagLogLevel, "info", "log level, one of: trace, debug, info, warn, error")
	cmd.PersistentFlags().IntP(internal.FlagBlockSize, "b", 4096, "number of bytes to read at a time")
	cmd.PersistentFlags().StringP(internal.FlagEncoding, "e", "gb18030", "text encoding of field content")
	cmd.PersistentFlags().String(internal.FlagRecordErrors, "fail", "how to handle malformed records, one of: fail, warn, ignore")
	_ = viper.BindPFlags(cmd.PersistentFlags())

	// Subcommands
	cmd.AddCommand(ls.NewCommand())
	cmd.AddCommand(cat.NewCommand())
	cmd.AddCommand(validate.NewCommand())

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func (c *conf) initConfig() error {
	if c.cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(c.cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		// Search config in home directory with name ".marc" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".marc")
	}

	viper.SetEnvPrefix("MARC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	} else if c.cfgFile != "" {
		return err
	}

	level, err := log.ParseLevel(viper.GetString(internal.FlagLogLevel))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}
