package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int("msb", 8, "MSB position of the operands")
	rootCmd.PersistentFlags().Int("lsb", 0, "LSB position of the operands, -lsb is the number of fractional bits")
	rootCmd.PersistentFlags().Bool("saturate", false, "saturate on overflow instead of wrapping")
	rootCmd.PersistentFlags().String("rounding", "floor", "rounding mode: floor, ceil, nearest")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	evalCmd.Flags().Int("rhs-msb", 0, "MSB position of the right operand, defaults to --msb")
	evalCmd.Flags().Int("rhs-lsb", 0, "LSB position of the right operand, defaults to --lsb")
	complexCmd.Flags().String("mode", "simple", "complex multiplication mode: simple, gauss")
	rootCmd.AddCommand(evalCmd, sliceCmd, complexCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fixbv",
	Short: "Bit-accurate fixed-point calculator.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <lhs> <op> <rhs>",
	Short: "Evaluate a binary operation. Ops: + - * / % ** << >> & | ^ == <",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readFormat(cmd)
		if err != nil {
			return err
		}
		rhsCfg := cfg
		if cmd.Flags().Changed("rhs-msb") {
			rhsCfg.msb = GetInt(cmd, "rhs-msb")
		}
		if cmd.Flags().Changed("rhs-lsb") {
			rhsCfg.lsb = GetInt(cmd, "rhs-lsb")
		}
		out, err := evalBinary(cfg, rhsCfg, args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var sliceCmd = &cobra.Command{
	Use:   "slice <value> <i> <j>",
	Short: "Extract the bit field [j, i) of a value.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readFormat(cmd)
		if err != nil {
			return err
		}
		out, err := evalSlice(cfg, args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var complexCmd = &cobra.Command{
	Use:   "complex <re> <im> <op> <re> <im>",
	Short: "Evaluate a complex operation. Ops: + - *",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readFormat(cmd)
		if err != nil {
			return err
		}
		out, err := evalComplex(cfg, GetString(cmd, "mode"), args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
