package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nooga/jsobjectcore/internal/env"
	"github.com/nooga/jsobjectcore/pkg/jsvalue"
)

var (
	cfgFile     string
	heapVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "jsobjsh",
	Short: "A shell that exercises the object model directly",
	Long: `jsobjsh builds objects, arrays, and functions against the
object-model core and prints the result of each operation, without any
lexer, parser, or bytecode interpreter involved.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.jsobjsh.yaml)")
	rootCmd.PersistentFlags().BoolVar(&heapVerbose, "heap-verbose", false, "log env and gc heap diagnostics (such as a double root release) at debug level")
	viper.BindPFlag("heap-verbose", rootCmd.PersistentFlags().Lookup("heap-verbose"))

	rootCmd.AddCommand(newObjectCmd)
	rootCmd.AddCommand(defineCmd)
	rootCmd.AddCommand(chainCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".jsobjsh")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix("JSOBJSH")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// newEnv constructs the shared Env for a subcommand invocation, honoring
// the heap-verbose config knob by swapping in a development zap logger.
func newEnv() *env.Env {
	logger := zap.NewNop()
	if viper.GetBool("heap-verbose") {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	return env.New(env.WithLogger(logger))
}

func printDescriptor(label string, found bool, desc jsvalue.Descriptor) {
	if !found {
		fmt.Printf("%s: <absent>\n", label)
		return
	}
	if desc.IsAccessor() {
		fmt.Printf("%s: {accessor enumerable=%v configurable=%v}\n", label, desc.IsEnumerable(), desc.IsConfigurable())
		return
	}
	fmt.Printf("%s: {value=%s writable=%v enumerable=%v configurable=%v}\n",
		label, formatValue(desc.GetValue()), desc.IsWritable(), desc.IsEnumerable(), desc.IsConfigurable())
}

func formatValue(v jsvalue.Value) string {
	switch v.Type() {
	case jsvalue.TypeUndefined:
		return "undefined"
	case jsvalue.TypeNull:
		return "null"
	case jsvalue.TypeBoolean:
		return fmt.Sprintf("%v", v.AsBoolean())
	case jsvalue.TypeNumber:
		return fmt.Sprintf("%v", v.AsNumber())
	case jsvalue.TypeString:
		return fmt.Sprintf("%q", v.AsString())
	case jsvalue.TypeObject:
		return "[object]"
	default:
		return "[scope]"
	}
}
