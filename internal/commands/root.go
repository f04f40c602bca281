package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/pkg/polyalpha"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "govig [flags] command [flags]"
	root.Short = "Polyalphabetic substitution cipher utility"
	root.Long = `A Vigenère-family cipher utility over configurable alphabets.
Supports repeating, autokey and running keys, and recovers repeating keys from ciphertext.
Reads standard input when no files are given.`

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("verbose", false, "Enable debug logging")
	flags.BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	flags.Bool("stats", false, "Print a summary after processing")
	flags.Bool("preserve-timestamps", false, "Copy the modification time of each input to its output")

	flags.StringP("key", "k", "", "Cipher key, or the running text for the running strategy")
	flags.StringP("key-file", "f", "", "Path to a file containing the key")

	// Empty values fall back to the profile, then to the built-in defaults.
	flags.StringP("alphabet", "a", "", "Ordered set of symbols the cipher works over (default "+polyalpha.DefaultSymbols+")")
	flags.StringP("strategy", "m", "", "Key stream: repeating, autokey or running (default repeating)")
	flags.String("on-invalid", "", "Handling of characters outside the alphabet: drop, reject or keep (default drop)")
	flags.StringP("profile", "p", "", "Path to a JSONC profile with default settings")

	flags.String("encrypt-ext", ".vig", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg), NewCrackCommand(cfg))

	return root
}
